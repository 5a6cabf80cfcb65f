package models

import "time"

// MessageModel stores contact-form submissions. Write-only from the public
// side; listing, read flags and deletion are admin operations.
type MessageModel struct {
	Base
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Type      string    `json:"type"`
	Budget    *string   `json:"budget"`
	Whatsapp  *string   `json:"whatsapp"`
	Message   string    `json:"message"   gorm:"type:text"`
	Read      bool      `json:"read"      gorm:"default:false"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}

func (MessageModel) TableName() string { return "messages" }
