package models

import "time"

// CertificateModel stores certifications imported from CSV exports.
type CertificateModel struct {
	Base
	Title  string    `json:"title" gorm:"index"`
	Issuer string    `json:"issuer"`
	Date   time.Time `json:"date"`
	URL    string    `json:"url"`
}

func (CertificateModel) TableName() string { return "certificates" }
