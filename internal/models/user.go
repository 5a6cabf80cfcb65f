package models

// UserModel represents the site owner/admin. Exactly one row is expected;
// there is no registration flow beyond the initial setup.
type UserModel struct {
	Base
	Username string `json:"username" gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
}

func (UserModel) TableName() string { return "users" }
