package models

import "time"

// AnalyzeModel tracks page view analytics. IPs are stored as salted hashes;
// the raw address never touches the database.
type AnalyzeModel struct {
	Base
	IPHash    string    `json:"ip_hash"   gorm:"index"`
	Path      string    `json:"path"      gorm:"index"`
	Timestamp time.Time `json:"timestamp" gorm:"index"`
}

func (AnalyzeModel) TableName() string { return "analytics" }
