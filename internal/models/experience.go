package models

// ExperienceModel stores work experience entries. Dates are "YYYY-MM" strings;
// when Current is set the end boundary is computed at read time, never stored.
type ExperienceModel struct {
	Base
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"     gorm:"default:false"`
	Description string  `json:"description" gorm:"type:text"`
}

func (ExperienceModel) TableName() string { return "experiences" }
