package models

// TimelineItemModel stores journey/timeline entries. Uses the ranged schema
// (start/end/current) like ExperienceModel; the older single-date shape is
// migrated into StartDate.
type TimelineItemModel struct {
	Base
	Title       string  `json:"title"`
	Description string  `json:"description" gorm:"type:text"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"     gorm:"default:false"`
}

func (TimelineItemModel) TableName() string { return "timeline" }
