package models

// ProjectModel stores portfolio projects.
type ProjectModel struct {
	Base
	Title               string      `json:"title"                gorm:"index;not null"`
	Slug                string      `json:"slug"                 gorm:"uniqueIndex;not null"`
	ShortDescription    string      `json:"short_description"`
	DetailedDescription string      `json:"detailed_description" gorm:"type:text"`
	Stack               StringArray `json:"stack"                gorm:"type:text"`
	Category            string      `json:"category"` // Web, Embedded, Automation, Other
	Priority            string      `json:"priority"`
	Link                string      `json:"link"`
	GithubLink          string      `json:"github_link"`
	Images              StringArray `json:"images"               gorm:"type:text"`
	Featured            bool        `json:"featured"             gorm:"default:false"`
}

func (ProjectModel) TableName() string { return "projects" }
