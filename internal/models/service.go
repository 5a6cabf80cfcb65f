package models

// ServiceModel stores offered services (freelance work packages).
type ServiceModel struct {
	Base
	Title               string      `json:"title"`
	ShortDescription    string      `json:"short_description"`
	DetailedDescription string      `json:"detailed_description" gorm:"type:text"`
	PriceFrom           string      `json:"price_from"`
	Deliverables        StringArray `json:"deliverables"         gorm:"type:text"`
	Stack               StringArray `json:"stack"                gorm:"type:text"`
	// No default tag: gorm skips zero-valued fields carrying one, which
	// would turn inactive creates active.
	IsActive bool `json:"is_active"`
}

func (ServiceModel) TableName() string { return "services" }
