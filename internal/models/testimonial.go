package models

// TestimonialModel stores client testimonials.
type TestimonialModel struct {
	Base
	ClientName string `json:"client_name"`
	Role       string `json:"role"`
	Text       string `json:"text" gorm:"type:text"`
}

func (TestimonialModel) TableName() string { return "testimonials" }
