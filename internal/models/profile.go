package models

// ProfileModel is a singleton holding the owner's public profile card.
type ProfileModel struct {
	Base
	Name     string `json:"name"`
	Bio      string `json:"bio"      gorm:"type:text"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Whatsapp string `json:"whatsapp"`
}

func (ProfileModel) TableName() string { return "profile" }

// AboutContentModel is a singleton holding the about-page intro paragraphs.
type AboutContentModel struct {
	Base
	Intro1 string `json:"intro1" gorm:"type:text"`
	Intro2 string `json:"intro2" gorm:"type:text"`
}

func (AboutContentModel) TableName() string { return "about_content" }
