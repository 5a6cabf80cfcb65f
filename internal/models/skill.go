package models

// SkillCategoryModel groups skills on the about page.
type SkillCategoryModel struct {
	Base
	Name         string `json:"name"          gorm:"uniqueIndex;not null"`
	DisplayOrder int    `json:"display_order" gorm:"default:0"`

	Skills []SkillModel `json:"skills,omitempty" gorm:"foreignKey:CategoryID"`
}

func (SkillCategoryModel) TableName() string { return "skill_categories" }

// SkillModel references its category by id. The API still speaks in category
// names; the id reference keeps skills grouped across category renames.
type SkillModel struct {
	Base
	Name       string `json:"name"`
	CategoryID uint   `json:"-" gorm:"index;not null"`
}

func (SkillModel) TableName() string { return "skills" }
