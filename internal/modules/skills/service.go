package skills

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("skills: record not found")

type SkillDTO struct {
	Name     string `json:"name"     binding:"required"`
	Category string `json:"category" binding:"required"`
}

type CategoryDTO struct {
	Name         string `json:"name" binding:"required"`
	DisplayOrder int    `json:"display_order"`
}

// SkillView keeps the name-keyed wire shape while rows reference the
// category by id.
type SkillView struct {
	models.SkillModel
	Category string `json:"category"`
}

type GroupedSkills struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) ListSkills() ([]SkillView, error) {
	var categories []models.SkillCategoryModel
	if err := s.db.Order("display_order ASC, id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(categories))
	for _, cat := range categories {
		names[cat.ID] = cat.Name
	}

	var rows []models.SkillModel
	if err := s.db.Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	views := make([]SkillView, len(rows))
	for i, row := range rows {
		views[i] = SkillView{SkillModel: row, Category: names[row.CategoryID]}
	}
	return views, nil
}

// Grouped returns skill names bucketed under their category, ordered the way
// the about page renders them.
func (s *Service) Grouped() ([]GroupedSkills, error) {
	var categories []models.SkillCategoryModel
	err := s.db.Order("display_order ASC, id ASC").
		Preload("Skills", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	groups := make([]GroupedSkills, len(categories))
	for i, cat := range categories {
		names := make([]string, len(cat.Skills))
		for j, skill := range cat.Skills {
			names[j] = skill.Name
		}
		groups[i] = GroupedSkills{Category: cat.Name, Skills: names}
	}
	return groups, nil
}

func (s *Service) CreateSkill(dto *SkillDTO) (*SkillView, error) {
	cat, err := s.findOrCreateCategory(s.db, dto.Category)
	if err != nil {
		return nil, err
	}
	row := &models.SkillModel{Name: dto.Name, CategoryID: cat.ID}
	if err := s.db.Create(row).Error; err != nil {
		return nil, err
	}
	return &SkillView{SkillModel: *row, Category: cat.Name}, nil
}

func (s *Service) UpdateSkill(id uint, dto *SkillDTO) (*SkillView, error) {
	var row models.SkillModel
	if err := s.db.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cat, err := s.findOrCreateCategory(s.db, dto.Category)
	if err != nil {
		return nil, err
	}
	row.Name = dto.Name
	row.CategoryID = cat.ID
	if err := s.db.Save(&row).Error; err != nil {
		return nil, err
	}
	return &SkillView{SkillModel: row, Category: cat.Name}, nil
}

func (s *Service) DeleteSkill(id uint) error {
	return s.db.Delete(&models.SkillModel{}, id).Error
}

func (s *Service) ListCategories() ([]models.SkillCategoryModel, error) {
	var categories []models.SkillCategoryModel
	err := s.db.Order("display_order ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (s *Service) CreateCategory(dto *CategoryDTO) (*models.SkillCategoryModel, error) {
	cat := &models.SkillCategoryModel{Name: dto.Name, DisplayOrder: dto.DisplayOrder}
	return cat, s.db.Create(cat).Error
}

// UpdateCategory renames in place. Skills reference the category by id, so a
// rename keeps every skill grouped under the new name.
func (s *Service) UpdateCategory(id uint, dto *CategoryDTO) (*models.SkillCategoryModel, error) {
	var cat models.SkillCategoryModel
	if err := s.db.First(&cat, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	cat.Name = dto.Name
	cat.DisplayOrder = dto.DisplayOrder
	return &cat, s.db.Save(&cat).Error
}

// DeleteCategory removes the category and its skills atomically. Either both
// disappear or neither does.
func (s *Service) DeleteCategory(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", id).Delete(&models.SkillModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SkillCategoryModel{}, id).Error
	})
}

func (s *Service) findOrCreateCategory(db *gorm.DB, name string) (*models.SkillCategoryModel, error) {
	var cat models.SkillCategoryModel
	err := db.Where("name = ?", name).First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	cat = models.SkillCategoryModel{Name: name}
	return &cat, db.Create(&cat).Error
}
