package about

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type UpdateAboutContentDTO struct {
	Intro1 string `json:"intro1"`
	Intro2 string `json:"intro2"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the singleton about-content row, or nil when absent.
func (s *Service) Get() (*models.AboutContentModel, error) {
	var content models.AboutContentModel
	if err := s.db.First(&content).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

// Upsert replaces the singleton row, creating it on first write.
func (s *Service) Upsert(dto *UpdateAboutContentDTO) (*models.AboutContentModel, error) {
	content, err := s.Get()
	if err != nil {
		return nil, err
	}
	if content == nil {
		content = &models.AboutContentModel{}
	}
	content.Intro1 = dto.Intro1
	content.Intro2 = dto.Intro2
	return content, s.db.Save(content).Error
}
