package testimonial

import (
	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type TestimonialDTO struct {
	ClientName string `json:"client_name" binding:"required"`
	Role       string `json:"role"`
	Text       string `json:"text" binding:"required"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.TestimonialModel, error) {
	var rows []models.TestimonialModel
	err := s.db.Order("id DESC").Find(&rows).Error
	return rows, err
}

func (s *Service) Create(dto *TestimonialDTO) (*models.TestimonialModel, error) {
	row := &models.TestimonialModel{
		ClientName: dto.ClientName,
		Role:       dto.Role,
		Text:       dto.Text,
	}
	return row, s.db.Create(row).Error
}

func (s *Service) Update(id uint, dto *TestimonialDTO) (*models.TestimonialModel, error) {
	var row models.TestimonialModel
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	row.ClientName = dto.ClientName
	row.Role = dto.Role
	row.Text = dto.Text
	return &row, s.db.Save(&row).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.TestimonialModel{}, id).Error
}
