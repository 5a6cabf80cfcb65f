package service

import (
	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type ServiceDTO struct {
	Title               string   `json:"title" binding:"required"`
	ShortDescription    string   `json:"short_description"`
	DetailedDescription string   `json:"detailed_description"`
	PriceFrom           string   `json:"price_from"`
	Deliverables        []string `json:"deliverables"`
	Stack               []string `json:"stack"`
	IsActive            *bool    `json:"is_active"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns services newest first. The public site only sees active ones;
// the admin passes includeInactive to manage the rest.
func (s *Service) List(includeInactive bool) ([]models.ServiceModel, error) {
	tx := s.db.Order("id DESC")
	if !includeInactive {
		tx = tx.Where("is_active = ?", true)
	}
	var services []models.ServiceModel
	return services, tx.Find(&services).Error
}

func (s *Service) Create(dto *ServiceDTO) (*models.ServiceModel, error) {
	svc := fromDTO(dto)
	return svc, s.db.Create(svc).Error
}

func (s *Service) Update(id uint, dto *ServiceDTO) (*models.ServiceModel, error) {
	var existing models.ServiceModel
	if err := s.db.First(&existing, id).Error; err != nil {
		return nil, err
	}
	replacement := fromDTO(dto)
	replacement.Base = existing.Base
	return replacement, s.db.Save(replacement).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.ServiceModel{}, id).Error
}

func fromDTO(dto *ServiceDTO) *models.ServiceModel {
	active := true
	if dto.IsActive != nil {
		active = *dto.IsActive
	}
	return &models.ServiceModel{
		Title:               dto.Title,
		ShortDescription:    dto.ShortDescription,
		DetailedDescription: dto.DetailedDescription,
		PriceFrom:           dto.PriceFrom,
		Deliverables:        models.StringArray(dto.Deliverables),
		Stack:               models.StringArray(dto.Stack),
		IsActive:            active,
	}
}
