package profile

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type UpdateProfileDTO struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Status   string `json:"status"`
	Whatsapp string `json:"whatsapp"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Get returns the singleton profile row, or nil when none has been written yet.
func (s *Service) Get() (*models.ProfileModel, error) {
	var p models.ProfileModel
	if err := s.db.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Upsert replaces the singleton row, creating it on first write.
func (s *Service) Upsert(dto *UpdateProfileDTO) (*models.ProfileModel, error) {
	p, err := s.Get()
	if err != nil {
		return nil, err
	}
	if p == nil {
		p = &models.ProfileModel{}
	}
	p.Name = dto.Name
	p.Bio = dto.Bio
	p.Role = dto.Role
	p.Location = dto.Location
	p.Status = dto.Status
	p.Whatsapp = dto.Whatsapp
	return p, s.db.Save(p).Error
}
