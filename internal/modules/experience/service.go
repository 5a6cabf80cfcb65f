package experience

import (
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/dates"
	"gorm.io/gorm"
)

type ExperienceDTO struct {
	Title       string  `json:"title"      binding:"required"`
	Company     string  `json:"company"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
	Description string  `json:"description"`
}

// ExperienceView is the list payload: the row plus its display duration,
// computed at read time so "current" entries stay fresh.
type ExperienceView struct {
	models.ExperienceModel
	Duration string `json:"duration"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]ExperienceView, error) {
	var rows []models.ExperienceModel
	if err := s.db.Order("start_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]ExperienceView, len(rows))
	for i, row := range rows {
		views[i] = ExperienceView{
			ExperienceModel: row,
			Duration:        dates.Duration(row.StartDate, row.EndDate, row.Current, now),
		}
	}
	return views, nil
}

func (s *Service) Create(dto *ExperienceDTO) (*models.ExperienceModel, error) {
	row := fromDTO(dto)
	return row, s.db.Create(row).Error
}

func (s *Service) Update(id uint, dto *ExperienceDTO) (*models.ExperienceModel, error) {
	var existing models.ExperienceModel
	if err := s.db.First(&existing, id).Error; err != nil {
		return nil, err
	}
	replacement := fromDTO(dto)
	replacement.Base = existing.Base
	return replacement, s.db.Save(replacement).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.ExperienceModel{}, id).Error
}

func fromDTO(dto *ExperienceDTO) *models.ExperienceModel {
	row := &models.ExperienceModel{
		Title:       dto.Title,
		Company:     dto.Company,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Current:     dto.Current,
		Description: dto.Description,
	}
	if row.Current {
		// End boundary is "now" at render time; never persist a stale one.
		row.EndDate = nil
	}
	return row
}
