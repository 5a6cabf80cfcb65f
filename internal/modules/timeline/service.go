package timeline

import (
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/dates"
	"gorm.io/gorm"
)

type TimelineItemDTO struct {
	Title       string  `json:"title"      binding:"required"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date"`
	Current     bool    `json:"current"`
}

type TimelineItemView struct {
	models.TimelineItemModel
	Duration string `json:"duration"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]TimelineItemView, error) {
	var rows []models.TimelineItemModel
	if err := s.db.Order("start_date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]TimelineItemView, len(rows))
	for i, row := range rows {
		views[i] = TimelineItemView{
			TimelineItemModel: row,
			Duration:          dates.Duration(row.StartDate, row.EndDate, row.Current, now),
		}
	}
	return views, nil
}

func (s *Service) Create(dto *TimelineItemDTO) (*models.TimelineItemModel, error) {
	row := fromDTO(dto)
	return row, s.db.Create(row).Error
}

func (s *Service) Update(id uint, dto *TimelineItemDTO) (*models.TimelineItemModel, error) {
	var existing models.TimelineItemModel
	if err := s.db.First(&existing, id).Error; err != nil {
		return nil, err
	}
	replacement := fromDTO(dto)
	replacement.Base = existing.Base
	return replacement, s.db.Save(replacement).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.TimelineItemModel{}, id).Error
}

func fromDTO(dto *TimelineItemDTO) *models.TimelineItemModel {
	row := &models.TimelineItemModel{
		Title:       dto.Title,
		Description: dto.Description,
		StartDate:   dto.StartDate,
		EndDate:     dto.EndDate,
		Current:     dto.Current,
	}
	if row.Current {
		row.EndDate = nil
	}
	return row
}
