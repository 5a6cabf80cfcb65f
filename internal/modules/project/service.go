package project

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

type ProjectDTO struct {
	Title               string   `json:"title" binding:"required"`
	Slug                string   `json:"slug"  binding:"required"`
	ShortDescription    string   `json:"short_description"`
	DetailedDescription string   `json:"detailed_description"`
	Stack               []string `json:"stack"`
	Category            string   `json:"category"`
	Priority            string   `json:"priority"`
	Link                string   `json:"link"`
	GithubLink          string   `json:"github_link"`
	Images              []string `json:"images"`
	Featured            bool     `json:"featured"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// List returns all projects newest first, optionally only featured ones.
func (s *Service) List(featuredOnly bool) ([]models.ProjectModel, error) {
	tx := s.db.Order("id DESC")
	if featuredOnly {
		tx = tx.Where("featured = ?", true)
	}
	var projects []models.ProjectModel
	return projects, tx.Find(&projects).Error
}

// GetBySlug returns the project with the given slug, or nil when missing.
func (s *Service) GetBySlug(slug string) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.Where("slug = ?", slug).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *Service) Create(dto *ProjectDTO) (*models.ProjectModel, error) {
	p := fromDTO(dto)
	return p, s.db.Create(p).Error
}

// Update is a full-row replace by id, matching the admin form's submit shape.
func (s *Service) Update(id uint, dto *ProjectDTO) (*models.ProjectModel, error) {
	var p models.ProjectModel
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	replacement := fromDTO(dto)
	replacement.Base = p.Base
	return replacement, s.db.Save(replacement).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.ProjectModel{}, id).Error
}

func fromDTO(dto *ProjectDTO) *models.ProjectModel {
	return &models.ProjectModel{
		Title:               dto.Title,
		Slug:                dto.Slug,
		ShortDescription:    dto.ShortDescription,
		DetailedDescription: dto.DetailedDescription,
		Stack:               models.StringArray(dto.Stack),
		Category:            dto.Category,
		Priority:            dto.Priority,
		Link:                dto.Link,
		GithubLink:          dto.GithubLink,
		Images:              models.StringArray(dto.Images),
		Featured:            dto.Featured,
	}
}
