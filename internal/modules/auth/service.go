package auth

import (
	"errors"

	"github.com/folio-space/core/internal/models"
	jwtpkg "github.com/folio-space/core/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials covers both unknown-username and wrong-password so the
// response never reveals which half failed.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrAdminExists is returned when setup is attempted twice.
var ErrAdminExists = errors.New("admin already exists")

type SetupAdminDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies the credentials and issues a 24h bearer token carrying the
// username as subject.
func (s *Service) Login(username, password string) (string, error) {
	var u models.UserModel
	if err := s.db.Select("id, username, password").
		Where("username = ?", username).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return jwtpkg.Sign(u.Username, jwtpkg.DefaultTTL)
}

// SetupAdmin creates the first (and only) admin account.
func (s *Service) SetupAdmin(dto *SetupAdminDTO) (*models.UserModel, error) {
	var count int64
	if err := s.db.Model(&models.UserModel{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := models.UserModel{Username: dto.Username, Password: string(hash)}
	return &u, s.db.Create(&u).Error
}
