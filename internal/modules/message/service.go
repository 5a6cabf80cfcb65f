package message

import (
	"time"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ContactDTO deliberately leaves the email unvalidated beyond presence; the
// form accepts whatever the visitor typed and the owner replies manually.
type ContactDTO struct {
	Name     string  `json:"name"    binding:"required"`
	Email    string  `json:"email"   binding:"required"`
	Type     string  `json:"type"`
	Budget   *string `json:"budget"`
	Whatsapp *string `json:"whatsapp"`
	Message  string  `json:"message" binding:"required"`
}

type Service struct {
	db     *gorm.DB
	mailer *mail.Sender
	notify string
	logger *zap.Logger
}

func NewService(db *gorm.DB, mailer *mail.Sender, notifyAddr string, logger *zap.Logger) *Service {
	return &Service{db: db, mailer: mailer, notify: notifyAddr, logger: logger}
}

// Submit persists the message, then fires the notification email. Persistence
// is the contract; a mail failure is logged and swallowed so the sender still
// gets a success.
func (s *Service) Submit(dto *ContactDTO) (*models.MessageModel, error) {
	row := &models.MessageModel{
		Name:      dto.Name,
		Email:     dto.Email,
		Type:      dto.Type,
		Budget:    dto.Budget,
		Whatsapp:  dto.Whatsapp,
		Message:   dto.Message,
		Timestamp: time.Now().UTC(),
	}
	if err := s.db.Create(row).Error; err != nil {
		return nil, err
	}

	s.sendNotification(row)
	return row, nil
}

func (s *Service) sendNotification(row *models.MessageModel) {
	if s.mailer == nil || s.notify == "" {
		return
	}

	html, err := mail.RenderContactNotification(mail.ContactNotification{
		Name:     row.Name,
		Email:    row.Email,
		Type:     row.Type,
		Budget:   deref(row.Budget),
		Whatsapp: deref(row.Whatsapp),
		Message:  row.Message,
	})
	if err != nil {
		s.logger.Error("render contact notification", zap.Error(err))
		return
	}

	err = s.mailer.Send(mail.Message{
		To:      []string{s.notify},
		ReplyTo: row.Email,
		Subject: "New Contact Form Message from " + row.Name,
		HTML:    html,
	})
	if err != nil {
		s.logger.Error("send contact notification",
			zap.Uint("message_id", row.ID), zap.Error(err))
	}
}

func (s *Service) List() ([]models.MessageModel, error) {
	var rows []models.MessageModel
	err := s.db.Order("timestamp DESC, id DESC").Find(&rows).Error
	return rows, err
}

func (s *Service) MarkRead(id uint) (*models.MessageModel, error) {
	var row models.MessageModel
	if err := s.db.First(&row, id).Error; err != nil {
		return nil, err
	}
	row.Read = true
	return &row, s.db.Save(&row).Error
}

func (s *Service) Delete(id uint) error {
	return s.db.Delete(&models.MessageModel{}, id).Error
}

func deref(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
