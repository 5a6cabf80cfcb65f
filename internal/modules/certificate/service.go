package certificate

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/folio-space/core/internal/models"
	"gorm.io/gorm"
)

var ErrBadCSV = errors.New("certificate: malformed csv")

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

func (s *Service) List() ([]models.CertificateModel, error) {
	var rows []models.CertificateModel
	err := s.db.Order("date DESC, id DESC").Find(&rows).Error
	return rows, err
}

// ImportCSV ingests a certifications export. Rows whose title already exists
// are skipped, so re-uploading the same export is a no-op. Returns the number
// of newly inserted rows.
func (s *Service) ImportCSV(r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, ErrBadCSV
	}
	cols := indexColumns(header)
	titleIdx := col(cols, "name")
	if titleIdx < 0 {
		return 0, ErrBadCSV
	}
	issuerIdx := col(cols, "issuing organization")
	urlIdx := col(cols, "credential url")
	dateIdx := col(cols, "issue date")

	inserted := 0
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return ErrBadCSV
			}

			title := strings.TrimSpace(field(record, titleIdx))
			if title == "" {
				continue
			}

			var count int64
			if err := tx.Model(&models.CertificateModel{}).
				Where("title = ?", title).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			row := models.CertificateModel{
				Title:  title,
				Issuer: strings.TrimSpace(field(record, issuerIdx)),
				URL:    strings.TrimSpace(field(record, urlIdx)),
				Date:   parseCertDate(field(record, dateIdx)),
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			inserted++
		}
	})
	return inserted, err
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return cols
}

func col(cols map[string]int, name string) int {
	if idx, ok := cols[name]; ok {
		return idx
	}
	return -1
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func parseCertDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"2006-01-02", "Jan 2006", "January 2006", "2006-01", "01/2006"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
