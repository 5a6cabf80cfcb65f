package certificate

import (
	"strings"
	"testing"

	"github.com/folio-space/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CertificateModel{}))
	return NewService(db)
}

const sampleCSV = `Name,Issuing Organization,Issue Date,Credential URL
AWS Certified Developer,Amazon Web Services,2023-05-01,https://aws.example/cert/1
Go Professional,Gopher Academy,Jan 2024,https://gopher.example/cert/2
,Empty Title Org,2020-01-01,https://skip.example
`

func TestImportCSV(t *testing.T) {
	svc := newTestService(t)

	inserted, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, inserted, "blank titles are skipped")

	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Go Professional", rows[0].Title, "newest issue date first")
	assert.Equal(t, "Amazon Web Services", rows[1].Issuer)
}

func TestImportCSVDeduplicatesByTitle(t *testing.T) {
	svc := newTestService(t)

	inserted, err := svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Equal(t, 2, inserted)

	inserted, err = svc.ImportCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	assert.Zero(t, inserted, "re-uploading the same export is a no-op")

	rows, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestImportCSVRejectsMissingNameColumn(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.ImportCSV(strings.NewReader("Foo,Bar\na,b\n"))
	assert.ErrorIs(t, err, ErrBadCSV)

	_, err = svc.ImportCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrBadCSV)
}

func TestImportCSVToleratesShortRows(t *testing.T) {
	svc := newTestService(t)

	csv := "Name,Issuing Organization,Issue Date,Credential URL\nBare Cert\n"
	inserted, err := svc.ImportCSV(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Bare Cert", rows[0].Title)
	assert.Empty(t, rows[0].Issuer)
}
