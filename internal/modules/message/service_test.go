package message

import (
	"testing"

	"github.com/folio-space/core/internal/models"
	"github.com/folio-space/core/internal/pkg/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.MessageModel{}))
	return db
}

func TestSubmitPersistsWithoutMailer(t *testing.T) {
	svc := NewService(newTestDB(t), nil, "", zap.NewNop())

	budget := "$5k"
	row, err := svc.Submit(&ContactDTO{
		Name:    "Alice",
		Email:   "alice@example.com",
		Type:    "project",
		Budget:  &budget,
		Message: "Hello there",
	})
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
	assert.False(t, row.Timestamp.IsZero())

	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.False(t, rows[0].Read)
}

func TestSubmitSurvivesMailFailure(t *testing.T) {
	// SMTP pointed at a closed port: Send fails, Submit must not.
	sender := mail.New(mail.Config{
		Enable: true,
		Host:   "127.0.0.1",
		Port:   1,
	})
	svc := NewService(newTestDB(t), sender, "owner@example.com", zap.NewNop())

	row, err := svc.Submit(&ContactDTO{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "Ping",
	})
	require.NoError(t, err)
	assert.NotZero(t, row.ID)
}

func TestListOrdersNewestFirst(t *testing.T) {
	svc := NewService(newTestDB(t), nil, "", zap.NewNop())

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Submit(&ContactDTO{Name: name, Email: name + "@x.io", Message: "m"})
		require.NoError(t, err)
	}

	rows, err := svc.List()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "third", rows[0].Name)
	assert.Equal(t, "first", rows[2].Name)
}

func TestMarkReadAndDelete(t *testing.T) {
	svc := NewService(newTestDB(t), nil, "", zap.NewNop())

	row, err := svc.Submit(&ContactDTO{Name: "Carol", Email: "c@x.io", Message: "m"})
	require.NoError(t, err)

	updated, err := svc.MarkRead(row.ID)
	require.NoError(t, err)
	assert.True(t, updated.Read)

	require.NoError(t, svc.Delete(row.ID))
	rows, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, rows)

	_, err = svc.MarkRead(9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
