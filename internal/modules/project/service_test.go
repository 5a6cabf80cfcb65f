package project

import (
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
	require.NoError(t, db.AutoMigrate(&models.ProjectModel{}))
	return NewService(db)
}

func TestStackAndImagesSurviveStorage(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&ProjectDTO{
		Title:  "Folio",
		Slug:   "folio",
		Stack:  []string{"Go", "Gin", "GORM"},
		Images: []string{"/uploads/a.png", "/uploads/b.png"},
	})
	require.NoError(t, err)

	loaded, err := svc.GetBySlug("folio")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, created.ID, loaded.ID)
	assert.Equal(t, models.StringArray{"Go", "Gin", "GORM"}, loaded.Stack)
	assert.Equal(t, models.StringArray{"/uploads/a.png", "/uploads/b.png"}, loaded.Images)
}

func TestGetBySlugMissingReturnsNil(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.GetBySlug("ghost")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestListFeaturedFilter(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(&ProjectDTO{Title: "A", Slug: "a", Featured: true})
	require.NoError(t, err)
	_, err = svc.Create(&ProjectDTO{Title: "B", Slug: "b"})
	require.NoError(t, err)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, "B", all[0].Title, "newest first")

	featured, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "A", featured[0].Title)
}

func TestUpdateReplacesRowKeepingIdentity(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.Create(&ProjectDTO{Title: "Old", Slug: "old", Stack: []string{"Go"}})
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, &ProjectDTO{Title: "New", Slug: "new"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "New", updated.Title)

	// Old slug is gone, the row lives under the new one.
	old, err := svc.GetBySlug("old")
	require.NoError(t, err)
	assert.Nil(t, old)
	renamed, err := svc.GetBySlug("new")
	require.NoError(t, err)
	require.NotNil(t, renamed)
	assert.Empty(t, renamed.Stack)
}
