package skills

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
	require.NoError(t, db.AutoMigrate(&models.SkillCategoryModel{}, &models.SkillModel{}))
	return NewService(db)
}

func TestCreateSkillCreatesCategoryOnDemand(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.CreateSkill(&SkillDTO{Name: "Kotlin", Category: "Mobile"})
	require.NoError(t, err)
	assert.Equal(t, "Mobile", view.Category)

	cats, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Mobile", cats[0].Name)

	// Second skill reuses the category instead of duplicating it.
	_, err = svc.CreateSkill(&SkillDTO{Name: "Swift", Category: "Mobile"})
	require.NoError(t, err)

	cats, err = svc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestCategoryRenameKeepsSkillsGrouped(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateSkill(&SkillDTO{Name: "Kotlin", Category: "Mobile"})
	require.NoError(t, err)
	_, err = svc.CreateSkill(&SkillDTO{Name: "Swift", Category: "Mobile"})
	require.NoError(t, err)

	cats, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, cats, 1)

	_, err = svc.UpdateCategory(cats[0].ID, &CategoryDTO{Name: "Mobile Development"})
	require.NoError(t, err)

	groups, err := svc.Grouped()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Mobile Development", groups[0].Category)
	assert.ElementsMatch(t, []string{"Kotlin", "Swift"}, groups[0].Skills)

	views, err := svc.ListSkills()
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, "Mobile Development", v.Category)
	}
}

func TestDeleteCategoryCascadesToSkills(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateSkill(&SkillDTO{Name: "Kotlin", Category: "Mobile"})
	require.NoError(t, err)
	_, err = svc.CreateSkill(&SkillDTO{Name: "Go", Category: "Backend"})
	require.NoError(t, err)

	var mobile models.SkillCategoryModel
	require.NoError(t, svc.db.Where("name = ?", "Mobile").First(&mobile).Error)

	require.NoError(t, svc.DeleteCategory(mobile.ID))

	var skillCount int64
	require.NoError(t, svc.db.Model(&models.SkillModel{}).Count(&skillCount).Error)
	assert.EqualValues(t, 1, skillCount)

	groups, err := svc.Grouped()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Backend", groups[0].Category)
}

func TestGroupedOrdersByDisplayOrder(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateCategory(&CategoryDTO{Name: "Tools", DisplayOrder: 2})
	require.NoError(t, err)
	_, err = svc.CreateCategory(&CategoryDTO{Name: "Languages", DisplayOrder: 1})
	require.NoError(t, err)

	groups, err := svc.Grouped()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Languages", groups[0].Category)
	assert.Equal(t, "Tools", groups[1].Category)
}

func TestUpdateSkillMovesBetweenCategories(t *testing.T) {
	svc := newTestService(t)

	view, err := svc.CreateSkill(&SkillDTO{Name: "Rust", Category: "Backend"})
	require.NoError(t, err)

	moved, err := svc.UpdateSkill(view.ID, &SkillDTO{Name: "Rust", Category: "Systems"})
	require.NoError(t, err)
	assert.Equal(t, "Systems", moved.Category)

	_, err = svc.UpdateSkill(9999, &SkillDTO{Name: "x", Category: "y"})
	assert.ErrorIs(t, err, ErrNotFound)
}
