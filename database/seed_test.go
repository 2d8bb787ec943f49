package database

import (
	"fmt"
	"testing"

	"github.com/Abhishek-ak7/overseas-site-sub002/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.JourneyStep{}, &models.Statistic{}, &models.Page{}))
	return db
}

func TestSeedIsIdempotent(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var steps, stats, pages int64
	db.Model(&models.JourneyStep{}).Count(&steps)
	db.Model(&models.Statistic{}).Count(&stats)
	db.Model(&models.Page{}).Count(&pages)

	assert.Equal(t, int64(4), steps)
	assert.Equal(t, int64(4), stats)
	assert.Equal(t, int64(1), pages)
}

func TestSeedKeepsAdminEdits(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Seed(db))

	// Admin edits to seeded rows must survive the next restart
	require.NoError(t, db.Model(&models.JourneyStep{}).
		Where("step_number = ?", 1).
		Update("description", "Talk to a counsellor about your shortlist.").Error)
	require.NoError(t, db.Model(&models.Statistic{}).
		Where("label = ?", "Students Placed").
		Update("value", 6000).Error)
	require.NoError(t, db.Model(&models.Page{}).
		Where("slug = ?", "home").
		Update("title", "Welcome").Error)

	require.NoError(t, Seed(db))

	var steps int64
	db.Model(&models.JourneyStep{}).Where("step_number = ?", 1).Count(&steps)
	assert.Equal(t, int64(1), steps)

	var step models.JourneyStep
	require.NoError(t, db.Where("step_number = ?", 1).First(&step).Error)
	assert.Equal(t, "Talk to a counsellor about your shortlist.", step.Description)

	var stat models.Statistic
	require.NoError(t, db.Where("label = ?", "Students Placed").First(&stat).Error)
	assert.Equal(t, int64(6000), stat.Value)

	var pages int64
	db.Model(&models.Page{}).Where("slug = ?", "home").Count(&pages)
	assert.Equal(t, int64(1), pages)

	var page models.Page
	require.NoError(t, db.Where("slug = ?", "home").First(&page).Error)
	assert.Equal(t, "Welcome", page.Title)
}
