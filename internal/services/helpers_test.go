package services

import (
	"testing"

	"github.com/ovenfresh/pizza-shop-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database with the full schema.
// A single connection is forced so the in-memory database survives pooling.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(&models.Pizza{}, &models.Area{}, &models.User{}, &models.Order{})
	require.NoError(t, err)
	return db
}

func seedPizza(t *testing.T, db *gorm.DB, pizza models.Pizza) models.Pizza {
	t.Helper()
	require.NoError(t, db.Create(&pizza).Error)
	return pizza
}

func seedArea(t *testing.T, db *gorm.DB, area models.Area) models.Area {
	t.Helper()
	require.NoError(t, db.Create(&area).Error)
	return area
}

func seedUser(t *testing.T, db *gorm.DB, user models.User) models.User {
	t.Helper()
	require.NoError(t, db.Create(&user).Error)
	return user
}
