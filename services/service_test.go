package services

import (
	"fmt"
	"strings"
	"testing"

	"rangba/database"
	"rangba/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the package's global store at a fresh in-memory
// database migrated with the production model list.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(database.Models()...); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	database.DB = db
}

func createTestUser(t *testing.T, code string, balance float64) *models.User {
	t.Helper()
	user := models.User{
		UserCode: code,
		ApiKey:   code + "-key",
		Balance:  balance,
		Currency: "INR",
		IsActive: true,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("create user %s: %v", code, err)
	}
	return &user
}

func reloadUser(t *testing.T, id uint) *models.User {
	t.Helper()
	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		t.Fatalf("reload user %d: %v", id, err)
	}
	return &user
}

func reloadRound(t *testing.T, id uint) *models.Round {
	t.Helper()
	var round models.Round
	if err := database.DB.First(&round, id).Error; err != nil {
		t.Fatalf("reload round %d: %v", id, err)
	}
	return &round
}

func countLedger(t *testing.T, userID uint, trxType string) int64 {
	t.Helper()
	var n int64
	err := database.DB.Model(&models.WalletTransaction{}).
		Where("user_id = ? AND trx_type = ?", userID, trxType).
		Count(&n).Error
	if err != nil {
		t.Fatalf("count ledger: %v", err)
	}
	return n
}
