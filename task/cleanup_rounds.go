package task

import (
	"log"
	"os"
	"strconv"
	"time"

	"rangba/database"
	"rangba/models"
)

// CleanupFinishedRounds drops terminal rounds past the retention window
// together with their bets. Wallet ledger rows are kept; they are the
// audit trail.
func CleanupFinishedRounds() {
	days := 30
	if raw := os.Getenv("ROUND_RETENTION_DAYS"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			days = parsed
		}
	}
	cutoff := time.Now().AddDate(0, 0, -days)

	var ids []uint
	err := database.DB.Model(&models.Round{}).
		Where("status IN ? AND updated_at < ?", []string{models.RoundStatusCompleted, models.RoundStatusCancelled}, cutoff).
		Pluck("id", &ids).Error
	if err != nil {
		log.Println("❌ Failed to list old rounds:", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	// Hard delete: the stream's unique index still sees soft-deleted rows,
	// which would block round numbering if a stream is ever restarted.
	if err := database.DB.Unscoped().Where("round_id IN ?", ids).Delete(&models.Bet{}).Error; err != nil {
		log.Println("❌ Failed to delete old bets:", err)
		return
	}

	result := database.DB.Unscoped().Delete(&models.Round{}, ids)
	if result.Error != nil {
		log.Println("❌ Failed to delete old rounds:", result.Error)
		return
	}
	log.Printf("✅ Deleted %d finished rounds older than %d days\n", result.RowsAffected, days)
}
