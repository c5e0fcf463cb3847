package services

import (
	"errors"
	"fmt"

	"rangba/database"
	"rangba/games"
	"rangba/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SetRoundResult assigns an admin-chosen outcome to a round, bypassing the
// evaluator but running the exact same settlement as the automatic path.
// Re-submitting the stored result of a completed round is a no-op that
// re-runs settlement (safe, exactly-once); submitting a different result
// is rejected because a result is immutable once written.
func SetRoundResult(roundID uint, outcome string) (*models.Round, error) {
	var round models.Round
	if err := database.DB.First(&round, roundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	if !games.ValidOutcome(games.GameType(round.GameType), outcome) {
		return nil, ErrInvalidOutcome
	}
	if round.Status == models.RoundStatusCancelled {
		return nil, ErrRoundFinished
	}

	if err := finalizeRound(&round, outcome); err != nil {
		return nil, err
	}
	if err := database.DB.First(&round, roundID).Error; err != nil {
		return nil, err
	}
	return &round, nil
}

// finalizeRound completes the round with the outcome and settles every bet,
// in one transaction. The completion is a conditional transition: a round
// that already holds a result is never rewritten, and a concurrent tick
// that loses the race simply re-runs settlement, where the per-bet guard
// makes every write a no-op.
func finalizeRound(round *models.Round, outcome string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var bets []models.Bet
		if err := tx.Where("round_id = ?", round.ID).Find(&bets).Error; err != nil {
			return err
		}

		total := decimal.Zero
		for i := range bets {
			total = total.Add(decimal.NewFromFloat(bets[i].Amount))
		}

		res := tx.Model(&models.Round{}).
			Where("id = ? AND status IN ? AND result IS NULL", round.ID, models.ActiveRoundStatuses).
			Updates(map[string]any{
				"status":       models.RoundStatusCompleted,
				"result":       outcome,
				"total_bets":   len(bets),
				"total_amount": total.Round(2).InexactFloat64(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var current models.Round
			if err := tx.First(&current, round.ID).Error; err != nil {
				return err
			}
			if current.Result == nil || *current.Result != outcome {
				return ErrRoundFinished
			}
		}

		return settleBets(tx, round, outcome, bets)
	})
}

// settleBets writes won/payout on every unsettled bet and credits winners.
// The `won IS NULL` guard makes each bet settle exactly once, so re-running
// against an already-settled round never double-credits.
func settleBets(tx *gorm.DB, round *models.Round, outcome string, bets []models.Bet) error {
	gt := games.GameType(round.GameType)

	for i := range bets {
		bet := &bets[i]
		if bet.Won != nil {
			continue
		}

		won := games.Wins(gt, outcome, bet.Choice)
		payout := 0.0
		if won {
			payout = games.Payout(gt, outcome, bet.Choice, bet.Amount)
		}

		res := tx.Model(&models.Bet{}).
			Where("id = ? AND won IS NULL", bet.ID).
			Updates(map[string]any{"won": won, "payout": payout})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			continue
		}

		if won && payout > 0 {
			note := fmt.Sprintf("Win on %s round #%d (%s)", round.GameType, round.RoundNumber, outcome)
			if err := creditUser(tx, bet.UserID, payout, models.TrxTypePayout, &round.ID, note, bet.RefID); err != nil {
				return err
			}
		}
	}
	return nil
}

// CancelRound refunds every stake and marks the round cancelled without a
// result. The cancelled transition and all refunds commit atomically, and
// the status guard lets exactly one caller perform them.
func CancelRound(roundID uint) (*models.Round, error) {
	var round models.Round
	if err := database.DB.First(&round, roundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}
	if round.Status == models.RoundStatusCancelled {
		return &round, nil
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Round{}).
			Where("id = ? AND status IN ?", roundID, models.ActiveRoundStatuses).
			Update("status", models.RoundStatusCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoundFinished
		}

		var bets []models.Bet
		if err := tx.Where("round_id = ?", roundID).Find(&bets).Error; err != nil {
			return err
		}
		for i := range bets {
			bet := &bets[i]
			note := fmt.Sprintf("Refund for cancelled %s round #%d", round.GameType, round.RoundNumber)
			if err := creditUser(tx, bet.UserID, bet.Amount, models.TrxTypeRefund, &round.ID, note, bet.RefID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	round.Status = models.RoundStatusCancelled
	return &round, nil
}
