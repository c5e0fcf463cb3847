package services

import (
	"errors"
	"time"

	"rangba/database"
	"rangba/games"
	"rangba/helpers"
	"rangba/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaceBet validates, debits the stake, and inserts the bet in one
// transaction: a rejection on any check leaves no partial state, and the
// unique (user, round) index catches the duplicate that races the
// existence check.
func PlaceBet(userID, roundID uint, choice string, amount float64) (*models.Bet, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	amount = helpers.FormatFloat(amount, 2)

	var bet models.Bet
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var round models.Round
		if err := tx.First(&round, roundID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoundNotFound
			}
			return err
		}
		if !round.Open(time.Now()) {
			return ErrRoundClosed
		}
		if !games.ValidChoice(games.GameType(round.GameType), choice) {
			return ErrInvalidChoice
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if !user.IsActive {
			return ErrUserInactive
		}

		var existing models.Bet
		err := tx.Where("user_id = ? AND round_id = ?", userID, roundID).First(&existing).Error
		if err == nil {
			return ErrAlreadyBet
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		refID := uuid.New().String()
		if err := debitUser(tx, userID, amount, models.TrxTypeBet, &round.ID,
			"Stake on "+round.GameType+" round", refID); err != nil {
			return err
		}

		bet = models.Bet{
			UserID:   userID,
			UserCode: user.UserCode,
			RoundID:  roundID,
			Choice:   choice,
			Amount:   amount,
			RefID:    refID,
		}
		if err := tx.Create(&bet).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyBet
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &bet, nil
}

// BetsForRound loads every bet of a round in placement order.
func BetsForRound(roundID uint) ([]models.Bet, error) {
	var bets []models.Bet
	err := database.DB.Where("round_id = ?", roundID).Order("id ASC").Find(&bets).Error
	return bets, err
}

// BetsForUser returns a user's most recent bets, newest first.
func BetsForUser(userID uint, limit int) ([]models.Bet, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var bets []models.Bet
	err := database.DB.Where("user_id = ?", userID).Order("id DESC").Limit(limit).Find(&bets).Error
	return bets, err
}
