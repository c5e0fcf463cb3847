package services

import (
	"errors"

	"rangba/database"
	"rangba/helpers"
	"rangba/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// creditUser adds amount to the user's balance inside tx and writes the
// ledger row. The mutation is an increment against the stored value, never
// an overwrite of a previously read snapshot.
func creditUser(tx *gorm.DB, userID uint, amount float64, trxType string, roundID *uint, note, refID string) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}

	return tx.Create(&models.WalletTransaction{
		UserID:        user.ID,
		UserCode:      user.UserCode,
		TrxType:       trxType,
		Amount:        amount,
		BalanceBefore: helpers.FormatFloat(user.Balance-amount, 2),
		BalanceAfter:  user.Balance,
		RoundID:       roundID,
		Note:          note,
		RefID:         refID,
	}).Error
}

// debitUser subtracts amount, rejecting the mutation outright when the
// stored balance cannot cover it.
func debitUser(tx *gorm.DB, userID uint, amount float64, trxType string, roundID *uint, note, refID string) error {
	res := tx.Model(&models.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrInsufficientBalance
	}

	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return err
	}

	return tx.Create(&models.WalletTransaction{
		UserID:        user.ID,
		UserCode:      user.UserCode,
		TrxType:       trxType,
		Amount:        amount,
		BalanceBefore: helpers.FormatFloat(user.Balance+amount, 2),
		BalanceAfter:  user.Balance,
		RoundID:       roundID,
		Note:          note,
		RefID:         refID,
	}).Error
}

// AdjustBalance applies an admin deposit (positive) or withdrawal
// (negative) to a user's wallet and returns the updated user.
func AdjustBalance(userCode string, amount float64, note string) (*models.User, string, error) {
	if amount == 0 {
		return nil, "", ErrInvalidAmount
	}
	amount = helpers.FormatFloat(amount, 2)

	var user models.User
	refID := uuid.New().String()

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_code = ? AND is_active = true", userCode).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		if amount > 0 {
			if note == "" {
				note = "Deposit approved via admin panel"
			}
			return creditUser(tx, user.ID, amount, models.TrxTypeDeposit, nil, note, refID)
		}

		if note == "" {
			note = "Withdrawal approved via admin panel"
		}
		return debitUser(tx, user.ID, -amount, models.TrxTypeWithdraw, nil, note, refID)
	})
	if err != nil {
		return nil, "", err
	}

	if err := database.DB.First(&user, user.ID).Error; err != nil {
		return nil, "", err
	}
	return &user, refID, nil
}
