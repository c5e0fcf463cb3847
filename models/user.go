package models

import (
	"gorm.io/gorm"
)

// User carries the wallet: Balance is the single durable per-user balance
// and must never go negative through any game operation.
type User struct {
	gorm.Model

	UserCode string  `gorm:"uniqueIndex;size:32" json:"user_code"`
	ApiKey   string  `gorm:"size:64;index" json:"-"`
	Balance  float64 `json:"balance"`
	Currency string  `gorm:"size:8" json:"currency"`
	IsAdmin  bool    `gorm:"default:false" json:"is_admin"`
	IsActive bool    `gorm:"default:true" json:"is_active"`

	Bets         []Bet               `gorm:"foreignKey:UserID" json:"-"`
	Transactions []WalletTransaction `gorm:"foreignKey:UserID" json:"-"`
}

const (
	TrxTypeBet      = "bet"
	TrxTypePayout   = "payout"
	TrxTypeRefund   = "refund"
	TrxTypeDeposit  = "deposit"
	TrxTypeWithdraw = "withdraw"
)

// WalletTransaction is the ledger row written alongside every balance
// mutation: bet debit, win credit, refund credit, admin adjustment.
type WalletTransaction struct {
	gorm.Model

	UserID   uint   `gorm:"index"`
	UserCode string `gorm:"size:32;index"`
	TrxType  string `gorm:"size:16;index"`

	Amount        float64 `json:"amount"`
	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`

	RoundID *uint  `gorm:"index" json:"round_id"`
	Note    string `gorm:"size:255"`
	RefID   string `gorm:"size:64;index"`
}
