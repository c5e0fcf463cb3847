package models

import "gorm.io/gorm"

// Bet is a single wager against a round. Won and Payout stay NULL until the
// round resolves; settlement writes them exactly once.
type Bet struct {
	gorm.Model

	UserID   uint   `gorm:"index;index:uk_bet_user_round,unique" json:"user_id"`
	UserCode string `gorm:"size:32;index" json:"user_code"`
	RoundID  uint   `gorm:"index;index:uk_bet_user_round,unique" json:"round_id"`

	Choice string  `gorm:"size:64" json:"choice"`
	Amount float64 `json:"amount"`

	Won    *bool    `json:"won"`
	Payout *float64 `json:"payout"`

	RefID string `gorm:"size:64;index" json:"ref_id"`
}
