package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoundStatusBetting   = "betting"
	RoundStatusLocked    = "locked"
	RoundStatusCompleted = "completed"
	RoundStatusCancelled = "cancelled"
)

// ActiveRoundStatuses are the non-terminal statuses. At most one round per
// (game_type, duration) stream may be in one of these at any time.
var ActiveRoundStatuses = []string{RoundStatusBetting, RoundStatusLocked}

type Round struct {
	gorm.Model

	GameType    string    `gorm:"size:16;index;index:uk_round_stream,unique" json:"game_type"`
	Duration    int       `gorm:"index:uk_round_stream,unique" json:"duration"`
	RoundNumber int64     `gorm:"index:uk_round_stream,unique" json:"round_number"`
	Status      string    `gorm:"size:16;index" json:"status"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `gorm:"index" json:"end_time"`
	Result      *string   `gorm:"size:64" json:"result"`
	TotalBets   int       `gorm:"default:0" json:"total_bets"`
	TotalAmount float64   `gorm:"default:0" json:"total_amount"`

	Bets []Bet `gorm:"foreignKey:RoundID" json:"-"`
}

// Open reports whether the round still accepts bets at the given time.
func (r *Round) Open(now time.Time) bool {
	return r.Status == RoundStatusBetting && now.Before(r.EndTime)
}

func (r *Round) Terminal() bool {
	return r.Status == RoundStatusCompleted || r.Status == RoundStatusCancelled
}
