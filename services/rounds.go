package services

import (
	"errors"
	"time"

	"rangba/database"
	"rangba/games"
	"rangba/models"

	"gorm.io/gorm"
)

// ActiveRound returns the single non-terminal round of a
// (game type, duration) stream, or gorm.ErrRecordNotFound.
func ActiveRound(gt games.GameType, duration int) (*models.Round, error) {
	var round models.Round
	err := database.DB.
		Where("game_type = ? AND duration = ? AND status IN ?", gt, duration, models.ActiveRoundStatuses).
		Order("round_number DESC").
		First(&round).Error
	if err != nil {
		return nil, err
	}
	return &round, nil
}

// openNextRound creates the next betting round of the stream, numbered one
// past the highest number ever issued. If the stream still has an active
// round it is returned unchanged, so double invocation cannot overlap
// rounds; the unique stream index backs this up against racing ticks.
func openNextRound(gt games.GameType, duration int, now time.Time) (*models.Round, error) {
	var next int64 = 1

	var last models.Round
	err := database.DB.
		Where("game_type = ? AND duration = ?", gt, duration).
		Order("round_number DESC").
		First(&last).Error
	if err == nil {
		if !last.Terminal() {
			return &last, nil
		}
		next = last.RoundNumber + 1
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	round := models.Round{
		GameType:    string(gt),
		Duration:    duration,
		RoundNumber: next,
		Status:      models.RoundStatusBetting,
		StartTime:   now,
		EndTime:     now.Add(time.Duration(duration) * time.Second),
	}
	if err := database.DB.Create(&round).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ActiveRound(gt, duration)
		}
		return nil, err
	}
	return &round, nil
}

// CreateRound is the manual-override round creation. Unlike the driver's
// path it refuses to act while the stream already has an active round.
func CreateRound(gt games.GameType, duration int) (*models.Round, error) {
	if !games.ValidGameType(gt) {
		return nil, ErrInvalidChoice
	}
	if duration <= 0 {
		duration = DefaultRoundDuration
	}

	_, err := ActiveRound(gt, duration)
	if err == nil {
		return nil, ErrActiveRoundExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return openNextRound(gt, duration, time.Now())
}

// LockRound forces betting → locked. Locking an already-locked round is a
// no-op; locking a terminal round is an error.
func LockRound(roundID uint) (*models.Round, error) {
	var round models.Round
	if err := database.DB.First(&round, roundID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoundNotFound
		}
		return nil, err
	}

	res := database.DB.Model(&models.Round{}).
		Where("id = ? AND status = ?", roundID, models.RoundStatusBetting).
		Update("status", models.RoundStatusLocked)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if round.Status == models.RoundStatusLocked {
			return &round, nil
		}
		return nil, ErrRoundFinished
	}

	round.Status = models.RoundStatusLocked
	return &round, nil
}
