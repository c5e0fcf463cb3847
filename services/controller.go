package services

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"rangba/database"
	"rangba/games"
	"rangba/models"

	"gorm.io/gorm"
)

// DefaultRoundDuration applies when the controller setting carries no
// override for a game type.
const DefaultRoundDuration = 60

// ControllerConfig mirrors the auto_game_controller setting row.
type ControllerConfig struct {
	Enabled   bool           `json:"enabled"`
	Durations map[string]int `json:"durations,omitempty"`
}

func (c ControllerConfig) DurationFor(gt games.GameType) int {
	if d, ok := c.Durations[string(gt)]; ok && d > 0 {
		return d
	}
	return DefaultRoundDuration
}

// LoadControllerConfig reads the toggle fresh from the store. It is called
// on every tick, never cached, so flipping it between ticks takes effect
// immediately. A missing row is seeded enabled with default durations.
func LoadControllerConfig() (ControllerConfig, error) {
	var setting models.Setting
	err := database.DB.Where("key = ?", models.SettingAutoGameController).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg := ControllerConfig{Enabled: true}
		if saveErr := SaveControllerConfig(cfg); saveErr != nil {
			return ControllerConfig{}, saveErr
		}
		return cfg, nil
	}
	if err != nil {
		return ControllerConfig{}, err
	}

	var cfg ControllerConfig
	if err := json.Unmarshal(setting.Value, &cfg); err != nil {
		return ControllerConfig{}, err
	}
	return cfg, nil
}

func SaveControllerConfig(cfg ControllerConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	var setting models.Setting
	err = database.DB.Where("key = ?", models.SettingAutoGameController).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return database.DB.Create(&models.Setting{
			Key:   models.SettingAutoGameController,
			Value: raw,
		}).Error
	}
	if err != nil {
		return err
	}
	return database.DB.Model(&setting).Update("value", raw).Error
}

// TickResult is one game type's outcome of a controller tick.
type TickResult struct {
	GameType    string `json:"game_type"`
	Duration    int    `json:"duration"`
	Action      string `json:"action"`
	RoundNumber int64  `json:"round_number,omitempty"`
	Result      string `json:"result,omitempty"`
	NextRound   int64  `json:"next_round,omitempty"`
	Error       string `json:"error,omitempty"`
}

// RunControllerTick advances every game type's round stream by at most one
// transition. Each tick rehydrates all state from the store; a game type's
// failure is reported in its result line and never blocks the others, and
// nothing is retried here because the next tick re-observes whatever state
// was left behind.
func RunControllerTick(now time.Time) ([]TickResult, error) {
	cfg, err := LoadControllerConfig()
	if err != nil {
		return nil, err
	}

	if !cfg.Enabled {
		return []TickResult{{Action: "skipped: auto controller disabled"}}, nil
	}

	results := make([]TickResult, 0, len(games.All()))
	for _, gt := range games.All() {
		res := tickGame(gt, cfg.DurationFor(gt), now)
		if res.Error != "" {
			log.Printf("❌ controller: %s/%ds: %s", res.GameType, res.Duration, res.Error)
		}
		results = append(results, res)
	}
	return results, nil
}

// tickGame drives one (game type, duration) stream: open a round when none
// exists, lock an expired betting round, resolve and settle a locked one,
// and immediately open the next so coverage never gaps.
func tickGame(gt games.GameType, duration int, now time.Time) TickResult {
	res := TickResult{GameType: string(gt), Duration: duration}

	round, err := ActiveRound(gt, duration)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		opened, openErr := openNextRound(gt, duration, now)
		if openErr != nil {
			res.Error = openErr.Error()
			return res
		}
		res.Action = "opened"
		res.RoundNumber = opened.RoundNumber
		return res
	}
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.RoundNumber = round.RoundNumber

	if round.Status == models.RoundStatusBetting && now.Before(round.EndTime) {
		res.Action = "betting"
		return res
	}

	if round.Status == models.RoundStatusBetting {
		lockRes := database.DB.Model(&models.Round{}).
			Where("id = ? AND status = ?", round.ID, models.RoundStatusBetting).
			Update("status", models.RoundStatusLocked)
		if lockRes.Error != nil {
			res.Error = lockRes.Error.Error()
			return res
		}
		round.Status = models.RoundStatusLocked
	}

	// An admin may lock early; hold resolution until the scheduled end.
	if now.Before(round.EndTime) {
		res.Action = "locked"
		return res
	}

	bets, err := BetsForRound(round.ID)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	stakes := make([]games.Stake, len(bets))
	for i, b := range bets {
		stakes[i] = games.Stake{Choice: b.Choice, Amount: b.Amount}
	}

	eval := games.Evaluate(gt, stakes)
	if err := finalizeRound(round, eval.Outcome); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Action = "completed"
	res.Result = eval.Outcome

	next, err := openNextRound(gt, duration, now)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.NextRound = next.RoundNumber
	return res
}
