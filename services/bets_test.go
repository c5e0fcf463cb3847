package services

import (
	"errors"
	"testing"
	"time"

	"rangba/database"
	"rangba/games"
	"rangba/models"
)

func TestPlaceBetDebitsWallet(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "alice", 500)
	round, err := CreateRound(games.Color, 60)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	bet, err := PlaceBet(user.ID, round.ID, "red", 100)
	if err != nil {
		t.Fatalf("place bet: %v", err)
	}
	if bet.Won != nil || bet.Payout != nil {
		t.Error("fresh bet must have NULL won/payout")
	}
	if got := reloadUser(t, user.ID).Balance; got != 400 {
		t.Errorf("balance = %v, want 400", got)
	}
	if n := countLedger(t, user.ID, models.TrxTypeBet); n != 1 {
		t.Errorf("bet ledger rows = %d, want 1", n)
	}
}

func TestPlaceBetRejectsInsufficientBalance(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "bob", 50)
	round, err := CreateRound(games.Parity, 60)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	_, err = PlaceBet(user.ID, round.ID, "odd", 100)
	if !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("err = %v, want ErrInsufficientBalance", err)
	}

	// Rejection leaves no partial state behind.
	if got := reloadUser(t, user.ID).Balance; got != 50 {
		t.Errorf("balance = %v, want untouched 50", got)
	}
	var n int64
	database.DB.Model(&models.Bet{}).Where("user_id = ?", user.ID).Count(&n)
	if n != 0 {
		t.Errorf("bet rows = %d, want 0", n)
	}
}

func TestPlaceBetRejectsSecondBetOnRound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "carol", 500)
	round, err := CreateRound(games.Dice, 60)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	first, err := PlaceBet(user.ID, round.ID, "3", 100)
	if err != nil {
		t.Fatalf("first bet: %v", err)
	}
	_, err = PlaceBet(user.ID, round.ID, "5", 50)
	if !errors.Is(err, ErrAlreadyBet) {
		t.Fatalf("err = %v, want ErrAlreadyBet", err)
	}

	var kept models.Bet
	if err := database.DB.First(&kept, first.ID).Error; err != nil {
		t.Fatalf("first bet vanished: %v", err)
	}
	if kept.Choice != "3" || kept.Amount != 100 {
		t.Errorf("first bet mutated: %+v", kept)
	}
	if got := reloadUser(t, user.ID).Balance; got != 400 {
		t.Errorf("balance = %v, want 400 (only first stake debited)", got)
	}
}

func TestPlaceBetRejectsClosedRound(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "dave", 500)

	round, err := CreateRound(games.BigSmall, 60)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}
	if _, err := LockRound(round.ID); err != nil {
		t.Fatalf("lock round: %v", err)
	}
	if _, err := PlaceBet(user.ID, round.ID, "big", 10); !errors.Is(err, ErrRoundClosed) {
		t.Fatalf("locked round: err = %v, want ErrRoundClosed", err)
	}

	// An expired betting round must reject even before any tick locks it.
	expired := models.Round{
		GameType:    string(games.Number),
		Duration:    60,
		RoundNumber: 1,
		Status:      models.RoundStatusBetting,
		StartTime:   time.Now().Add(-2 * time.Minute),
		EndTime:     time.Now().Add(-time.Minute),
	}
	if err := database.DB.Create(&expired).Error; err != nil {
		t.Fatalf("create expired round: %v", err)
	}
	if _, err := PlaceBet(user.ID, expired.ID, "7", 10); !errors.Is(err, ErrRoundClosed) {
		t.Fatalf("expired round: err = %v, want ErrRoundClosed", err)
	}
}

func TestPlaceBetValidatesChoice(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "erin", 500)
	round, err := CreateRound(games.Color, 60)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	for _, choice := range []string{"blue", "10", "big", ""} {
		if _, err := PlaceBet(user.ID, round.ID, choice, 10); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("choice %q: err = %v, want ErrInvalidChoice", choice, err)
		}
	}
	if _, err := PlaceBet(user.ID, round.ID, "violet", 10); err != nil {
		t.Errorf("violet must be accepted: %v", err)
	}
}

func TestPlaceBetRejectsNonPositiveAmount(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "frank", 500)
	round, err := CreateRound(games.Spin, 60)
	if err != nil {
		t.Fatalf("create round: %v", err)
	}

	for _, amount := range []float64{0, -5} {
		if _, err := PlaceBet(user.ID, round.ID, "star", amount); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %v: err = %v, want ErrInvalidAmount", amount, err)
		}
	}
}
