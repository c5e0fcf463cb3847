package services

import "errors"

// Validation and state errors surfaced to handlers. Handlers translate
// these into response message codes; anything else is a store failure.
var (
	ErrRoundNotFound       = errors.New("round not found")
	ErrRoundClosed         = errors.New("round is not accepting bets")
	ErrRoundFinished       = errors.New("round already finished")
	ErrActiveRoundExists   = errors.New("an active round already exists for this stream")
	ErrInvalidChoice       = errors.New("choice is not valid for this game type")
	ErrInvalidOutcome      = errors.New("outcome token is not valid for this game type")
	ErrAlreadyBet          = errors.New("user already has a bet on this round")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserInactive        = errors.New("user is not active")
)
