package games

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Wins reports whether a bet on choice pays out when outcome is the round
// result. Most game types are plain equality; color cross-resolves a digit
// result into the color buckets, and spin counts symbol matches.
func Wins(gt GameType, outcome, choice string) bool {
	switch gt {
	case Color:
		return colorWins(outcome, choice)
	case Spin:
		return spinMatches(outcome, choice) >= 2
	default:
		return outcome == choice
	}
}

// Multiplier returns the payout multiplier for the bettor's own choice
// category under the given outcome, or zero when the bet loses. A single
// color digit result pays 10x to the digit pick and 2x/5x to the color
// buckets it lands in; a spin triple pays the symbol's multiplier while a
// two-of-three pays a flat 1.5x.
func Multiplier(gt GameType, outcome, choice string) decimal.Decimal {
	if !Wins(gt, outcome, choice) {
		return decimal.Zero
	}
	if gt == Spin {
		if spinMatches(outcome, choice) == 3 {
			return choiceMultiplier(Spin, choice)
		}
		return spinPairMultiplier
	}
	return choiceMultiplier(gt, choice)
}

// Payout is Multiplier applied to a stake, rounded to 2 places.
func Payout(gt GameType, outcome, choice string, amount float64) float64 {
	m := Multiplier(gt, outcome, choice)
	if m.IsZero() {
		return 0
	}
	return decimal.NewFromFloat(amount).Mul(m).Round(2).InexactFloat64()
}

func colorWins(outcome, choice string) bool {
	if outcome == choice {
		return true
	}
	d, ok := colorDigit(outcome)
	if !ok {
		return false
	}
	switch choice {
	case "red":
		return d%2 == 1
	case "green":
		return d%2 == 0
	case "violet":
		return d == 0 || d == 5
	}
	return false
}

func colorDigit(token string) (int, bool) {
	if len(token) != 1 || token[0] < '0' || token[0] > '9' {
		return 0, false
	}
	return int(token[0] - '0'), true
}

func spinMatches(outcome, choice string) int {
	n := 0
	for _, sym := range strings.Split(outcome, "-") {
		if sym == choice {
			n++
		}
	}
	return n
}
