package games

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// Stake is the slice of a bet the evaluator needs.
type Stake struct {
	Choice string
	Amount float64
}

// Evaluation is the outcome the house should declare and the money it
// moves. Random marks the empty-round fallback draw.
type Evaluation struct {
	Outcome     string
	TotalAmount decimal.Decimal
	Payout      decimal.Decimal
	Profit      decimal.Decimal
	Random      bool
}

// Evaluate scores every candidate outcome for the game type and returns
// the one with the greatest house profit, ties broken by option-table
// order. With no stakes every outcome profits equally, so a uniformly
// random token is drawn instead of always reporting the first entry.
func Evaluate(gt GameType, stakes []Stake) Evaluation {
	outcomes := Outcomes(gt)
	if len(stakes) == 0 {
		return Evaluation{
			Outcome: outcomes[rand.IntN(len(outcomes))],
			Random:  true,
		}
	}

	total := decimal.Zero
	for _, s := range stakes {
		total = total.Add(decimal.NewFromFloat(s.Amount))
	}

	var best Evaluation
	for i, outcome := range outcomes {
		payout := TotalPayout(gt, outcome, stakes)
		profit := total.Sub(payout)
		if i == 0 || profit.GreaterThan(best.Profit) {
			best = Evaluation{
				Outcome:     outcome,
				TotalAmount: total,
				Payout:      payout,
				Profit:      profit,
			}
		}
	}
	return best
}

// TotalPayout sums amount × multiplier over every stake that wins under
// the outcome, each multiplier resolved for the bettor's own choice.
func TotalPayout(gt GameType, outcome string, stakes []Stake) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range stakes {
		m := Multiplier(gt, outcome, s.Choice)
		if m.IsZero() {
			continue
		}
		sum = sum.Add(decimal.NewFromFloat(s.Amount).Mul(m))
	}
	return sum
}
