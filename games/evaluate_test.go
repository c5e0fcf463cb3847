package games

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestEvaluateWorkedExample(t *testing.T) {
	// red 100, green 100, violet 50: red and green both profit 50, violet
	// profits 0; red wins the tie because it comes first in the table.
	stakes := []Stake{
		{Choice: "red", Amount: 100},
		{Choice: "green", Amount: 100},
		{Choice: "violet", Amount: 50},
	}

	eval := Evaluate(Color, stakes)
	if eval.Outcome != "red" {
		t.Fatalf("outcome = %q, want red", eval.Outcome)
	}
	if eval.Random {
		t.Error("evaluation with stakes must not be random")
	}
	if !eval.TotalAmount.Equal(decimal.NewFromInt(250)) {
		t.Errorf("total = %s, want 250", eval.TotalAmount)
	}
	if !eval.Payout.Equal(decimal.NewFromInt(200)) {
		t.Errorf("payout = %s, want 200", eval.Payout)
	}
	if !eval.Profit.Equal(decimal.NewFromInt(50)) {
		t.Errorf("profit = %s, want 50", eval.Profit)
	}
}

// TestEvaluateMaximizesProfit cross-checks the chosen outcome against a
// brute-force sweep of the candidate table.
func TestEvaluateMaximizesProfit(t *testing.T) {
	cases := []struct {
		name   string
		gt     GameType
		stakes []Stake
	}{
		{
			"color mixed buckets and digits",
			Color,
			[]Stake{{"red", 500}, {"green", 120}, {"violet", 80}, {"5", 40}, {"0", 10}, {"7", 300}},
		},
		{
			"parity lopsided",
			Parity,
			[]Stake{{"odd", 900}, {"even", 10}},
		},
		{
			"dice spread",
			Dice,
			[]Stake{{"1", 50}, {"2", 50}, {"3", 200}, {"6", 10}},
		},
		{
			"number single heavy",
			Number,
			[]Stake{{"7", 1000}, {"2", 5}},
		},
		{
			"spin symbols",
			Spin,
			[]Stake{{"seven", 100}, {"cherry", 400}, {"star", 50}},
		},
		{
			"bigsmall balanced",
			BigSmall,
			[]Stake{{"big", 100}, {"small", 100}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eval := Evaluate(tc.gt, tc.stakes)
			total := decimal.Zero
			for _, s := range tc.stakes {
				total = total.Add(decimal.NewFromFloat(s.Amount))
			}

			chosenProfit := total.Sub(TotalPayout(tc.gt, eval.Outcome, tc.stakes))
			if !chosenProfit.Equal(eval.Profit) {
				t.Fatalf("reported profit %s != recomputed %s", eval.Profit, chosenProfit)
			}

			for _, candidate := range Outcomes(tc.gt) {
				profit := total.Sub(TotalPayout(tc.gt, candidate, tc.stakes))
				if profit.GreaterThan(chosenProfit) {
					t.Errorf("candidate %q profits %s, beating chosen %q at %s",
						candidate, profit, eval.Outcome, chosenProfit)
				}
			}
		})
	}
}

func TestEvaluateTieBreaksByTableOrder(t *testing.T) {
	// Equal stakes on odd and even profit identically; the first table
	// entry must win deterministically.
	stakes := []Stake{{"odd", 100}, {"even", 100}}
	for i := 0; i < 10; i++ {
		eval := Evaluate(Parity, stakes)
		if eval.Outcome != "odd" {
			t.Fatalf("tie broke to %q, want odd (first table entry)", eval.Outcome)
		}
	}
}

func TestEvaluateEmptyRoundIsUniform(t *testing.T) {
	// With no stakes every outcome profits zero; the draw must not be
	// pinned to the first table entry.
	seen := make(map[string]bool)
	for i := 0; i < 400; i++ {
		eval := Evaluate(Parity, nil)
		if !eval.Random {
			t.Fatal("empty round evaluation must be flagged random")
		}
		if !ValidOutcome(Parity, eval.Outcome) {
			t.Fatalf("drew invalid outcome %q", eval.Outcome)
		}
		seen[eval.Outcome] = true
	}
	if len(seen) < 2 {
		t.Errorf("400 empty-round draws produced only %v; expected both tokens", seen)
	}
}
