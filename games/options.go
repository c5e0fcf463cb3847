package games

import "github.com/shopspring/decimal"

type GameType string

const (
	Color    GameType = "color"
	Parity   GameType = "parity"
	BigSmall GameType = "bigsmall"
	Dice     GameType = "dice"
	Number   GameType = "number"
	Spin     GameType = "spin"
)

// All returns every playable game type in controller order.
func All() []GameType {
	return []GameType{Color, Parity, BigSmall, Dice, Number, Spin}
}

func ValidGameType(gt GameType) bool {
	for _, g := range All() {
		if g == gt {
			return true
		}
	}
	return false
}

var (
	x2  = decimal.NewFromInt(2)
	x3  = decimal.NewFromInt(3)
	x4  = decimal.NewFromInt(4)
	x5  = decimal.NewFromInt(5)
	x6  = decimal.NewFromInt(6)
	x7  = decimal.NewFromInt(7)
	x9  = decimal.NewFromInt(9)
	x10 = decimal.NewFromInt(10)

	// spinPairMultiplier pays any two-of-three symbol match.
	spinPairMultiplier = decimal.RequireFromString("1.5")
)

// Option is one choosable token with the multiplier a winning bet on it
// pays. Table order is the evaluator's tie-break order.
type Option struct {
	Token      string
	Multiplier decimal.Decimal
}

// The single authoritative payout table. Both the automatic controller and
// the admin result panel read these values; there is no second copy.
var (
	colorOptions = []Option{
		{"red", x2}, {"green", x2}, {"violet", x5},
		{"0", x10}, {"1", x10}, {"2", x10}, {"3", x10}, {"4", x10},
		{"5", x10}, {"6", x10}, {"7", x10}, {"8", x10}, {"9", x10},
	}
	parityOptions = []Option{
		{"odd", x2}, {"even", x2},
	}
	bigSmallOptions = []Option{
		{"big", x2}, {"small", x2},
	}
	diceOptions = []Option{
		{"1", x6}, {"2", x6}, {"3", x6}, {"4", x6}, {"5", x6}, {"6", x6},
	}
	numberOptions = []Option{
		{"0", x9}, {"1", x9}, {"2", x9}, {"3", x9}, {"4", x9},
		{"5", x9}, {"6", x9}, {"7", x9}, {"8", x9}, {"9", x9},
	}

	// spinSymbols pay their own multiplier on a triple match.
	spinSymbols = []Option{
		{"cherry", x2}, {"lemon", x3}, {"grape", x4},
		{"bell", x5}, {"star", x7}, {"seven", x10},
	}
)

func optionsFor(gt GameType) []Option {
	switch gt {
	case Color:
		return colorOptions
	case Parity:
		return parityOptions
	case BigSmall:
		return bigSmallOptions
	case Dice:
		return diceOptions
	case Number:
		return numberOptions
	case Spin:
		return spinSymbols
	}
	return nil
}

// spinOutcomes is every drawable three-symbol sequence, in symbol-table
// order so the evaluator's tie-break stays deterministic.
var spinOutcomes = buildSpinOutcomes()

func buildSpinOutcomes() []string {
	out := make([]string, 0, len(spinSymbols)*len(spinSymbols)*len(spinSymbols))
	for _, a := range spinSymbols {
		for _, b := range spinSymbols {
			for _, c := range spinSymbols {
				out = append(out, a.Token+"-"+b.Token+"-"+c.Token)
			}
		}
	}
	return out
}

// Outcomes returns every candidate result token for the game type. For spin
// this is the full sequence space, not the per-symbol choice set.
func Outcomes(gt GameType) []string {
	if gt == Spin {
		return spinOutcomes
	}
	opts := optionsFor(gt)
	tokens := make([]string, len(opts))
	for i, o := range opts {
		tokens[i] = o.Token
	}
	return tokens
}

// ValidChoice reports whether a bettor may stake on the token. Spin bets
// choose a single symbol, never a full sequence.
func ValidChoice(gt GameType, choice string) bool {
	for _, o := range optionsFor(gt) {
		if o.Token == choice {
			return true
		}
	}
	return false
}

// ValidOutcome reports whether the token may be assigned as a round result.
func ValidOutcome(gt GameType, token string) bool {
	for _, o := range Outcomes(gt) {
		if o == token {
			return true
		}
	}
	return false
}

func choiceMultiplier(gt GameType, choice string) decimal.Decimal {
	for _, o := range optionsFor(gt) {
		if o.Token == choice {
			return o.Multiplier
		}
	}
	return decimal.Zero
}
