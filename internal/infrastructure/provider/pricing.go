package provider

import (
	"strings"

	"github.com/shopspring/decimal"
)

// usdPerKiloToken is a coarse blended price per 1000 tokens, keyed by model
// prefix. Longer prefixes first so gpt-4o-mini does not match the gpt-4o row.
// Used only for the estimated_cost_usd metadata on responses.
var usdPerKiloToken = []struct {
	prefix string
	price  decimal.Decimal
}{
	{"gpt-4o-mini", decimal.NewFromFloat(0.00038)},
	{"gpt-4o", decimal.NewFromFloat(0.0075)},
	{"gpt-4", decimal.NewFromFloat(0.045)},
	{"claude-3-5-haiku", decimal.NewFromFloat(0.0024)},
	{"claude-3-5-sonnet", decimal.NewFromFloat(0.009)},
	{"claude-3-opus", decimal.NewFromFloat(0.045)},
	{"gemini-1.5-flash", decimal.NewFromFloat(0.0004)},
	{"gemini-1.5-pro", decimal.NewFromFloat(0.00375)},
}

// EstimateCost returns the blended USD cost for tokens consumed on model, or
// an empty string when the model has no price entry.
func EstimateCost(model string, tokens int) string {
	if tokens <= 0 {
		return ""
	}
	for _, entry := range usdPerKiloToken {
		if strings.HasPrefix(model, entry.prefix) {
			cost := entry.price.
				Mul(decimal.NewFromInt(int64(tokens))).
				Div(decimal.NewFromInt(1000))
			return cost.Round(6).String()
		}
	}
	return ""
}

func costMetadata(model string, tokens int) map[string]string {
	cost := EstimateCost(model, tokens)
	if cost == "" {
		return nil
	}
	return map[string]string{"estimated_cost_usd": cost}
}
