package synthesis

import (
	"math"

	"interview-content-be/pkg/llm"
)

// Fixed per-1000-token rates used for job cost accounting.
const (
	PromptRatePer1K     = 0.0005
	CompletionRatePer1K = 0.0015
)

// EstimateTokens approximates token count from text length. No external
// tokenizer: integer ceil(length / 4).
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return (len(text) + 3) / 4
}

// CostUSD prices one call from provider-reported usage.
func CostUSD(usage llm.Usage) float64 {
	cost := float64(usage.PromptTokens)/1000*PromptRatePer1K +
		float64(usage.CompletionTokens)/1000*CompletionRatePer1K
	// Round to 6 decimal places to keep stored costs stable
	return math.Round(cost*1e6) / 1e6
}
