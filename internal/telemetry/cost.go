// ABOUTME: Per-model pricing table and cost estimation for model calls
// ABOUTME: Covers the OpenAI and Gemini defaults and Hugging Face router instruct models

package telemetry

import "strings"

// ModelPricing holds per-million-token rates for a model.
type ModelPricing struct {
	InputPerMillion  float64 // USD per million input tokens
	OutputPerMillion float64 // USD per million output tokens
}

// defaultPricing is keyed by model ID prefix.
// LookupPricing uses the longest matching prefix.
var defaultPricing = map[string]ModelPricing{
	// OpenAI
	"gpt-4o":      {InputPerMillion: 2.50, OutputPerMillion: 10.0},
	"gpt-4o-mini": {InputPerMillion: 0.15, OutputPerMillion: 0.60},
	"gpt-4.1":     {InputPerMillion: 2.0, OutputPerMillion: 8.0},
	// Google
	"gemini-2.0-flash": {InputPerMillion: 0.10, OutputPerMillion: 0.40},
	"gemini-1.5-flash": {InputPerMillion: 0.075, OutputPerMillion: 0.30},
	// Hugging Face router (serverless inference providers)
	"mistralai/":  {InputPerMillion: 0.20, OutputPerMillion: 0.20},
	"meta-llama/": {InputPerMillion: 0.20, OutputPerMillion: 0.20},
	"Qwen/":       {InputPerMillion: 0.20, OutputPerMillion: 0.20},
}

// fallbackPricing is used when the model is not in the table.
var fallbackPricing = ModelPricing{}

// LookupPricing returns the pricing for a model ID.
// Tries exact match first, then longest prefix match, then a zero fallback.
func LookupPricing(modelID string) ModelPricing {
	if p, ok := defaultPricing[modelID]; ok {
		return p
	}

	bestKey := ""
	for key := range defaultPricing {
		if strings.HasPrefix(modelID, key) && len(key) > len(bestKey) {
			bestKey = key
		}
	}
	if bestKey != "" {
		return defaultPricing[bestKey]
	}

	return fallbackPricing
}

// EstimateCost returns the estimated cost in USD for a given model and token counts.
func EstimateCost(modelID string, inputTokens, outputTokens int) float64 {
	p := LookupPricing(modelID)
	inputCost := float64(inputTokens) / 1_000_000 * p.InputPerMillion
	outputCost := float64(outputTokens) / 1_000_000 * p.OutputPerMillion
	return inputCost + outputCost
}
