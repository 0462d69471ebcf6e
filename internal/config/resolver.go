// ABOUTME: Resolves provider, model, base URL and credential from settings, flags and env
// ABOUTME: Missing credential for the selected provider is a startup error

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

// Provider names accepted in settings and on the command line.
const (
	ProviderHuggingFace = "huggingface"
	ProviderOpenAI      = "openai"
	ProviderGemini      = "gemini"
)

// ModelOverrideEnv names the variable that overrides the model identifier.
const ModelOverrideEnv = "HF_MODEL"

type providerInfo struct {
	api          ai.Api
	defaultModel string
	baseURL      string
	keyVars      []string
}

var providers = map[string]providerInfo{
	ProviderHuggingFace: {
		api:          ai.ApiOpenAI,
		defaultModel: ai.DefaultModelID,
		baseURL:      "https://router.huggingface.co",
		keyVars:      []string{"HUGGINGFACE_API_TOKEN"},
	},
	ProviderOpenAI: {
		api:          ai.ApiOpenAI,
		defaultModel: ai.ModelGPT4oMini.ID,
		keyVars:      []string{"OPENAI_API_KEY"},
	},
	ProviderGemini: {
		api:          ai.ApiGoogle,
		defaultModel: ai.ModelGemini20Flash.ID,
		keyVars:      []string{"GEMINI_API_KEY", "GOOGLE_API_KEY"},
	},
}

var providerAliases = map[string]string{
	"hf":     ProviderHuggingFace,
	"google": ProviderGemini,
}

// Overrides carries command-line values that beat the settings files.
type Overrides struct {
	Provider string
	Model    string
	BaseURL  string
}

// Selection is the resolved model endpoint for this process.
type Selection struct {
	Provider string
	Model    ai.Model
	BaseURL  string
	APIKey   string
}

// NormalizeProvider maps a provider name or alias to its canonical form.
// Empty selects Hugging Face.
func NormalizeProvider(name string) (string, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ProviderHuggingFace, nil
	}
	if alias, ok := providerAliases[n]; ok {
		n = alias
	}
	if _, ok := providers[n]; !ok {
		return "", fmt.Errorf("unknown provider %q (want huggingface, openai or gemini)", name)
	}
	return n, nil
}

// APIKey returns the credential for provider from the environment.
func APIKey(provider string) (string, error) {
	info, ok := providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown provider %q", provider)
	}
	for _, v := range info.keyVars {
		if key := strings.TrimSpace(os.Getenv(v)); key != "" {
			return key, nil
		}
	}
	return "", fmt.Errorf("missing %s in environment or .env", strings.Join(info.keyVars, " or "))
}

// Select resolves the endpoint. Model precedence: flag, HF_MODEL, settings,
// provider default. Base URL precedence: flag, settings, provider default.
func Select(s *Settings, o Overrides) (*Selection, error) {
	if s == nil {
		s = &Settings{}
	}

	providerName := o.Provider
	if providerName == "" {
		providerName = s.Provider
	}
	provider, err := NormalizeProvider(providerName)
	if err != nil {
		return nil, err
	}
	info := providers[provider]

	key, err := APIKey(provider)
	if err != nil {
		return nil, err
	}

	modelID := firstNonEmpty(o.Model, os.Getenv(ModelOverrideEnv), s.Model, info.defaultModel)
	model := ai.ResolveModel(modelID, info.api)

	return &Selection{
		Provider: provider,
		Model:    model,
		BaseURL:  firstNonEmpty(o.BaseURL, s.BaseURL, info.baseURL),
		APIKey:   key,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
