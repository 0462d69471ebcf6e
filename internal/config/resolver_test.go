// ABOUTME: Tests for provider/model/credential resolution
// ABOUTME: Covers defaults, aliases, precedence order, and missing credentials

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauromedda/pi-assist-go/pkg/ai"
)

func TestNormalizeProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ProviderHuggingFace},
		{"HF", ProviderHuggingFace},
		{" openai ", ProviderOpenAI},
		{"google", ProviderGemini},
		{"gemini", ProviderGemini},
	}
	for _, tt := range tests {
		got, err := NormalizeProvider(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := NormalizeProvider("anthropic")
	assert.Error(t, err)
}

func TestSelect_HuggingFaceDefaults(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_TOKEN", "hf_test")
	t.Setenv(ModelOverrideEnv, "")

	sel, err := Select(&Settings{}, Overrides{})
	require.NoError(t, err)

	assert.Equal(t, ProviderHuggingFace, sel.Provider)
	assert.Equal(t, ai.DefaultModelID, sel.Model.ID)
	assert.Equal(t, ai.ApiOpenAI, sel.Model.Api)
	assert.Equal(t, "https://router.huggingface.co", sel.BaseURL)
	assert.Equal(t, "hf_test", sel.APIKey)
}

func TestSelect_ModelPrecedence(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_TOKEN", "hf_test")
	t.Setenv(ModelOverrideEnv, "Qwen/Qwen2.5-7B-Instruct")

	sel, err := Select(&Settings{Model: "from-settings"}, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "Qwen/Qwen2.5-7B-Instruct", sel.Model.ID)

	sel, err = Select(&Settings{Model: "from-settings"}, Overrides{Model: "from-flag", BaseURL: "http://localhost:8000/v1"})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", sel.Model.ID)
	assert.Equal(t, "http://localhost:8000/v1", sel.BaseURL)
}

func TestSelect_Gemini(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "g-key")
	t.Setenv(ModelOverrideEnv, "")

	sel, err := Select(&Settings{Provider: "gemini"}, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, ai.ApiGoogle, sel.Model.Api)
	assert.Equal(t, ai.ModelGemini20Flash.ID, sel.Model.ID)
	assert.Equal(t, "g-key", sel.APIKey)
	assert.Empty(t, sel.BaseURL)
}

func TestSelect_MissingCredential(t *testing.T) {
	t.Setenv("HUGGINGFACE_API_TOKEN", "")

	_, err := Select(nil, Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing HUGGINGFACE_API_TOKEN")
}
