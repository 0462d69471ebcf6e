// ABOUTME: Tests for built-in model lookup and ad-hoc model resolution
// ABOUTME: Covers found, not-found, and unknown hub model names

package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindModel(t *testing.T) {
	t.Parallel()

	m := FindModel(DefaultModelID)
	require.NotNil(t, m)
	assert.Equal(t, ApiOpenAI, m.Api)
	assert.Equal(t, "https://router.huggingface.co", m.BaseURL)

	assert.Nil(t, FindModel("nonexistent-model"))
}

func TestResolveModel(t *testing.T) {
	t.Parallel()

	got := ResolveModel("gemini-2.0-flash", ApiGoogle)
	assert.Equal(t, "Gemini 2.0 Flash", got.Name)

	adhoc := ResolveModel("meta-llama/Llama-3.1-8B-Instruct", ApiOpenAI)
	assert.Equal(t, "meta-llama/Llama-3.1-8B-Instruct", adhoc.ID)
	assert.Equal(t, ApiOpenAI, adhoc.Api)
	assert.Empty(t, adhoc.BaseURL)

	// Known ID requested on a different API is treated as ad-hoc.
	cross := ResolveModel("gemini-2.0-flash", ApiOpenAI)
	assert.Equal(t, ApiOpenAI, cross.Api)
}
