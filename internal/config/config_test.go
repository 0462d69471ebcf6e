// ABOUTME: Tests for config loading, merging, and env application
// ABOUTME: Uses temp directories and t.Setenv for isolated file-based tests

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Model: "default-model", LogLevel: "info", ValidateClassification: boolPtr(true)}
	project := &Settings{Model: "project-model", ValidateClassification: boolPtr(false)}

	result := merge(global, project)

	assert.Equal(t, "project-model", result.Model)
	assert.Equal(t, "info", result.LogLevel)
	assert.False(t, result.ShouldValidate())
	assert.True(t, global.ShouldValidate(), "global must not be mutated")
}

func TestMerge_Nil(t *testing.T) {
	t.Parallel()

	result := merge(nil, nil)
	require.NotNil(t, result)
	assert.True(t, result.ShouldValidate())
}

func TestMerge_EnvMerge(t *testing.T) {
	t.Parallel()

	global := &Settings{Env: map[string]string{"A": "1", "B": "2"}}
	project := &Settings{Env: map[string]string{"B": "3", "C": "4"}}

	result := merge(global, project)

	assert.Equal(t, map[string]string{"A": "1", "B": "3", "C": "4"}, result.Env)
	assert.Equal(t, "2", global.Env["B"], "global env must not be mutated")
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PI_ASSIST_TEST_MODEL", "from-env")

	require.NoError(t, os.MkdirAll(GlobalDir(), 0o700))
	require.NoError(t, os.WriteFile(GlobalConfigFile(), []byte("provider: openai\nmodel: global-model\nlog_level: debug\n"), 0o600))

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(ProjectDir(root), 0o700))
	require.NoError(t, os.WriteFile(ProjectConfigFile(root), []byte("model: ${PI_ASSIST_TEST_MODEL}\nvalidate_classification: false\n"), 0o600))

	s, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, "openai", s.Provider)
	assert.Equal(t, "from-env", s.Model)
	assert.Equal(t, "debug", s.LogLevel)
	assert.False(t, s.ShouldValidate())
}

func TestLoad_MissingFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(ProjectDir(root), 0o700))
	require.NoError(t, os.WriteFile(ProjectConfigFile(root), []byte("model: [unterminated\n"), 0o600))

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading project config")
}

func TestApplyEnv_KeepsExisting(t *testing.T) {
	t.Setenv("PI_ASSIST_KEEP", "preset")
	t.Setenv("PI_ASSIST_NEW", "")
	require.NoError(t, os.Unsetenv("PI_ASSIST_NEW"))

	s := &Settings{Env: map[string]string{"PI_ASSIST_KEEP": "changed", "PI_ASSIST_NEW": "set"}}
	require.NoError(t, s.ApplyEnv())

	assert.Equal(t, "preset", os.Getenv("PI_ASSIST_KEEP"))
	assert.Equal(t, "set", os.Getenv("PI_ASSIST_NEW"))
}

func TestPaths(t *testing.T) {
	t.Parallel()

	assert.Equal(t, filepath.Join("proj", ".pi-assist", "config.yaml"), ProjectConfigFile("proj"))
	assert.Equal(t, filepath.Join("proj", ".env"), DotEnvFile("proj"))
}
