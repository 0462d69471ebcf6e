// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML-based configuration via gopkg.in/yaml.v3; project values override global ones

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings holds the merged configuration.
type Settings struct {
	Provider               string            `yaml:"provider,omitempty"`
	Model                  string            `yaml:"model,omitempty"`
	BaseURL                string            `yaml:"base_url,omitempty"`
	LogLevel               string            `yaml:"log_level,omitempty"`
	MetricsFile            string            `yaml:"metrics_file,omitempty"`
	ValidateClassification *bool             `yaml:"validate_classification,omitempty"`
	Env                    map[string]string `yaml:"env,omitempty"`
}

// ShouldValidate reports whether classify_text results get the heuristic
// cross-check. Unset means true.
func (s *Settings) ShouldValidate() bool {
	if s == nil || s.ValidateClassification == nil {
		return true
	}
	return *s.ValidateClassification
}

// Load reads and merges global and project-local settings, then expands
// ${VAR} references. Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalConfigFile())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(ProjectConfigFile(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads Settings from a YAML file. A missing file yields zero Settings.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.Provider != "" {
		result.Provider = project.Provider
	}
	if project.Model != "" {
		result.Model = project.Model
	}
	if project.BaseURL != "" {
		result.BaseURL = project.BaseURL
	}
	if project.LogLevel != "" {
		result.LogLevel = project.LogLevel
	}
	if project.MetricsFile != "" {
		result.MetricsFile = project.MetricsFile
	}
	if project.ValidateClassification != nil {
		v := *project.ValidateClassification
		result.ValidateClassification = &v
	}

	if len(global.Env) > 0 || len(project.Env) > 0 {
		env := make(map[string]string, len(global.Env)+len(project.Env))
		for k, v := range global.Env {
			env[k] = v
		}
		for k, v := range project.Env {
			env[k] = v
		}
		result.Env = env
	}

	return &result
}

// ApplyEnv exports the settings' env map into the process environment.
// Variables that are already set keep their value.
func (s *Settings) ApplyEnv() error {
	for k, v := range s.Env {
		if _, ok := os.LookupEnv(k); ok {
			continue
		}
		if err := os.Setenv(k, v); err != nil {
			return fmt.Errorf("setting %s: %w", k, err)
		}
	}
	return nil
}
