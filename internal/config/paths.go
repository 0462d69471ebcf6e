// ABOUTME: Standard filesystem paths for pi-assist configuration
// ABOUTME: Resolves ~/.pi-assist/ for global and .pi-assist/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".pi-assist"
	projectDirName = ".pi-assist"
	configFileName = "config.yaml"
)

// GlobalDir returns the user-global config directory (~/.pi-assist/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.pi-assist/ in root).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), configFileName)
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), configFileName)
}

// DotEnvFile returns the .env path for a project root.
func DotEnvFile(projectRoot string) string {
	return filepath.Join(projectRoot, ".env")
}
