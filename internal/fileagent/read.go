// ABOUTME: Read step: resolves a user- or model-supplied path and loads it as UTF-8 text
// ABOUTME: Tries Unicode variants (NFD, curly quotes, odd spaces) before giving up

package fileagent

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// normalizeSpaces replaces non-ASCII Unicode spaces with U+0020.
func normalizeSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\u00A0', r == '\u202F', r == '\u205F', r == '\u3000':
			return ' '
		case r >= '\u2000' && r <= '\u200A':
			return ' '
		}
		return r
	}, s)
}

// expandPath drops a leading "@", expands "~" and normalizes spaces.
func expandPath(path string) string {
	path = strings.TrimPrefix(strings.TrimSpace(path), "@")
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return normalizeSpaces(path)
}

func resolveAgainst(path, dir string) string {
	path = expandPath(path)
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return filepath.Clean(path)
}

// resolvePath returns the first existing spelling of path relative to dir,
// or the direct resolution when none exists.
func resolvePath(path, dir string) string {
	straight := strings.ReplaceAll(path, "\u2019", "'")
	candidates := []string{
		resolveAgainst(path, dir),
		resolveAgainst(norm.NFD.String(path), dir),
		resolveAgainst(norm.NFC.String(path), dir),
		resolveAgainst(straight, dir),
		resolveAgainst(norm.NFD.String(straight), dir),
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return candidates[0]
}

// readText loads the file at path as UTF-8 text.
func readText(path, dir string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("empty path")
	}
	data, err := os.ReadFile(resolvePath(path, dir))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: not valid UTF-8 text", path)
	}
	return string(data), nil
}
