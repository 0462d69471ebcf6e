// ABOUTME: Prompt catalog parsing: named templates with their generation settings
// ABOUTME: Each entry carries max_tokens and temperature so callers never hardcode them

package prompts

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Prompt names used by the assistant.
const (
	NameIntent    = "intent"
	NameClassify  = "classify"
	NameSummarize = "summarize"
	NameRewrite   = "rewrite"
)

// RequiredNames lists the prompts every catalog must define.
var RequiredNames = []string{NameIntent, NameClassify, NameSummarize, NameRewrite}

// Prompt is one named template plus the sampling settings it is sent with.
type Prompt struct {
	Name        string  `yaml:"-"`
	Template    string  `yaml:"template"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
}

// Catalog is a versioned set of prompts.
type Catalog struct {
	Version     string            `yaml:"version"`
	Description string            `yaml:"description"`
	Prompts     map[string]Prompt `yaml:"prompts"`
}

// LoadCatalog parses a catalog from YAML bytes without checking completeness.
func LoadCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for name, p := range c.Prompts {
		p.Name = name
		c.Prompts[name] = p
	}
	return &c, nil
}

// Validate checks that all required prompts exist with usable settings.
func (c *Catalog) Validate() error {
	for _, name := range RequiredNames {
		p, ok := c.Prompts[name]
		if !ok {
			return fmt.Errorf("catalog %s: missing prompt %q", c.Version, name)
		}
		if p.Template == "" {
			return fmt.Errorf("catalog %s: prompt %q has empty template", c.Version, name)
		}
		if p.MaxTokens <= 0 {
			return fmt.Errorf("catalog %s: prompt %q needs max_tokens > 0", c.Version, name)
		}
		if p.Temperature < 0 || p.Temperature > 1 {
			return fmt.Errorf("catalog %s: prompt %q temperature %.2f outside [0,1]", c.Version, name, p.Temperature)
		}
	}
	return nil
}

// Get returns the named prompt.
func (c *Catalog) Get(name string) (Prompt, error) {
	p, ok := c.Prompts[name]
	if !ok {
		return Prompt{}, fmt.Errorf("unknown prompt %q", name)
	}
	return p, nil
}

// Names returns the catalog's prompt names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.Prompts))
	for n := range c.Prompts {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
