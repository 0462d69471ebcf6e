// ABOUTME: Catalog loader with disk-override, embed-fallback strategy
// ABOUTME: Override files may redefine any subset of prompts; the rest come from the embedded catalog

package prompts

import (
	"fmt"
	"maps"
	"os"
	"sync"
)

var defaultCatalog = sync.OnceValues(func() (*Catalog, error) {
	c, err := LoadCatalog(embeddedCatalog)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
})

// Default returns the embedded catalog. It panics if the embedded file is broken,
// which only a bad build can cause.
func Default() *Catalog {
	c, err := defaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("embedded prompt catalog: %v", err))
	}
	return c
}

// Load returns the embedded catalog overlaid with the prompts defined in
// overridePath. An empty overridePath returns the embedded catalog.
func Load(overridePath string) (*Catalog, error) {
	base := Default()
	if overridePath == "" {
		return base, nil
	}

	data, err := os.ReadFile(overridePath)
	if err != nil {
		return nil, fmt.Errorf("read prompt overrides: %w", err)
	}
	override, err := LoadCatalog(data)
	if err != nil {
		return nil, err
	}

	merged := &Catalog{
		Version:     base.Version,
		Description: base.Description,
		Prompts:     maps.Clone(base.Prompts),
	}
	if override.Version != "" {
		merged.Version = override.Version
	}
	maps.Copy(merged.Prompts, override.Prompts)

	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}
