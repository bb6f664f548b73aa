package config

import (
	_ "embed"
	"fmt"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Default returns the built-in catalog shipped with the binary.
func Default() (*Catalog, error) {
	cat, err := Parse(defaultCatalog)
	if err != nil {
		return nil, fmt.Errorf("built-in catalog is broken: %w", err)
	}
	return cat, nil
}
