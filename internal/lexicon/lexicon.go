// Package lexicon holds the static reference lists the signal extractors
// match against: product categories, use cases, feature phrases and brands.
package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
)

// Lexicon is an ordered, read-only set of match targets. Consumers must not
// mutate the slices; swap the whole value through a Store instead.
type Lexicon struct {
	Categories []string `json:"categories"`
	UseCases   []string `json:"use_cases"`
	Features   []string `json:"features"`
	Brands     []string `json:"brands"`
}

// Default returns the built-in reference lists.
func Default() *Lexicon {
	return &Lexicon{
		Categories: defaultCategories,
		UseCases:   defaultUseCases,
		Features:   defaultFeatures,
		Brands:     defaultBrands,
	}
}

// LoadFile reads a JSON lexicon override. Sections absent from the file keep
// the built-in lists, so a file may override just the brands, say.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	var override Lexicon
	if err := json.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parse lexicon file %s: %w", path, err)
	}
	merged := Default()
	if len(override.Categories) > 0 {
		merged.Categories = override.Categories
	}
	if len(override.UseCases) > 0 {
		merged.UseCases = override.UseCases
	}
	if len(override.Features) > 0 {
		merged.Features = override.Features
	}
	if len(override.Brands) > 0 {
		merged.Brands = override.Brands
	}
	return merged, nil
}
