// Package normalizer provides product record validation, attribute key
// normalization against per-category alias tables, and attribute extraction
// from free-text briefs.
package normalizer

import (
	"strings"

	"copyforge/internal/config"
	"copyforge/pkg/utils"
)

// Normalizer maps raw attribute keys to canonical keys using the per-category
// alias tables. It is a pure lookup over a table built once at construction.
type Normalizer struct {
	aliases map[string]map[string]string
	helper  *utils.StringHelper
}

// NewNormalizer creates a normalizer from the configured category schemas.
func NewNormalizer(cfg *config.Config) *Normalizer {
	n := &Normalizer{
		aliases: make(map[string]map[string]string, len(cfg.Categories)),
		helper:  utils.NewStringHelper(),
	}

	for name, schema := range cfg.Categories {
		index := make(map[string]string)

		for _, attr := range schema.Attributes {
			index[n.helper.FoldKey(attr.Key)] = attr.Key

			for _, alias := range attr.Aliases {
				index[n.helper.FoldKey(alias)] = attr.Key
			}
		}

		n.aliases[strings.ToLower(name)] = index
	}

	return n
}

// Normalize returns the canonical key for a raw key in the given category.
// Matching is case-insensitive with whitespace and punctuation folding.
// Unknown keys pass through unchanged with known=false; unknown categories
// fall back to the generic schema. Never fails.
func (n *Normalizer) Normalize(category, rawKey string) (canonical string, known bool) {
	index, ok := n.aliases[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		index = n.aliases[config.GenericCategory]
	}

	if canonical, ok := index[n.helper.FoldKey(rawKey)]; ok {
		return canonical, true
	}

	return rawKey, false
}

// CleanValue normalizes an attribute value: collapses whitespace runs and
// rewrites inch quote marks to the word "inch".
func (n *Normalizer) CleanValue(value string) string {
	cleaned := strings.ReplaceAll(value, `"`, " inch")
	cleaned = strings.ReplaceAll(cleaned, "″", " inch")

	return n.helper.NormalizeWhitespace(cleaned)
}
