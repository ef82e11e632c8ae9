package normalizer

import (
	"fmt"
	"regexp"
	"strings"

	"copyforge/internal/config"
	"copyforge/internal/models"
	"copyforge/pkg/utils"
)

// Extractor scans free-text briefs for known attribute patterns.
// Stateless per invocation; a scan over the same brief always yields the
// same attributes in the same order.
type Extractor struct {
	patterns map[string][]attributePattern
	helper   *utils.StringHelper
}

type attributePattern struct {
	key   string
	rules []*regexp.Regexp
}

// NewExtractor compiles the configured extraction patterns per category.
func NewExtractor(cfg *config.Config) (*Extractor, error) {
	e := &Extractor{
		patterns: make(map[string][]attributePattern, len(cfg.Categories)),
		helper:   utils.NewStringHelper(),
	}

	for name, schema := range cfg.Categories {
		var patterns []attributePattern

		for _, attr := range schema.Attributes {
			if len(attr.Patterns) == 0 {
				continue
			}

			ap := attributePattern{key: attr.Key}

			for _, raw := range attr.Patterns {
				re, err := regexp.Compile("(?i)" + raw)
				if err != nil {
					return nil, fmt.Errorf("category %s attribute %s: %w", name, attr.Key, err)
				}

				ap.rules = append(ap.rules, re)
			}

			patterns = append(patterns, ap)
		}

		e.patterns[strings.ToLower(name)] = patterns
	}

	return e, nil
}

// Extract scans the brief with the category's pattern set and returns the
// extracted attributes in schema order. For each canonical key the first
// match wins; keys without a match yield nothing. Never fails.
func (e *Extractor) Extract(category, brief string) []models.Attribute {
	if brief == "" {
		return nil
	}

	patterns, ok := e.patterns[strings.ToLower(strings.TrimSpace(category))]
	if !ok {
		patterns = e.patterns[config.GenericCategory]
	}

	var extracted []models.Attribute

	for _, ap := range patterns {
		for _, re := range ap.rules {
			match := re.FindStringSubmatch(brief)
			if match == nil {
				continue
			}

			value := match[0]
			if len(match) > 1 && match[1] != "" {
				value = match[1]
			}

			extracted = append(extracted, models.Attribute{
				Key:    ap.key,
				Value:  e.helper.NormalizeWhitespace(value),
				Source: models.SourceExtracted,
			})

			break
		}
	}

	return extracted
}
