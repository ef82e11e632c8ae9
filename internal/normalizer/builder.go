package normalizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"copyforge/internal/config"
	"copyforge/internal/models"
)

// Validation errors. Each is wrapped with the name of the offending field.
var (
	ErrMissingField          = errors.New("missing required field")
	ErrEmptyField            = errors.New("required field is empty")
	ErrInvalidFieldType      = errors.New("field must be a string")
	ErrInvalidAttributes     = errors.New("attributes must be a mapping")
	ErrInvalidAttributeValue = errors.New("attribute value must be a string")
	ErrDuplicateProductID    = errors.New("duplicate product_id in batch")
)

// Builder assembles validated Product records from raw input mappings,
// applying key normalization to explicit attributes and filling gaps from
// the brief. The operation is all-or-nothing: no partial Product is ever
// returned on failure.
type Builder struct {
	normalizer *Normalizer
	extractor  *Extractor
}

// NewBuilder creates a builder over the configured category schemas.
func NewBuilder(cfg *config.Config) (*Builder, error) {
	extractor, err := NewExtractor(cfg)
	if err != nil {
		return nil, err
	}

	return &Builder{
		normalizer: NewNormalizer(cfg),
		extractor:  extractor,
	}, nil
}

// Build validates a raw record and returns the finished Product.
// Explicit attributes are inserted first; extracted attributes only fill
// canonical keys not already present.
func (b *Builder) Build(raw map[string]any) (*models.Product, error) {
	productID, err := requiredString(raw, "product_id")
	if err != nil {
		return nil, err
	}

	name, err := requiredString(raw, "name")
	if err != nil {
		return nil, err
	}

	category, err := requiredString(raw, "category")
	if err != nil {
		return nil, err
	}

	manufacturer, err := optionalString(raw, "manufacturer")
	if err != nil {
		return nil, err
	}

	brief, err := optionalString(raw, "brief")
	if err != nil {
		return nil, err
	}

	explicit, err := attributeMap(raw)
	if err != nil {
		return nil, err
	}

	table := make(map[string]models.Attribute, len(explicit))

	// Pass 1: explicit attributes, normalized keys.
	keys := make([]string, 0, len(explicit))
	for k := range explicit {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, rawKey := range keys {
		canonical, _ := b.normalizer.Normalize(category, rawKey)
		table[canonical] = models.Attribute{
			Key:    canonical,
			Value:  b.normalizer.CleanValue(explicit[rawKey]),
			Source: models.SourceExplicit,
		}
	}

	// Pass 2: extracted attributes fill gaps only.
	for _, attr := range b.extractor.Extract(category, brief) {
		if _, exists := table[attr.Key]; exists {
			continue
		}

		table[attr.Key] = attr
	}

	return &models.Product{
		ProductID:    productID,
		Name:         name,
		Category:     category,
		Attributes:   table,
		Manufacturer: manufacturer,
		Brief:        brief,
	}, nil
}

// BuildAll builds every record in an ordered batch, reporting one result per
// record. A failing record never aborts the rest; duplicate product_ids
// within the batch fail the later record.
func (b *Builder) BuildAll(records []map[string]any) []models.BatchResult {
	results := make([]models.BatchResult, 0, len(records))
	seen := make(map[string]int, len(records))

	for i, raw := range records {
		product, err := b.Build(raw)
		if err == nil {
			if first, dup := seen[product.ProductID]; dup {
				err = fmt.Errorf("%w: %s (records %d and %d)", ErrDuplicateProductID, product.ProductID, first, i)
				product = nil
			} else {
				seen[product.ProductID] = i
			}
		}

		results = append(results, models.BatchResult{Index: i, Product: product, Err: err})
	}

	return results
}

func requiredString(raw map[string]any, field string) (string, error) {
	value, ok := raw[field]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingField, field)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidFieldType, field)
	}

	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyField, field)
	}

	return s, nil
}

func optionalString(raw map[string]any, field string) (string, error) {
	value, ok := raw[field]
	if !ok || value == nil {
		return "", nil
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidFieldType, field)
	}

	return s, nil
}

// attributeMap pulls the nested attribute mapping out of the raw record.
// Both map[string]string and the map[string]any produced by JSON decoding
// are accepted; non-string values are rejected by key name.
func attributeMap(raw map[string]any) (map[string]string, error) {
	value, ok := raw["attributes"]
	if !ok || value == nil {
		return nil, nil
	}

	switch attrs := value.(type) {
	case map[string]string:
		return attrs, nil
	case map[string]any:
		out := make(map[string]string, len(attrs))

		for k, v := range attrs {
			s, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrInvalidAttributeValue, k)
			}

			out[k] = s
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: attributes", ErrInvalidAttributes)
	}
}
