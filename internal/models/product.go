// Package models defines the product and content data structures shared across the pipeline.
package models

import "sort"

// AttributeSource indicates where an attribute value came from.
type AttributeSource string

// Attribute sources.
const (
	// SourceExplicit marks attributes supplied in the structured input.
	SourceExplicit AttributeSource = "explicit"
	// SourceExtracted marks attributes recovered from the free-text brief.
	SourceExtracted AttributeSource = "extracted"
)

// Attribute is a single normalized product attribute.
type Attribute struct {
	Key    string          `json:"key"`
	Value  string          `json:"value"`
	Source AttributeSource `json:"source"`
}

// Product is a validated, immutable product record.
// Build one through the normalizer package; do not mutate it afterwards.
type Product struct {
	ProductID    string               `json:"productId"`
	Name         string               `json:"name"`
	Category     string               `json:"category"`
	Attributes   map[string]Attribute `json:"attributes"`
	Manufacturer string               `json:"manufacturer,omitempty"`
	Brief        string               `json:"brief,omitempty"`
}

// AttributeKeys returns the canonical attribute keys in sorted order.
func (p *Product) AttributeKeys() []string {
	keys := make([]string, 0, len(p.Attributes))
	for k := range p.Attributes {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// AttributeTable returns a plain key -> value view of the attribute table,
// suitable for prompt construction and export.
func (p *Product) AttributeTable() map[string]string {
	table := make(map[string]string, len(p.Attributes))
	for k, attr := range p.Attributes {
		table[k] = attr.Value
	}

	return table
}

// ExplicitAttributes returns only the attributes that came from structured input.
func (p *Product) ExplicitAttributes() map[string]string {
	table := make(map[string]string)

	for k, attr := range p.Attributes {
		if attr.Source == SourceExplicit {
			table[k] = attr.Value
		}
	}

	return table
}

// HasAttribute reports whether the canonical key is present in the table.
func (p *Product) HasAttribute(key string) bool {
	_, ok := p.Attributes[key]

	return ok
}

// BatchResult is the outcome of building a single record in batch mode.
// Exactly one of Product or Err is set.
type BatchResult struct {
	Index   int
	Product *Product
	Err     error
}
