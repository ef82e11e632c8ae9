package normalizer

import (
	"testing"

	"copyforge/internal/config"
	"copyforge/internal/models"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()

	e, err := NewExtractor(config.Default())
	if err != nil {
		t.Fatalf("NewExtractor failed: %v", err)
	}

	return e
}

func findAttribute(attrs []models.Attribute, key string) (models.Attribute, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a, true
		}
	}

	return models.Attribute{}, false
}

func TestExtractor_Extract(t *testing.T) {
	e := newTestExtractor(t)

	attrs := e.Extract("Smartphone", "5000mAh battery")

	battery, ok := findAttribute(attrs, "Battery")
	if !ok {
		t.Fatalf("expected Battery attribute, got %v", attrs)
	}

	if battery.Value != "5000mAh" {
		t.Errorf("expected Battery value '5000mAh', got %q", battery.Value)
	}

	if battery.Source != models.SourceExtracted {
		t.Errorf("expected source %q, got %q", models.SourceExtracted, battery.Source)
	}
}

func TestExtractor_Extract_MultipleAttributes(t *testing.T) {
	e := newTestExtractor(t)

	brief := "Flagship with 6.7 inch display, 12GB RAM, 256GB storage and Android 13."
	attrs := e.Extract("Smartphone", brief)

	expected := map[string]string{
		"Screen Size":      "6.7 inch",
		"RAM":              "12GB",
		"Storage":          "256GB",
		"Operating System": "Android 13",
	}

	for key, want := range expected {
		attr, ok := findAttribute(attrs, key)
		if !ok {
			t.Errorf("expected %s attribute, not found", key)

			continue
		}

		if attr.Value != want {
			t.Errorf("%s: expected %q, got %q", key, want, attr.Value)
		}
	}
}

func TestExtractor_Extract_FirstMatchWins(t *testing.T) {
	e := newTestExtractor(t)

	attrs := e.Extract("Smartphone", "Choose between 4000mAh and 5000mAh variants")

	battery, ok := findAttribute(attrs, "Battery")
	if !ok {
		t.Fatal("expected Battery attribute")
	}

	if battery.Value != "4000mAh" {
		t.Errorf("expected first match '4000mAh', got %q", battery.Value)
	}
}

func TestExtractor_Extract_KeyUniqueness(t *testing.T) {
	e := newTestExtractor(t)

	attrs := e.Extract("Smartphone", "6.1 inch screen, also sold as 6.7 inch model, 5G ready")

	seen := make(map[string]int)
	for _, a := range attrs {
		seen[a.Key]++
	}

	for key, count := range seen {
		if count > 1 {
			t.Errorf("key %s extracted %d times, want 1", key, count)
		}
	}
}

func TestExtractor_Extract_NoMatches(t *testing.T) {
	e := newTestExtractor(t)

	if attrs := e.Extract("Smartphone", "A lovely product everyone enjoys."); len(attrs) != 0 {
		t.Errorf("expected no attributes, got %v", attrs)
	}
}

func TestExtractor_Extract_EmptyBrief(t *testing.T) {
	e := newTestExtractor(t)

	if attrs := e.Extract("Smartphone", ""); attrs != nil {
		t.Errorf("expected nil for empty brief, got %v", attrs)
	}
}

func TestExtractor_Extract_UnknownCategory(t *testing.T) {
	e := newTestExtractor(t)

	// Generic fallback has no patterns, so nothing is extracted.
	if attrs := e.Extract("Toaster", "5000mAh battery"); len(attrs) != 0 {
		t.Errorf("expected no attributes for unknown category, got %v", attrs)
	}
}

func TestExtractor_Extract_Restartable(t *testing.T) {
	e := newTestExtractor(t)

	brief := "6.7 inch display with 5000mAh battery"

	first := e.Extract("Smartphone", brief)
	second := e.Extract("Smartphone", brief)

	if len(first) != len(second) {
		t.Fatalf("repeated extraction differs: %d vs %d attributes", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Errorf("attribute %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}
