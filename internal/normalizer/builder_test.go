package normalizer

import (
	"errors"
	"strings"
	"testing"

	"copyforge/internal/config"
	"copyforge/internal/models"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()

	b, err := NewBuilder(config.Default())
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}

	return b
}

func validRecord() map[string]any {
	return map[string]any{
		"product_id": "MPXU-256G",
		"name":       "MegaPhone X Ultra",
		"category":   "Smartphone",
		"attributes": map[string]any{
			"Screen Size": "6.7 inch",
		},
		"brief": "5000mAh battery",
	}
}

func TestBuilder_Build(t *testing.T) {
	b := newTestBuilder(t)

	product, err := b.Build(validRecord())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if product.ProductID != "MPXU-256G" {
		t.Errorf("expected product_id 'MPXU-256G', got %q", product.ProductID)
	}

	screen, ok := product.Attributes["Screen Size"]
	if !ok {
		t.Fatal("expected Screen Size attribute")
	}

	if screen.Value != "6.7 inch" || screen.Source != models.SourceExplicit {
		t.Errorf("expected explicit Screen Size '6.7 inch', got %+v", screen)
	}

	battery, ok := product.Attributes["Battery"]
	if !ok {
		t.Fatal("expected Battery attribute extracted from brief")
	}

	if battery.Value != "5000mAh" || battery.Source != models.SourceExtracted {
		t.Errorf("expected extracted Battery '5000mAh', got %+v", battery)
	}
}

func TestBuilder_Build_RequiredFields(t *testing.T) {
	b := newTestBuilder(t)

	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr error
		field   string
	}{
		{"missing product_id", func(r map[string]any) { delete(r, "product_id") }, ErrMissingField, "product_id"},
		{"missing name", func(r map[string]any) { delete(r, "name") }, ErrMissingField, "name"},
		{"missing category", func(r map[string]any) { delete(r, "category") }, ErrMissingField, "category"},
		{"empty product_id", func(r map[string]any) { r["product_id"] = "  " }, ErrEmptyField, "product_id"},
		{"empty name", func(r map[string]any) { r["name"] = "" }, ErrEmptyField, "name"},
		{"non-string name", func(r map[string]any) { r["name"] = 42 }, ErrInvalidFieldType, "name"},
		{"non-string brief", func(r map[string]any) { r["brief"] = 7 }, ErrInvalidFieldType, "brief"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			product, err := b.Build(record)
			if product != nil {
				t.Error("expected no partial product on failure")
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}

			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not name field %q", err, tt.field)
			}
		})
	}
}

func TestBuilder_Build_NonStringAttributeValue(t *testing.T) {
	b := newTestBuilder(t)

	record := validRecord()
	record["attributes"] = map[string]any{
		"Screen Size": 6.7,
	}

	_, err := b.Build(record)
	if !errors.Is(err, ErrInvalidAttributeValue) {
		t.Fatalf("expected ErrInvalidAttributeValue, got %v", err)
	}

	if !strings.Contains(err.Error(), "Screen Size") {
		t.Errorf("error %q does not name the offending key", err)
	}
}

func TestBuilder_Build_MalformedAttributes(t *testing.T) {
	b := newTestBuilder(t)

	record := validRecord()
	record["attributes"] = "not a mapping"

	if _, err := b.Build(record); !errors.Is(err, ErrInvalidAttributes) {
		t.Fatalf("expected ErrInvalidAttributes, got %v", err)
	}
}

func TestBuilder_Build_ExplicitWinsOverExtracted(t *testing.T) {
	b := newTestBuilder(t)

	record := validRecord()
	record["attributes"] = map[string]any{
		"Battery": "4500mAh",
	}
	record["brief"] = "5000mAh battery with fast charging"

	product, err := b.Build(record)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	battery := product.Attributes["Battery"]
	if battery.Value != "4500mAh" {
		t.Errorf("explicit value overridden: got %q, want '4500mAh'", battery.Value)
	}

	if battery.Source != models.SourceExplicit {
		t.Errorf("expected explicit source, got %q", battery.Source)
	}
}

func TestBuilder_Build_NormalizationIsValueLossless(t *testing.T) {
	b := newTestBuilder(t)

	record := map[string]any{
		"product_id": "P-1",
		"name":       "Test Phone",
		"category":   "Smartphone",
		"attributes": map[string]any{
			"battery_mah":  "5000mAh",
			"display size": "6.7 inch",
			"Color":        "Midnight Blue",
		},
	}

	product, err := b.Build(record)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	explicit := product.ExplicitAttributes()

	want := map[string]string{
		"Battery":     "5000mAh",
		"Screen Size": "6.7 inch",
		"Color":       "Midnight Blue",
	}

	if len(explicit) != len(want) {
		t.Fatalf("expected %d explicit attributes, got %d (%v)", len(want), len(explicit), explicit)
	}

	for key, value := range want {
		if explicit[key] != value {
			t.Errorf("attribute %s: got %q, want %q", key, explicit[key], value)
		}
	}
}

func TestBuilder_Build_UnknownCategoryUsesGenericSchema(t *testing.T) {
	b := newTestBuilder(t)

	record := map[string]any{
		"product_id": "T-1",
		"name":       "Pop-Matic 2000",
		"category":   "Toaster",
		"attributes": map[string]any{
			"Slots": "2",
		},
		"brief": "5000mAh battery", // no toaster patterns, nothing extracted
	}

	product, err := b.Build(record)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if len(product.Attributes) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(product.Attributes))
	}

	if _, ok := product.Attributes["Slots"]; !ok {
		t.Error("expected Slots key passed through unchanged")
	}
}

func TestBuilder_BuildAll_PartialFailure(t *testing.T) {
	b := newTestBuilder(t)

	records := []map[string]any{
		validRecord(),
		{"name": "No ID", "category": "Smartphone"},
		{
			"product_id": "S24-512",
			"name":       "Galaxy S24",
			"category":   "Smartphone",
			"attributes": map[string]any{"RAM": "12GB"},
		},
	}

	results := b.BuildAll(records)
	if len(results) != len(records) {
		t.Fatalf("expected %d results, got %d", len(records), len(results))
	}

	for i, result := range results {
		if result.Index != i {
			t.Errorf("result %d has index %d", i, result.Index)
		}
	}

	if results[0].Err != nil || results[2].Err != nil {
		t.Errorf("valid records failed: %v, %v", results[0].Err, results[2].Err)
	}

	if !errors.Is(results[1].Err, ErrMissingField) {
		t.Errorf("expected ErrMissingField for record 1, got %v", results[1].Err)
	}

	if results[1].Product != nil {
		t.Error("failed record must not carry a product")
	}
}

func TestBuilder_BuildAll_DuplicateProductID(t *testing.T) {
	b := newTestBuilder(t)

	first := validRecord()
	second := validRecord()

	results := b.BuildAll([]map[string]any{first, second})

	if results[0].Err != nil {
		t.Errorf("first record should succeed, got %v", results[0].Err)
	}

	if !errors.Is(results[1].Err, ErrDuplicateProductID) {
		t.Fatalf("expected ErrDuplicateProductID, got %v", results[1].Err)
	}

	if !strings.Contains(results[1].Err.Error(), "MPXU-256G") {
		t.Errorf("error %q does not name the duplicate id", results[1].Err)
	}
}
