package normalizer

import (
	"testing"

	"copyforge/internal/config"
)

func TestNewNormalizer(t *testing.T) {
	n := NewNormalizer(config.Default())
	if n == nil {
		t.Fatal("NewNormalizer returned nil")
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	n := NewNormalizer(config.Default())

	tests := []struct {
		name      string
		category  string
		rawKey    string
		want      string
		wantKnown bool
	}{
		{"exact canonical key", "Smartphone", "Screen Size", "Screen Size", true},
		{"case folding", "Smartphone", "screen size", "Screen Size", true},
		{"underscore folding", "Smartphone", "battery_mah", "Battery", true},
		{"mixed case alias with unit", "Smartphone", "battery_mAh", "Battery", true},
		{"alias lookup", "Smartphone", "Display Size", "Screen Size", true},
		{"hyphen folding", "Smartphone", "screen-size", "Screen Size", true},
		{"extra whitespace", "Smartphone", "  Screen   Size ", "Screen Size", true},
		{"cpu alias", "Smartphone", "CPU", "Processor", true},
		{"unknown key passes through", "Smartphone", "Color", "Color", false},
		{"unknown category falls back to generic", "Toaster", "Screen Size", "Screen Size", false},
		{"category lookup is case-insensitive", "SMARTPHONE", "ram", "RAM", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := n.Normalize(tt.category, tt.rawKey)
			if got != tt.want {
				t.Errorf("Normalize(%q, %q) = %q, want %q", tt.category, tt.rawKey, got, tt.want)
			}

			if known != tt.wantKnown {
				t.Errorf("Normalize(%q, %q) known = %v, want %v", tt.category, tt.rawKey, known, tt.wantKnown)
			}
		})
	}
}

func TestNormalizer_CleanValue(t *testing.T) {
	n := NewNormalizer(config.Default())

	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"whitespace collapse", "  5000   mAh ", "5000 mAh"},
		{"quote mark to inch", `6.7"`, "6.7 inch"},
		{"double prime to inch", "6.7″", "6.7 inch"},
		{"already clean", "Snapdragon 8 Gen 2", "Snapdragon 8 Gen 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := n.CleanValue(tt.value); got != tt.want {
				t.Errorf("CleanValue(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
