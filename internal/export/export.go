// Package export reads raw product files and writes generated content to disk.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"copyforge/internal/config"
	"copyforge/internal/models"
)

// ErrInvalidProductFile is returned when a product file is neither a JSON
// object nor a JSON array of objects.
var ErrInvalidProductFile = errors.New("product file must be a JSON object or array of objects")

// LoadRawProducts reads raw product records from a JSON file. A single
// object and an array of objects are both accepted.
func LoadRawProducts(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read product file: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("failed to parse product file: %w", err)
	}

	switch v := decoded.(type) {
	case []any:
		records := make([]map[string]any, 0, len(v))

		for i, item := range v {
			record, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: element %d", ErrInvalidProductFile, i)
			}

			records = append(records, record)
		}

		return records, nil
	case map[string]any:
		return []map[string]any{v}, nil
	default:
		return nil, ErrInvalidProductFile
	}
}

// SaveProducts writes validated products back out as a JSON array.
func SaveProducts(path string, products []*models.Product, pretty bool) error {
	return writeJSON(path, products, pretty)
}

// Writer persists generated content per the output configuration.
type Writer struct {
	cfg config.OutputConfig
}

// NewWriter creates a new content writer.
func NewWriter(cfg config.OutputConfig) *Writer {
	return &Writer{cfg: cfg}
}

// OutputPath follows the structure {base_path}/{product_id}/{language}/content.{format}.
func (w *Writer) OutputPath(productID, language string) string {
	return filepath.Join(
		w.cfg.BasePath,
		productID,
		strings.ToLower(language),
		"content."+w.cfg.Format,
	)
}

// WriteContent writes one product's generated content and returns the path.
func (w *Writer) WriteContent(productID, language string, contents []models.GeneratedContent) (string, error) {
	path := w.OutputPath(productID, language)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	if w.cfg.Format == "jsonl" {
		if err := writeJSONL(path, contents); err != nil {
			return "", err
		}

		return path, nil
	}

	if err := writeJSON(path, contents, w.cfg.PrettyPrint); err != nil {
		return "", err
	}

	return path, nil
}

func writeJSON(path string, v any, pretty bool) error {
	var (
		data []byte
		err  error
	)

	if pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}

func writeJSONL(path string, contents []models.GeneratedContent) error {
	var sb strings.Builder

	for _, content := range contents {
		line, err := json.Marshal(content)
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}

		sb.Write(line)
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
