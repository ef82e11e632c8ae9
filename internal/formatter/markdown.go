// Package formatter renders generated product content as markdown reports.
package formatter

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"copyforge/internal/models"
)

// RenderReport produces a markdown report for one product: an aligned
// attribute table followed by each generated content section in order.
func RenderReport(product *models.Product, contents []models.GeneratedContent) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", product.Name)
	fmt.Fprintf(&sb, "Product ID: `%s`  \n", product.ProductID)
	fmt.Fprintf(&sb, "Category: %s\n", product.Category)

	if product.Manufacturer != "" {
		fmt.Fprintf(&sb, "Manufacturer: %s\n", product.Manufacturer)
	}

	sb.WriteString("\n")

	if len(product.Attributes) > 0 {
		sb.WriteString("## Attributes\n\n")
		sb.WriteString(renderAttributeTable(product))
		sb.WriteString("\n")
	}

	for _, content := range contents {
		fmt.Fprintf(&sb, "## %s\n\n", headerTitle(content.ContentType))

		if content.ContentType.IsList() {
			for _, item := range content.Items {
				fmt.Fprintf(&sb, "- %s\n", item)
			}
		} else {
			sb.WriteString(content.Body)
			sb.WriteString("\n")
		}

		sb.WriteString("\n")
	}

	return strings.TrimRight(sb.String(), "\n") + "\n"
}

// renderAttributeTable builds a markdown table with columns padded to their
// display width so the raw markdown stays readable.
func renderAttributeTable(product *models.Product) string {
	rows := [][]string{{"Attribute", "Value", "Source"}}

	for _, key := range product.AttributeKeys() {
		attr := product.Attributes[key]
		rows = append(rows, []string{attr.Key, attr.Value, string(attr.Source)})
	}

	colWidths := make([]int, len(rows[0]))

	for _, row := range rows {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Minimum separator width of 3 dashes.
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	var sb strings.Builder

	writeRow := func(row []string) {
		sb.WriteString("|")

		for i, cell := range row {
			sb.WriteString(" ")
			sb.WriteString(cell)
			sb.WriteString(strings.Repeat(" ", colWidths[i]-runewidth.StringWidth(cell)))
			sb.WriteString(" |")
		}

		sb.WriteString("\n")
	}

	writeRow(rows[0])

	sb.WriteString("|")

	for _, w := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", w))
		sb.WriteString(" |")
	}

	sb.WriteString("\n")

	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}

// headerTitle turns a content type into a human-facing section title.
func headerTitle(ct models.ContentType) string {
	switch ct {
	case models.ContentDescription:
		return "Description"
	case models.ContentSpecifications:
		return "Specifications"
	case models.ContentKeyFeatures:
		return "Key Features"
	case models.ContentBoxContents:
		return "What's in the Box"
	default:
		return string(ct)
	}
}
