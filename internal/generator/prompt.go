package generator

import (
	"fmt"
	"strings"

	"copyforge/internal/models"
)

// Section instruction lines per content type, in the order the model should
// emit them.
var sectionInstructions = map[models.ContentType]string{
	models.ContentDescription:    "1. Product Description (max 80 words)",
	models.ContentSpecifications: "2. Technical Specifications (bullet points)",
	models.ContentKeyFeatures:    "3. Key Features and Benefits (3-4 points)",
	models.ContentBoxContents:    "4. What's in the Box (complete list)",
}

// BuildPrompt assembles the generation prompt for one request.
// toneDescription and audience come from config; attributes are rendered in
// sorted key order so the prompt is deterministic for a given product.
func BuildPrompt(req models.ContentRequest, toneDescription, audience string) string {
	var sb strings.Builder

	product := req.Product

	fmt.Fprintf(&sb, "You are an expert e-commerce copywriter specializing in %s products.\n\n", product.Category)
	fmt.Fprintf(&sb, "Generate the following content for the %s %s:\n\n", product.Name, product.Category)

	for _, ct := range req.ContentTypes {
		fmt.Fprintf(&sb, "%s\n", sectionInstructions[ct])
	}

	sb.WriteString("\nProduct Attributes:\n")

	table := product.AttributeTable()
	for _, key := range product.AttributeKeys() {
		fmt.Fprintf(&sb, "- %s: %s\n", key, table[key])
	}

	if product.Manufacturer != "" {
		fmt.Fprintf(&sb, "\nManufacturer: %s\n", product.Manufacturer)
	}

	fmt.Fprintf(&sb, "\nBrand Tone: %s\n", toneDescription)
	fmt.Fprintf(&sb, "Language: %s\n", req.Language)

	if audience != "" {
		fmt.Fprintf(&sb, "Target Audience: %s\n", audience)
	}

	sb.WriteString("\nPlease format your response as:\n")

	for _, ct := range req.ContentTypes {
		fmt.Fprintf(&sb, "%s:\n", ct.Header())

		if ct.IsList() {
			sb.WriteString("- [Item 1]\n- [Item 2]\n...\n")
		} else {
			sb.WriteString("[Your compelling product description]\n")
		}

		sb.WriteString("\n")
	}

	return sb.String()
}
