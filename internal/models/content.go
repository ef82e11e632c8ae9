package models

import (
	"errors"
	"fmt"
)

// ErrUnknownContentType is returned when a content type string is not recognized.
var ErrUnknownContentType = errors.New("unknown content type")

// ContentType identifies one of the generated output categories.
type ContentType string

// Content types.
const (
	ContentDescription    ContentType = "description"
	ContentSpecifications ContentType = "specifications"
	ContentKeyFeatures    ContentType = "key_features"
	ContentBoxContents    ContentType = "box_contents"
)

// AllContentTypes returns every content type in generation order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentDescription,
		ContentSpecifications,
		ContentKeyFeatures,
		ContentBoxContents,
	}
}

// ParseContentType converts a raw string into a ContentType.
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentDescription, ContentSpecifications, ContentKeyFeatures, ContentBoxContents:
		return ContentType(s), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownContentType, s)
	}
}

// IsList reports whether the content type carries an ordered list of items
// rather than a single body string.
func (ct ContentType) IsList() bool {
	return ct != ContentDescription
}

// Header returns the section header the model is asked to emit for this type.
func (ct ContentType) Header() string {
	switch ct {
	case ContentDescription:
		return "DESCRIPTION"
	case ContentSpecifications:
		return "SPECIFICATIONS"
	case ContentKeyFeatures:
		return "KEY FEATURES"
	case ContentBoxContents:
		return "WHAT'S IN THE BOX"
	default:
		return string(ct)
	}
}

// ContentRequest describes one generation call for one product.
// It holds a read-only reference to the product.
type ContentRequest struct {
	Product      *Product      `json:"product"`
	Language     string        `json:"language"`
	Tone         string        `json:"tone"`
	ContentTypes []ContentType `json:"contentTypes"`
}

// ContentItem is one parsed section of generated output.
// Body is set for description; Items for the list types.
type ContentItem struct {
	Type  ContentType `json:"type"`
	Body  string      `json:"body,omitempty"`
	Items []string    `json:"items,omitempty"`
}

// GeneratedContent is a finished piece of content ready for export.
type GeneratedContent struct {
	ProductID   string            `json:"productId"`
	ContentType ContentType       `json:"contentType"`
	Language    string            `json:"language"`
	Body        string            `json:"body,omitempty"`
	Items       []string          `json:"items,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
