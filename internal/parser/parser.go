// Package parser splits raw generated text into typed content sections.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"copyforge/internal/models"
)

// Parse errors.
var (
	// ErrMissingSection is returned when a requested content type's header
	// never appears in the generated text.
	ErrMissingSection = errors.New("missing content section")
)

// Parser maps raw model output back onto typed content items.
// Section headers are matched case-insensitively and tolerate leading
// markdown symbols and extra whitespace; sections with unrecognized headers
// are ignored.
type Parser struct {
	headers map[models.ContentType]*regexp.Regexp
	unknown *regexp.Regexp
	bullet  *regexp.Regexp
}

// NewParser creates a new response parser instance.
func NewParser() *Parser {
	headers := make(map[models.ContentType]*regexp.Regexp, len(models.AllContentTypes()))

	for _, ct := range models.AllContentTypes() {
		// e.g. "## KEY FEATURES:" / "key features :" / "**SPECIFICATIONS:**"
		headers[ct] = regexp.MustCompile(`(?i)^[\s#*>_-]*` + regexp.QuoteMeta(ct.Header()) + `\s*:`)
	}

	return &Parser{
		headers: headers,
		// An all-caps line ending in a colon that is not one of ours, e.g.
		// "SEO KEYWORDS:". Its section is skipped, not merged into the
		// previous one.
		unknown: regexp.MustCompile(`^[\s#*>_-]*[A-Z][A-Z0-9 '&/-]+\s*:\s*$`),
		bullet:  regexp.MustCompile(`^\s*(?:[-*\x{2022}]|\d+[.)])\s+`),
	}
}

// Parse scans the text once, line by line, collecting the section for each
// known header, and returns one ContentItem per requested content type in
// the order requested. A requested type whose header is absent yields an
// error naming the type.
func (p *Parser) Parse(text string, requested []models.ContentType) ([]models.ContentItem, error) {
	sections := p.splitSections(text)

	items := make([]models.ContentItem, 0, len(requested))

	for _, ct := range requested {
		lines, found := sections[ct]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, ct)
		}

		items = append(items, p.buildItem(ct, lines))
	}

	return items, nil
}

// splitSections runs the line state machine: seeking a header, then
// accumulating section lines until the next header or end of input.
func (p *Parser) splitSections(text string) map[models.ContentType][]string {
	sections := make(map[models.ContentType][]string)

	var current models.ContentType

	inSection := false

	for _, line := range strings.Split(text, "\n") {
		if ct, rest, ok := p.matchHeader(line); ok {
			current = ct
			inSection = true
			// Seeing the header at all counts as the section existing,
			// even if no content follows.
			if _, seen := sections[current]; !seen {
				sections[current] = nil
			}

			// Content on the header line itself belongs to the section.
			if rest := strings.Trim(rest, " \t*_"); rest != "" {
				sections[current] = append(sections[current], rest)
			}

			continue
		}

		if p.unknown.MatchString(line) {
			inSection = false

			continue
		}

		if inSection {
			sections[current] = append(sections[current], line)
		}
	}

	return sections
}

func (p *Parser) matchHeader(line string) (models.ContentType, string, bool) {
	for _, ct := range models.AllContentTypes() {
		if loc := p.headers[ct].FindStringIndex(line); loc != nil {
			return ct, line[loc[1]:], true
		}
	}

	return "", "", false
}

// buildItem shapes accumulated section lines into a ContentItem. List types
// turn each bullet line into one element; the description body is joined
// into a single string. Blank lines are discarded either way.
func (p *Parser) buildItem(ct models.ContentType, lines []string) models.ContentItem {
	item := models.ContentItem{Type: ct}

	if !ct.IsList() {
		var body []string

		for _, line := range lines {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				body = append(body, trimmed)
			}
		}

		item.Body = strings.Join(body, "\n")

		return item
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		item.Items = append(item.Items, strings.TrimSpace(p.bullet.ReplaceAllString(line, "")))
	}

	return item
}
