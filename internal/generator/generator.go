// Package generator builds prompts, invokes the model collaborator, and
// turns parsed responses into finished content records.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"copyforge/internal/config"
	"copyforge/internal/logger"
	"copyforge/internal/models"
	"copyforge/internal/parser"
)

// Request validation errors.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrUnsupportedTone     = errors.New("unsupported tone")
	ErrNoContentTypes      = errors.New("request has no content types")
)

// Generator drives content generation for products.
type Generator struct {
	client ModelClient
	parser *parser.Parser
	cfg    *config.Config
	logger *logger.Logger
}

// NewGenerator creates a generator backed by the OpenAI client. The API key
// is read from the environment.
func NewGenerator(cfg *config.Config, log *logger.Logger) (*Generator, error) {
	apiKey, err := config.APIKey()
	if err != nil {
		return nil, err
	}

	client, err := NewOpenAIClient(cfg.OpenAI, apiKey)
	if err != nil {
		return nil, err
	}

	return NewGeneratorWithClient(cfg, log, client), nil
}

// NewGeneratorWithClient creates a generator with a custom model client
// (useful for testing).
func NewGeneratorWithClient(cfg *config.Config, log *logger.Logger, client ModelClient) *Generator {
	return &Generator{
		client: client,
		parser: parser.NewParser(),
		cfg:    cfg,
		logger: log,
	}
}

// Generate produces content for a single request: prompt, one model call,
// response parsing. A missing section in the response surfaces as a parse
// error naming the content type.
func (g *Generator) Generate(ctx context.Context, req models.ContentRequest) ([]models.GeneratedContent, error) {
	if err := g.validateRequest(req); err != nil {
		return nil, err
	}

	schema := g.cfg.SchemaFor(req.Product.Category)
	prompt := BuildPrompt(req, g.cfg.ToneDescription(req.Tone), schema.Audience)

	g.logger.Debug("calling model", "product_id", req.Product.ProductID, "prompt_bytes", len(prompt))

	raw, err := g.client.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed for %s: %w", req.Product.ProductID, err)
	}

	items, err := g.parser.Parse(raw, req.ContentTypes)
	if err != nil {
		return nil, fmt.Errorf("response for %s: %w", req.Product.ProductID, err)
	}

	contents := make([]models.GeneratedContent, 0, len(items))
	for _, item := range items {
		contents = append(contents, g.finishItem(req, item))
	}

	return contents, nil
}

func (g *Generator) validateRequest(req models.ContentRequest) error {
	if !g.cfg.IsSupportedLanguage(req.Language) {
		return fmt.Errorf("%w: %s", ErrUnsupportedLanguage, req.Language)
	}

	if !g.cfg.IsSupportedTone(req.Tone) {
		return fmt.Errorf("%w: %s", ErrUnsupportedTone, req.Tone)
	}

	if len(req.ContentTypes) == 0 {
		return ErrNoContentTypes
	}

	return nil
}

func (g *Generator) finishItem(req models.ContentRequest, item models.ContentItem) models.GeneratedContent {
	text := item.Body
	if item.Type.IsList() {
		text = strings.Join(item.Items, "\n")
	}

	return models.GeneratedContent{
		ProductID:   req.Product.ProductID,
		ContentType: item.Type,
		Language:    req.Language,
		Body:        item.Body,
		Items:       item.Items,
		Metadata: map[string]string{
			"word_count":   strconv.Itoa(len(strings.Fields(text))),
			"generated_at": time.Now().UTC().Format(time.RFC3339),
			"model":        g.cfg.OpenAI.Model,
			"tone":         req.Tone,
		},
	}
}

// GenerationResult is the outcome of one product in a batch run.
type GenerationResult struct {
	Index     int
	ProductID string
	Contents  []models.GeneratedContent
	Err       error
}

// GenerateBatch generates content for every product concurrently, bounded by
// generation.max_concurrent. Results are indexed by input position; one
// failing product never aborts or corrupts the rest. Cancelling the context
// fails the not-yet-started records with the context error.
func (g *Generator) GenerateBatch(ctx context.Context, products []*models.Product, language, tone string) []GenerationResult {
	batchID := uuid.NewString()
	log := g.logger.With("batch_id", batchID)
	log.Info("starting generation batch", "products", len(products), "language", language, "tone", tone)

	results := make([]GenerationResult, len(products))
	sem := make(chan struct{}, g.cfg.Generation.MaxConcurrent)

	var wg sync.WaitGroup

	for i, product := range products {
		results[i] = GenerationResult{Index: i, ProductID: product.ProductID}

		if err := ctx.Err(); err != nil {
			results[i].Err = err

			continue
		}

		select {
		case <-ctx.Done():
			results[i].Err = ctx.Err()

			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)

		go func(i int, product *models.Product) {
			defer wg.Done()
			defer func() { <-sem }()

			req := models.ContentRequest{
				Product:      product,
				Language:     language,
				Tone:         tone,
				ContentTypes: g.requestedTypes(),
			}

			contents, err := g.Generate(ctx, req)
			if err != nil {
				log.Warn("generation failed", "product_id", product.ProductID, "error", err)
			}

			results[i].Contents = contents
			results[i].Err = err
		}(i, product)
	}

	wg.Wait()
	log.Info("generation batch complete", "products", len(products))

	return results
}

func (g *Generator) requestedTypes() []models.ContentType {
	configured := g.cfg.RequestedContentTypes()
	types := make([]models.ContentType, 0, len(configured))

	for _, s := range configured {
		ct, err := models.ParseContentType(s)
		if err != nil {
			continue
		}

		types = append(types, ct)
	}

	return types
}
