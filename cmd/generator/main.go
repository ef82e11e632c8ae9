// Package main provides the unified generator command that validates products
// and generates marketing content for them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"copyforge/internal/config"
	"copyforge/internal/export"
	"copyforge/internal/formatter"
	"copyforge/internal/generator"
	"copyforge/internal/logger"
	"copyforge/internal/models"
	"copyforge/internal/normalizer"
)

func main() {
	// 1. Define Command-Line Flags
	// ---------------------------
	configPath := flag.String("config", "", "Path to YAML config (built-in defaults when empty)")
	productsPath := flag.String("products", "data/sample_products.json", "Path to products JSON file")
	language := flag.String("language", "", "Target language (default from config)")
	tone := flag.String("tone", "friendly", "Content tone")
	report := flag.Bool("report", false, "Also write a markdown report per product")

	flag.Parse()

	// .env is optional; the API key may come from the real environment.
	_ = godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)

	if *language == "" {
		*language = cfg.Generation.DefaultLanguage
	}

	log.Info("🚀 Starting Copyforge Pipeline")
	log.Info(fmt.Sprintf("📍 Source: %s", *productsPath))
	log.Info(fmt.Sprintf("🌐 Language: %s, Tone: %s", *language, *tone))

	startTime := time.Now()

	// 2. Ingestion (Load raw records)
	// -------------------------------
	log.Info("Phase 1: Ingestion (Loading products)...")

	records, err := export.LoadRawProducts(*productsPath)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Load failed: %v", err))
		os.Exit(1)
	}

	log.Info(fmt.Sprintf("✅ Loaded %d raw records", len(records)))

	// 3. Processing (Validation & Normalization)
	// ------------------------------------------
	log.Info("Phase 2: Processing (Validation & Normalization)...")

	builder, err := normalizer.NewBuilder(cfg)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Builder setup failed: %v", err))
		os.Exit(1)
	}

	var products []*models.Product

	buildFailures := 0

	for _, result := range builder.BuildAll(records) {
		if result.Err != nil {
			buildFailures++

			log.Warn(fmt.Sprintf("⚠️  Record %d rejected: %v", result.Index, result.Err))

			continue
		}

		products = append(products, result.Product)
	}

	log.Info(fmt.Sprintf("✅ Built %d products (%d rejected)", len(products), buildFailures))

	if len(products) == 0 {
		log.Error("❌ No valid products to generate content for")
		os.Exit(1)
	}

	// 4. Generation (Model calls & parsing)
	// -------------------------------------
	log.Info("Phase 3: Generation (Model calls & parsing)...")

	gen, err := generator.NewGenerator(cfg, log)
	if err != nil {
		log.Error(fmt.Sprintf("❌ Generator setup failed: %v", err))
		os.Exit(1)
	}

	results := gen.GenerateBatch(context.Background(), products, *language, *tone)

	// 5. Export
	// ---------
	log.Info("Phase 4: Export...")

	writer := export.NewWriter(cfg.Output)
	productByID := make(map[string]*models.Product, len(products))

	for _, p := range products {
		productByID[p.ProductID] = p
	}

	written := 0
	genFailures := 0

	for _, result := range results {
		if result.Err != nil {
			genFailures++

			continue
		}

		path, writeErr := writer.WriteContent(result.ProductID, *language, result.Contents)
		if writeErr != nil {
			log.Error(fmt.Sprintf("❌ Export failed for %s: %v", result.ProductID, writeErr))

			continue
		}

		if *report {
			reportPath := filepath.Join(filepath.Dir(path), "report.md")
			md := formatter.RenderReport(productByID[result.ProductID], result.Contents)

			if writeErr := os.WriteFile(reportPath, []byte(md), 0o644); writeErr != nil {
				log.Warn(fmt.Sprintf("⚠️  Report write failed for %s: %v", result.ProductID, writeErr))
			}
		}

		written++
	}

	// 6. Final Report
	// ---------------
	log.Info("✨ Pipeline Complete!")
	fmt.Println("\n------------------------------------------------")
	fmt.Printf("📊 Summary Report\n")
	fmt.Println("------------------------------------------------")
	fmt.Printf("Raw records: %d\n", len(records))
	fmt.Printf("Products built: %d (rejected: %d)\n", len(products), buildFailures)
	fmt.Printf("Content generated: %d (failed: %d)\n", written, genFailures)
	fmt.Printf("Total Duration: %v\n", time.Since(startTime))
	fmt.Println("------------------------------------------------")

	if buildFailures > 0 || genFailures > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}

	return config.LoadConfig(path)
}
