// Package main provides the validate command-line tool for batch-checking
// raw product files without calling the model.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"copyforge/internal/config"
	"copyforge/internal/export"
	"copyforge/internal/normalizer"
)

func main() {
	inputPath := flag.String("input", "", "Path to input products JSON file")
	outputPath := flag.String("output", "", "Optional path to write validated products JSON")
	configPath := flag.String("config", "", "Path to YAML config (built-in defaults when empty)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Println("Usage: validate -input <products.json> [-output <validated.json>]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg := config.Default()

	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Error loading config: %v\n", err)
		}

		cfg = loaded
	}

	records, err := export.LoadRawProducts(*inputPath)
	if err != nil {
		log.Fatalf("Error reading products: %v\n", err)
	}

	fmt.Printf("📂 Reading: %s (%d records)\n", *inputPath, len(records))

	builder, err := normalizer.NewBuilder(cfg)
	if err != nil {
		log.Fatalf("Error building schemas: %v\n", err)
	}

	results := builder.BuildAll(records)

	valid := 0

	var output []any

	for _, result := range results {
		if result.Err != nil {
			fmt.Printf("❌ Record %d: %v\n", result.Index, result.Err)

			continue
		}

		valid++

		fmt.Printf("✅ Record %d: %s (%s), %d attributes\n",
			result.Index, result.Product.Name, result.Product.ProductID, len(result.Product.Attributes))

		output = append(output, result.Product)
	}

	fmt.Printf("\n📊 %d/%d records valid\n", valid, len(results))

	if *outputPath != "" && len(output) > 0 {
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			log.Fatalf("Error marshaling output: %v\n", err)
		}

		if err := os.WriteFile(*outputPath, data, 0o644); err != nil {
			log.Fatalf("Error writing output: %v\n", err)
		}

		fmt.Printf("💾 Wrote validated products to: %s\n", *outputPath)
	}

	if valid < len(results) {
		os.Exit(1)
	}
}
