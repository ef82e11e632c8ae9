// Package main provides the report formatter command-line tool. It renders
// generated content JSON files into markdown reports.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"copyforge/internal/formatter"
	"copyforge/internal/models"
)

func main() {
	productPath := flag.String("product", "", "Path to a validated product JSON file")
	contentPath := flag.String("content", "", "Path to a generated content JSON file")
	outputPath := flag.String("output", "", "Path to write the markdown report (stdout when empty)")
	help := flag.Bool("help", false, "Show usage information")

	flag.Parse()

	if *help || *productPath == "" || *contentPath == "" {
		printUsage()
		os.Exit(1)
	}

	product, err := readProduct(*productPath)
	if err != nil {
		log.Fatalf("❌ Error reading product: %v\n", err)
	}

	contents, err := readContents(*contentPath)
	if err != nil {
		log.Fatalf("❌ Error reading content: %v\n", err)
	}

	report := formatter.RenderReport(product, contents)

	if *outputPath == "" {
		fmt.Print(report)

		return
	}

	if err := os.MkdirAll(filepath.Dir(*outputPath), 0o755); err != nil {
		log.Fatalf("❌ Error creating output directory: %v\n", err)
	}

	if err := os.WriteFile(*outputPath, []byte(report), 0o644); err != nil {
		log.Fatalf("❌ Error writing report: %v\n", err)
	}

	fmt.Printf("✅ Wrote report: %s\n", *outputPath)
}

func readProduct(path string) (*models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func readContents(path string) ([]models.GeneratedContent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var contents []models.GeneratedContent
	if err := json.Unmarshal(data, &contents); err != nil {
		return nil, err
	}

	return contents, nil
}

func printUsage() {
	fmt.Println("Usage: ./bin/formatter -product <product.json> -content <content.json> [-output <report.md>]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
}
