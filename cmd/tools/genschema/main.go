package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/isaacphi/tbprompt/internal/config"
	"github.com/isaacphi/tbprompt/internal/document"
)

func main() {
	var (
		outFile  string
		template bool
	)
	flag.StringVar(&outFile, "out", "schema.json", "Output file path")
	flag.BoolVar(&template, "template", false, "Generate the prompt template schema instead of the config schema")
	flag.Parse()

	// Convert to absolute path if relative
	if !filepath.IsAbs(outFile) {
		wd, err := os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
		outFile = filepath.Join(wd, outFile)
	}

	generate := config.GenerateJSONSchema
	if template {
		generate = document.GenerateJSONSchema
	}

	schema, err := generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating schema: %v\n", err)
		os.Exit(1)
	}

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling schema: %v\n", err)
		os.Exit(1)
	}

	// Ensure the directory exists
	dir := filepath.Dir(outFile)
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating directory %s: %v\n", dir, err)
		os.Exit(1)
	}

	if err := os.WriteFile(outFile, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema to %s: %v\n", outFile, err)
		os.Exit(1)
	}
	fmt.Printf("Schema written to %s\n", outFile)
}
