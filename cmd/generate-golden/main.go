// Command generate-golden writes internal/fibonacci/testdata/fibonacci_golden.json
// from the linear reference implementation.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/agbru/powkit/internal/fibonacci"
)

type goldenData struct {
	N      uint64 `json:"n"`
	Result string `json:"result"`
}

// targets covers the uint64 boundary (92..94), powers of two and a few
// larger indices that keep the file small.
var targets = []uint64{
	0, 1, 2, 3, 4, 5, 10, 20, 50, 92, 93, 94, 100,
	128, 256, 512, 1000, 1024,
	2000, 2048, 5000, 8192, 10000,
}

func main() {
	outputDir := flag.String("out", "internal/fibonacci/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := run(*outputDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(outputDir string) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	filename := filepath.Join(outputDir, "fibonacci_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	data := make([]goldenData, 0, len(targets))
	for _, n := range targets {
		data = append(data, goldenData{N: n, Result: fibonacci.Linear(n).String()})
	}

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	fmt.Printf("Generated %d entries in %s\n", len(data), filename)
	return nil
}
