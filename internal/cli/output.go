package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// printer is the locale-aware message printer for number formatting in
// human-readable summaries.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// formatKW renders a kW figure with thousand separators, e.g. "1,402.5 kW".
func formatKW(kw float64) string {
	return printer.Sprintf("%.1f kW", kw)
}

// formatUSD renders a dollar figure with thousand separators.
func formatUSD(usd float64) string {
	return printer.Sprintf("$%.0f", usd)
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

// loadAnswers reads a yaml (or JSON, a yaml subset) answers file into the
// loosely-typed map the calculators expect.
func loadAnswers(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading answers file: %w", err)
	}

	var answers map[string]any
	if err := yaml.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parsing answers file: %w", err)
	}
	return answers, nil
}
