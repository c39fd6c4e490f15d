// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mealbot/internal/config"
	"mealbot/internal/recipe"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.CuratedDataset = filepath.Join(base, "curated_recipes.json")
	cfgVal.Paths.RawDataset = filepath.Join(base, "raw_recipes.json")
	cfgVal.Paths.StateDir = filepath.Join(base, "state")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithSpreadsheet configures the sheets collaborator on the test config.
func WithSpreadsheet(spreadsheetID, baseURL string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Sheets.SpreadsheetID = spreadsheetID
		b.cfg.Sheets.BaseURL = baseURL
		b.cfg.Sheets.APIToken = "test-token"
	}
}

// WithSelection overrides the runtime selection parameters.
func WithSelection(num int, mealType, proteinSource string, minRating float64) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Selection.NumRecipes = num
		b.cfg.Selection.MealType = mealType
		b.cfg.Selection.ProteinSource = proteinSource
		b.cfg.Selection.MinRating = minRating
	}
}

// WithCuratedDataset writes the records as the curated dataset file.
func WithCuratedDataset(records []recipe.Record) ConfigOption {
	return func(b *configBuilder) {
		writeDataset(b.t, b.cfg.Paths.CuratedDataset, records)
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.StateDir)
}

func writeDataset(t testing.TB, path string, records []recipe.Record) {
	t.Helper()
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		t.Fatalf("marshal dataset: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir dataset dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
}
