package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mealbot/internal/config"
	"mealbot/internal/dataset"
	"mealbot/internal/recipe"
	"mealbot/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
	baseDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	for _, key := range []string{"NUM_RECIPES", "MIN_RATING", "MEAL_TYPE", "PROTEIN_SOURCE", "GOOGLE_SHEET_ID", "GOOGLE_API_TOKEN", "APPS_SCRIPT_URL"} {
		t.Setenv(key, "")
	}

	cfg := testsupport.NewConfig(t,
		testsupport.WithSelection(3, "entree", "any", 3.5),
	)

	configPath := filepath.Join(homeDir, ".config", "mealbot", "config.toml")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{
		cfg:        cfg,
		configPath: configPath,
		baseDir:    base,
	}
}

func writeCuratedFixture(t *testing.T, cfg *config.Config) {
	t.Helper()
	if err := dataset.Save(cfg.Paths.CuratedDataset, testsupport.CuratedRecords()); err != nil {
		t.Fatalf("write curated fixture: %v", err)
	}
}

func writeRawFixture(t *testing.T, cfg *config.Config, records []recipe.Record) {
	t.Helper()
	if err := dataset.Save(cfg.Paths.RawDataset, records); err != nil {
		t.Fatalf("write raw fixture: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	content := fmt.Sprintf(`[paths]
curated_dataset = %q
raw_dataset = %q
state_dir = %q
log_dir = %q

[selection]
num_recipes = %d
min_rating = %v
meal_type = %q
protein_source = %q

[logging]
format = "console"
level = "error"
`,
		cfg.Paths.CuratedDataset,
		cfg.Paths.RawDataset,
		cfg.Paths.StateDir,
		cfg.Paths.LogDir,
		cfg.Selection.NumRecipes,
		cfg.Selection.MinRating,
		cfg.Selection.MealType,
		cfg.Selection.ProteinSource,
	)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
