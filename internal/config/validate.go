package config

import (
	"errors"
	"fmt"
	"strings"
)

var knownMealTypes = map[string]struct{}{
	"any":       {},
	"entree":    {},
	"dessert":   {},
	"appetizer": {},
	"breakfast": {},
	"side":      {},
	"soup":      {},
}

var knownProteinSources = map[string]struct{}{
	"any":     {},
	"chicken": {},
	"beef":    {},
	"pork":    {},
	"seafood": {},
	"turkey":  {},
	"lamb":    {},
	"eggs":    {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateSelection(); err != nil {
		return err
	}
	if err := c.validateCollaborators(); err != nil {
		return err
	}
	if err := c.validateCuration(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.CuratedDataset) == "" {
		return errors.New("paths.curated_dataset must be set")
	}
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		return errors.New("paths.state_dir must be set")
	}
	return nil
}

func (c *Config) validateSelection() error {
	if c.Selection.NumRecipes < 1 {
		return errors.New("selection.num_recipes must be positive")
	}
	if c.Selection.MinRating < 0 || c.Selection.MinRating > 5 {
		return errors.New("selection.min_rating must be between 0 and 5")
	}
	if _, ok := knownMealTypes[c.Selection.MealType]; !ok {
		return fmt.Errorf("selection.meal_type: unknown value %q", c.Selection.MealType)
	}
	if _, ok := knownProteinSources[c.Selection.ProteinSource]; !ok {
		return fmt.Errorf("selection.protein_source: unknown value %q", c.Selection.ProteinSource)
	}
	return nil
}

func (c *Config) validateCollaborators() error {
	if c.Sheets.SpreadsheetID != "" {
		if strings.TrimSpace(c.Sheets.SheetName) == "" {
			return errors.New("sheets.sheet_name must be set when sheets.spreadsheet_id is set")
		}
		if strings.TrimSpace(c.Sheets.BaseURL) == "" {
			return errors.New("sheets.base_url must be set when sheets.spreadsheet_id is set")
		}
	}
	if err := ensurePositiveMap(map[string]int{
		"sheets.timeout_seconds": c.Sheets.TimeoutSecs,
		"docs.timeout_seconds":   c.Docs.TimeoutSecs,
		"email.timeout_seconds":  c.Email.TimeoutSecs,
	}); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCuration() error {
	cur := c.Curation
	if cur.MinProtein < 0 {
		return errors.New("curation.min_protein must be >= 0")
	}
	if cur.MaxProtein <= cur.MinProtein {
		return errors.New("curation.max_protein must be greater than curation.min_protein")
	}
	if cur.MinRating < 0 || cur.MinRating > 5 {
		return errors.New("curation.min_rating must be between 0 and 5")
	}
	if cur.MaxIngredients < 1 {
		return errors.New("curation.max_ingredients must be positive")
	}
	if cur.MinIngredients < 1 || cur.MinIngredients > cur.MaxIngredients {
		return errors.New("curation.min_ingredients must be between 1 and curation.max_ingredients")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
