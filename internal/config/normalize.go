package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// normalize expands paths, applies environment overrides, and lowercases
// enum-style fields. Called by Load before validation.
func (c *Config) normalize() error {
	if err := c.applyEnvOverrides(); err != nil {
		return err
	}

	for _, field := range []*string{
		&c.Paths.CuratedDataset,
		&c.Paths.RawDataset,
		&c.Paths.StateDir,
		&c.Paths.LogDir,
	} {
		expanded, err := expandPath(strings.TrimSpace(*field))
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Selection.MealType = strings.ToLower(strings.TrimSpace(c.Selection.MealType))
	c.Selection.ProteinSource = strings.ToLower(strings.TrimSpace(c.Selection.ProteinSource))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	c.Sheets.SpreadsheetID = strings.TrimSpace(c.Sheets.SpreadsheetID)
	c.Sheets.BaseURL = strings.TrimRight(strings.TrimSpace(c.Sheets.BaseURL), "/")
	c.Docs.BaseURL = strings.TrimRight(strings.TrimSpace(c.Docs.BaseURL), "/")
	c.Email.TriggerURL = strings.TrimSpace(c.Email.TriggerURL)

	return nil
}

// applyEnvOverrides honours the environment variables the bot has always
// recognized. They take precedence over file values so cron entries can
// vary a single knob without a config edit.
func (c *Config) applyEnvOverrides() error {
	if value, ok := envValue("NUM_RECIPES"); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("NUM_RECIPES: %w", err)
		}
		c.Selection.NumRecipes = parsed
	}
	if value, ok := envValue("MIN_RATING"); ok {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("MIN_RATING: %w", err)
		}
		c.Selection.MinRating = parsed
	}
	if value, ok := envValue("MEAL_TYPE"); ok {
		c.Selection.MealType = value
	}
	if value, ok := envValue("PROTEIN_SOURCE"); ok {
		c.Selection.ProteinSource = value
	}
	if value, ok := envValue("GOOGLE_SHEET_ID"); ok {
		c.Sheets.SpreadsheetID = value
	}
	if value, ok := envValue("GOOGLE_API_TOKEN"); ok {
		if c.Sheets.APIToken == "" {
			c.Sheets.APIToken = value
		}
		if c.Docs.APIToken == "" {
			c.Docs.APIToken = value
		}
	}
	if value, ok := envValue("APPS_SCRIPT_URL"); ok {
		c.Email.TriggerURL = value
	}
	return nil
}

func envValue(key string) (string, bool) {
	value, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
