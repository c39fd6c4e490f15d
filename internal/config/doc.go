// Package config loads, normalizes, and validates mealbot configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours the environment overrides the
// bot has always recognized: NUM_RECIPES, MIN_RATING, MEAL_TYPE,
// PROTEIN_SOURCE, GOOGLE_SHEET_ID, GOOGLE_DOC_ID, GOOGLE_API_TOKEN, and
// APPS_SCRIPT_URL. The Config type centralizes every knob the CLI needs,
// so dataset locations and collaborator credentials are discovered in one
// pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
