// Package gdocs creates a dated meal plan document for the selected
// recipes, combining a per-recipe shopping list with cooking directions.
//
// Document creation is optional: when the collaborator is disabled or has
// no credentials, a noop service is returned and the pipeline skips the
// document step.
package gdocs
