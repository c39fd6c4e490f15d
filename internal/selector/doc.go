// Package selector draws the run's random recipe sample.
//
// Sampling is uniform without replacement; a subset smaller than the
// requested count is returned whole rather than treated as an error.
package selector
