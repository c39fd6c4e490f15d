package filter

import (
	"strings"

	"mealbot/internal/recipe"
)

// Criteria holds the runtime filter parameters for one run. Build it once
// from config and pass it by value; Apply never mutates records.
type Criteria struct {
	MealType      string
	ProteinSource recipe.ProteinSource // empty means any
	MinRating     float64
}

// Apply returns the subset of records matching all predicates, preserving
// input order. An empty result is not an error here; the pipeline driver
// decides how to report it.
func Apply(records []recipe.Record, criteria Criteria) []recipe.Record {
	matched := make([]recipe.Record, 0, len(records))
	for _, record := range records {
		if !matchesRating(record, criteria.MinRating) {
			continue
		}
		if !matchesProteinSource(record, criteria.ProteinSource) {
			continue
		}
		if !matchesMealType(record, criteria.MealType) {
			continue
		}
		matched = append(matched, record)
	}
	return matched
}

// matchesRating requires rating >= min. A record without a rating passes
// only when no real floor is requested.
func matchesRating(record recipe.Record, minRating float64) bool {
	rating, ok := record.RatingValue()
	if !ok {
		return minRating <= 0
	}
	return rating >= minRating
}

// matchesProteinSource applies only when a specific source is requested.
// Records without a protein_source tag (anything outside the curated
// dataset) are excluded in that case.
func matchesProteinSource(record recipe.Record, source recipe.ProteinSource) bool {
	if source == "" {
		return true
	}
	return record.ProteinSource == source
}

func matchesMealType(record recipe.Record, mealType string) bool {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if mealType == "" || mealType == MealTypeAny {
		return true
	}
	keywords := mealTypeCategories[mealType]
	if len(keywords) == 0 {
		return true
	}
	for _, keyword := range keywords {
		if record.HasCategory(keyword) {
			return true
		}
	}
	return false
}
