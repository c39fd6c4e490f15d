package curation

import (
	"strings"

	"mealbot/internal/recipe"
)

// Thresholds holds the curation eligibility parameters.
type Thresholds struct {
	MinProtein     float64
	MaxProtein     float64
	MinRating      float64
	MaxIngredients int
	MinIngredients int
}

// Curate filters raw records down to the curated set and tags each
// survivor with protein source, meal type, difficulty, and size metadata.
// Input order is preserved; input records are not mutated.
func Curate(raw []recipe.Record, thresholds Thresholds) []recipe.Record {
	curated := make([]recipe.Record, 0, len(raw))
	for _, record := range raw {
		if !eligible(record, thresholds) {
			continue
		}
		source, ok := DetectProteinSource(record)
		if !ok {
			// No attributable protein source means the record cannot be
			// filtered or browsed by source later, so it is dropped even
			// when otherwise eligible.
			continue
		}
		tagged := record
		tagged.ProteinSource = source
		tagged.MealType = mealTypeOf(record)
		tagged.Difficulty = difficultyOf(record)
		tagged.NumIngredients = len(record.Ingredients)
		tagged.NumSteps = len(record.Directions)
		curated = append(curated, tagged)
	}
	return curated
}

func eligible(record recipe.Record, thresholds Thresholds) bool {
	if record.Title == "" {
		return false
	}
	if len(record.Ingredients) < thresholds.MinIngredients || len(record.Ingredients) > thresholds.MaxIngredients {
		return false
	}
	if len(record.Directions) == 0 {
		return false
	}
	if record.Protein == nil || *record.Protein < thresholds.MinProtein || *record.Protein > thresholds.MaxProtein {
		return false
	}
	rating, ok := record.RatingValue()
	if !ok || rating < thresholds.MinRating {
		return false
	}
	return !excluded(record)
}

func excluded(record recipe.Record) bool {
	title := strings.ToLower(record.Title)
	for _, keyword := range excludeKeywords {
		if record.HasCategory(keyword) {
			return true
		}
		if strings.Contains(title, keyword) {
			return true
		}
	}
	return false
}

// DetectProteinSource scans the record's title, categories, and ingredients
// for the protein keyword groups in priority order. The second return is
// false when no group matches.
func DetectProteinSource(record recipe.Record) (recipe.ProteinSource, bool) {
	var builder strings.Builder
	builder.WriteString(strings.ToLower(record.Title))
	for _, category := range record.Categories {
		builder.WriteByte(' ')
		builder.WriteString(strings.ToLower(category))
	}
	for _, ingredient := range record.Ingredients {
		builder.WriteByte(' ')
		builder.WriteString(strings.ToLower(ingredient))
	}
	text := builder.String()

	for _, source := range recipe.ProteinSources() {
		for _, keyword := range proteinKeywords[source] {
			if strings.Contains(text, keyword) {
				return source, true
			}
		}
	}
	return "", false
}

// mealTypeOf buckets a record by its categories and title, defaulting to
// entree.
func mealTypeOf(record recipe.Record) string {
	title := strings.ToLower(record.Title)

	if anyCategoryOrTitle(record, title, "breakfast", "brunch", "egg") {
		return "breakfast"
	}
	if anyCategory(record, "soup", "stew", "chili") {
		return "soup"
	}
	if anyCategory(record, "salad") {
		return "salad"
	}
	if anyCategory(record, "appetizer", "starter") {
		return "appetizer"
	}
	return "entree"
}

func anyCategory(record recipe.Record, keywords ...string) bool {
	for _, keyword := range keywords {
		if record.HasCategory(keyword) {
			return true
		}
	}
	return false
}

func anyCategoryOrTitle(record recipe.Record, lowerTitle string, keywords ...string) bool {
	for _, keyword := range keywords {
		if record.HasCategory(keyword) || strings.Contains(lowerTitle, keyword) {
			return true
		}
	}
	return false
}

// difficultyOf estimates effort from ingredient and step counts.
func difficultyOf(record recipe.Record) recipe.Difficulty {
	ingredients := len(record.Ingredients)
	steps := len(record.Directions)
	switch {
	case ingredients <= 6 && steps <= 4:
		return recipe.DifficultyEasy
	case ingredients <= 10 && steps <= 7:
		return recipe.DifficultyMedium
	default:
		return recipe.DifficultyInvolved
	}
}
