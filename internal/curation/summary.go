package curation

import "mealbot/internal/recipe"

// Summary aggregates curated-set statistics for operator output.
type Summary struct {
	Total           int
	ByProteinSource map[recipe.ProteinSource]int
	ByMealType      map[string]int
	ByDifficulty    map[recipe.Difficulty]int
	AvgProtein      float64
	AvgRating       float64
}

// Summarize computes distribution counts and averages over curated records.
func Summarize(records []recipe.Record) Summary {
	summary := Summary{
		Total:           len(records),
		ByProteinSource: make(map[recipe.ProteinSource]int),
		ByMealType:      make(map[string]int),
		ByDifficulty:    make(map[recipe.Difficulty]int),
	}

	var proteinSum, proteinCount float64
	var ratingSum, ratingCount float64
	for _, record := range records {
		if record.ProteinSource != "" {
			summary.ByProteinSource[record.ProteinSource]++
		}
		if record.MealType != "" {
			summary.ByMealType[record.MealType]++
		}
		if record.Difficulty != "" {
			summary.ByDifficulty[record.Difficulty]++
		}
		if record.Protein != nil {
			proteinSum += *record.Protein
			proteinCount++
		}
		if rating, ok := record.RatingValue(); ok {
			ratingSum += rating
			ratingCount++
		}
	}
	if proteinCount > 0 {
		summary.AvgProtein = proteinSum / proteinCount
	}
	if ratingCount > 0 {
		summary.AvgRating = ratingSum / ratingCount
	}
	return summary
}
