package sheets

import (
	"fmt"
	"strings"

	"mealbot/internal/recipe"
)

var headerRow = []string{"Title", "Ingredients", "Rating", "Calories", "Categories", "Directions"}

// FormatIngredients renders one bulleted ingredient per line.
func FormatIngredients(ingredients []string) string {
	lines := make([]string, len(ingredients))
	for i, ingredient := range ingredients {
		lines[i] = "• " + ingredient
	}
	return strings.Join(lines, "\n")
}

// FormatDirections renders numbered steps, one per line.
func FormatDirections(directions []string) string {
	if len(directions) == 0 {
		return "See recipe source"
	}
	lines := make([]string, len(directions))
	for i, step := range directions {
		lines[i] = fmt.Sprintf("%d. %s", i+1, step)
	}
	return strings.Join(lines, "\n")
}

func formatRating(record recipe.Record) string {
	rating, ok := record.RatingValue()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("⭐ %.1f", rating)
}

func formatCalories(record recipe.Record) string {
	if record.Calories == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.0f cal", *record.Calories)
}

// BuildRows produces the header row plus one row per recipe.
func BuildRows(records []recipe.Record) [][]string {
	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, headerRow)
	for _, record := range records {
		rows = append(rows, []string{
			record.Title,
			FormatIngredients(record.Ingredients),
			formatRating(record),
			formatCalories(record),
			strings.Join(record.Categories, ", "),
			FormatDirections(record.Directions),
		})
	}
	return rows
}
