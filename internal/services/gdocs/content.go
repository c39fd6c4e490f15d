package gdocs

import (
	"fmt"
	"strings"
	"time"

	"mealbot/internal/recipe"
)

const (
	recipeRule  = "══════════════════════════════════════════════════"
	sectionRule = "──────────────────────────────"
)

// DocumentTitle returns the dated title for a meal plan document.
func DocumentTitle(now time.Time) string {
	return "Meal Plan - " + now.Format("January 2, 2006")
}

// buildHeading renders the document heading block.
func buildHeading(now time.Time) string {
	return fmt.Sprintf("Meal Plan\n%s\n\n", now.Format("January 2, 2006"))
}

// buildRecipeBlock renders one recipe as a shopping list followed by
// directions.
func buildRecipeBlock(position int, record recipe.Record) string {
	var b strings.Builder

	b.WriteString(recipeRule + "\n")
	fmt.Fprintf(&b, "RECIPE %d: %s\n", position, strings.ToUpper(strings.TrimSpace(record.Title)))
	if nutrition := nutritionLine(record); nutrition != "" {
		b.WriteString(nutrition + "\n")
	}
	b.WriteString(recipeRule + "\n\n")

	b.WriteString("SHOPPING LIST\n")
	b.WriteString(sectionRule + "\n")
	for _, ingredient := range record.Ingredients {
		b.WriteString("☐ " + ingredient + "\n")
	}
	b.WriteString("\n")

	b.WriteString("DIRECTIONS\n")
	b.WriteString(sectionRule + "\n")
	if len(record.Directions) == 0 {
		b.WriteString("See recipe source.\n")
	} else {
		for i, step := range record.Directions {
			fmt.Fprintf(&b, "%d. %s\n\n", i+1, step)
		}
	}
	b.WriteString("\n\n")

	return b.String()
}

func nutritionLine(record recipe.Record) string {
	var parts []string
	if record.Protein != nil {
		parts = append(parts, fmt.Sprintf("%.0fg protein", *record.Protein))
	}
	if record.Calories != nil {
		parts = append(parts, fmt.Sprintf("%.0f cal", *record.Calories))
	}
	if rating, ok := record.RatingValue(); ok {
		parts = append(parts, fmt.Sprintf("%.1f stars", rating))
	}
	return strings.Join(parts, " | ")
}
