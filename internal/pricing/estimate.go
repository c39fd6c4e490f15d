package pricing

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"mealbot/internal/recipe"
)

type unit int

const (
	unitCount unit = iota
	unitPound
	unitCup
)

var (
	measurementPattern = regexp.MustCompile(`\b\d+[\/\d]*\s*(cups?|tbsp|tsp|oz|lbs?|pounds?|ounces?|grams?|kg|ml|liters?|pieces?|cloves?|cans?|bunch(?:es)?|heads?|packages?)?\b`)
	descriptorPattern  = regexp.MustCompile(`\b(fresh|dried|ground|chopped|diced|sliced|minced|whole|boneless|skinless|large|small|medium|extra|virgin|organic)\b`)
	quantityPattern    = regexp.MustCompile(`(\d+[\/\d]*)\s*(cups?|tbsp|tsp|oz|lbs?|pounds?|ounces?|grams?|kg|ml|liter|pieces?|cloves?|cans?|bunch(?:es)?|heads?|packages?)?`)
)

// normalizeIngredient strips measurements and descriptors so the line can
// be matched against the price table.
func normalizeIngredient(line string) string {
	text := strings.ToLower(line)
	text = measurementPattern.ReplaceAllString(text, "")
	text = descriptorPattern.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(text), " ")
}

// extractQuantity pulls a quantity and coarse unit from an ingredient
// line. Unknown shapes default to one counted item.
func extractQuantity(line string) (float64, unit) {
	match := quantityPattern.FindStringSubmatch(strings.ToLower(line))
	if match == nil || match[1] == "" {
		return 1.0, unitCount
	}
	qty := parseQuantity(match[1])

	switch {
	case strings.HasPrefix(match[2], "lb"), strings.HasPrefix(match[2], "pound"):
		return qty, unitPound
	case strings.HasPrefix(match[2], "oz"), strings.HasPrefix(match[2], "ounce"):
		return qty / 16, unitPound
	case strings.HasPrefix(match[2], "cup"):
		return qty, unitCup
	case strings.HasPrefix(match[2], "tbsp"):
		return qty / 16, unitCup
	case strings.HasPrefix(match[2], "tsp"):
		return qty / 48, unitCup
	default:
		return qty, unitCount
	}
}

// parseQuantity handles plain numbers and fractions like "3/4".
func parseQuantity(text string) float64 {
	if !strings.Contains(text, "/") {
		value, err := strconv.ParseFloat(text, 64)
		if err != nil || value <= 0 {
			return 1.0
		}
		return value
	}
	parts := strings.SplitN(text, "/", 2)
	numerator, errN := strconv.ParseFloat(parts[0], 64)
	denominator, errD := strconv.ParseFloat(parts[1], 64)
	if errN != nil || errD != nil || denominator == 0 {
		return 1.0
	}
	return numerator / denominator
}

// estimateIngredientCost prices a single ingredient line. The table match
// preferring the longest key relative to the normalized line keeps "chicken
// broth" from pricing as "chicken".
func estimateIngredientCost(line string) float64 {
	normalized := normalizeIngredient(line)
	quantity, qtyUnit := extractQuantity(line)

	var bestKey string
	var bestPrice float64
	bestScore := 0.0
	for key, price := range ingredientPrices {
		if !strings.Contains(normalized, key) {
			continue
		}
		score := float64(len(key)) / float64(len(normalized))
		if score > bestScore {
			bestScore = score
			bestKey = key
			bestPrice = price
		}
	}
	if bestKey == "" {
		return defaultIngredientCost
	}

	switch qtyUnit {
	case unitPound:
		return quantity * bestPrice
	case unitCup:
		// Assume a cup is roughly half a pound for most ingredients.
		return quantity * bestPrice * 0.5
	default:
		return quantity * bestPrice
	}
}

// servingsFor returns the assumed serving count for a recipe.
func servingsFor(record recipe.Record) float64 {
	switch record.MealType {
	case "soup":
		return 6
	case "appetizer":
		return 8
	default:
		return 4
	}
}

// EstimateRecipePrice returns the estimated price per serving, rounded to
// cents, or false when the record has no ingredients to price.
func EstimateRecipePrice(record recipe.Record) (float64, bool) {
	if len(record.Ingredients) == 0 {
		return 0, false
	}
	total := 0.0
	for _, line := range record.Ingredients {
		total += estimateIngredientCost(line)
	}
	perServing := total / servingsFor(record)
	return math.Round(perServing*100) / 100, true
}

// Annotate fills EstimatedPrice on each record that lacks one. It returns
// the number of records priced and the number skipped because they were
// already priced. Records are updated in place.
func Annotate(records []recipe.Record) (priced, skipped int) {
	for i := range records {
		if records[i].EstimatedPrice != nil {
			skipped++
			continue
		}
		if price, ok := EstimateRecipePrice(records[i]); ok {
			records[i].EstimatedPrice = recipe.Float64(price)
			priced++
		}
	}
	return priced, skipped
}
