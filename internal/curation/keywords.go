package curation

import "mealbot/internal/recipe"

// proteinKeywords maps each protein source to the keywords that attribute
// a recipe to it. Matching scans the combined title, categories, and
// ingredient text; sources are tried in the order of
// recipe.ProteinSources() and the first hit wins.
var proteinKeywords = map[recipe.ProteinSource][]string{
	recipe.ProteinChicken: {"chicken", "poultry"},
	recipe.ProteinBeef:    {"beef", "steak", "ground beef", "chuck", "sirloin", "ribeye", "brisket"},
	recipe.ProteinPork:    {"pork", "bacon", "ham", "sausage", "prosciutto"},
	recipe.ProteinSeafood: {"fish", "salmon", "tuna", "shrimp", "cod", "halibut", "tilapia", "mahi", "trout", "sea bass", "crab", "lobster", "scallop"},
	recipe.ProteinTurkey:  {"turkey"},
	recipe.ProteinLamb:    {"lamb"},
	recipe.ProteinEggs:    {"egg", "eggs", "frittata", "omelet", "omelette"},
}

// excludeKeywords disqualify a recipe outright: desserts, drinks, and
// carb-heavy breakfast items have no place in a high-protein rotation.
// Each keyword is compared against category names (exact, case-insensitive)
// and the title (substring, case-insensitive).
var excludeKeywords = []string{
	"dessert", "cake", "cookie", "pie", "chocolate", "candy", "brownie",
	"cocktail", "drink", "beverage", "smoothie", "juice",
	"bread", "muffin", "pancake", "waffle",
}
