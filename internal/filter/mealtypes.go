package filter

import "strings"

// MealTypeAny disables meal-type filtering.
const MealTypeAny = "any"

// mealTypeCategories maps each meal type to the recipe categories that
// qualify a record for it. Matching is case-insensitive against the
// record's category tags.
var mealTypeCategories = map[string][]string{
	"entree": {
		"Main Course", "Dinner", "Lunch", "Entrée",
		"Chicken", "Beef", "Pork", "Fish", "Seafood", "Pasta", "Rice",
		"Stew", "Roast", "Grill/Barbecue", "Meat", "Poultry",
	},
	"dessert": {
		"Dessert", "Cake", "Cookie", "Pie", "Chocolate", "Ice Cream",
		"Pudding", "Brownie", "Tart", "Candy", "Cheesecake", "Fruit Dessert",
	},
	"appetizer": {
		"Appetizer", "Starter", "Hors d'Oeuvre", "Dip", "Snack",
		"Finger Food", "Canapé",
	},
	"breakfast": {
		"Breakfast", "Brunch", "Pancake", "Waffle", "Egg",
		"Morning", "Cereal",
	},
	"side": {
		"Side", "Salad", "Vegetable", "Potato", "Rice",
	},
	"soup": {
		"Soup", "Stew", "Chili", "Broth",
	},
}

// MealTypes returns the recognized meal types, excluding "any".
func MealTypes() []string {
	return []string{"entree", "dessert", "appetizer", "breakfast", "side", "soup"}
}

// CategoriesForMealType exposes the keyword set for a meal type, or nil for
// an unknown one.
func CategoriesForMealType(mealType string) []string {
	return mealTypeCategories[mealType]
}

// KnownMealType reports whether the value names a recognized meal type.
// Empty and "any" are accepted and disable meal-type filtering.
func KnownMealType(mealType string) bool {
	mealType = strings.ToLower(strings.TrimSpace(mealType))
	if mealType == "" || mealType == MealTypeAny {
		return true
	}
	_, ok := mealTypeCategories[mealType]
	return ok
}
