package testsupport

import "mealbot/internal/recipe"

// CuratedRecords returns a small curated dataset with a spread of meal
// types, protein sources, and ratings.
func CuratedRecords() []recipe.Record {
	return []recipe.Record{
		{
			Title:         "Weeknight Chicken Skillet",
			Ingredients:   []string{"1 lb chicken thighs", "2 cloves garlic", "1 tbsp olive oil"},
			Directions:    []string{"Sear the chicken.", "Add garlic and finish."},
			Rating:        recipe.Float64(4.5),
			Protein:       recipe.Float64(38),
			Calories:      recipe.Float64(520),
			Categories:    []string{"Chicken", "Dinner"},
			ProteinSource: recipe.ProteinChicken,
			MealType:      "entree",
			Difficulty:    recipe.DifficultyEasy,
		},
		{
			Title:         "Steak and Potatoes",
			Ingredients:   []string{"1 lb sirloin", "2 potatoes", "butter", "rosemary"},
			Directions:    []string{"Roast the potatoes.", "Sear the steak.", "Rest and serve."},
			Rating:        recipe.Float64(4.8),
			Protein:       recipe.Float64(45),
			Calories:      recipe.Float64(680),
			Categories:    []string{"Beef", "Dinner"},
			ProteinSource: recipe.ProteinBeef,
			MealType:      "entree",
			Difficulty:    recipe.DifficultyMedium,
		},
		{
			Title:         "Salmon Rice Bowl",
			Ingredients:   []string{"salmon fillet", "1 cup rice", "soy sauce"},
			Directions:    []string{"Cook the rice.", "Broil the salmon.", "Assemble."},
			Rating:        recipe.Float64(4.2),
			Protein:       recipe.Float64(32),
			Calories:      recipe.Float64(540),
			Categories:    []string{"Fish", "Dinner"},
			ProteinSource: recipe.ProteinSeafood,
			MealType:      "entree",
			Difficulty:    recipe.DifficultyEasy,
		},
		{
			Title:         "Chicken Tortilla Soup",
			Ingredients:   []string{"chicken breast", "chicken broth", "tortillas", "onion"},
			Directions:    []string{"Simmer the broth.", "Shred the chicken.", "Serve with tortillas."},
			Rating:        recipe.Float64(4.0),
			Protein:       recipe.Float64(28),
			Calories:      recipe.Float64(380),
			Categories:    []string{"Soup", "Chicken"},
			ProteinSource: recipe.ProteinChicken,
			MealType:      "soup",
			Difficulty:    recipe.DifficultyEasy,
		},
		{
			Title:         "Turkey Breakfast Hash",
			Ingredients:   []string{"1 lb ground turkey", "2 potatoes", "2 eggs", "paprika"},
			Directions:    []string{"Brown the turkey.", "Crisp the potatoes.", "Top with fried eggs."},
			Rating:        recipe.Float64(3.9),
			Protein:       recipe.Float64(34),
			Calories:      recipe.Float64(450),
			Categories:    []string{"Breakfast", "Turkey"},
			ProteinSource: recipe.ProteinTurkey,
			MealType:      "breakfast",
			Difficulty:    recipe.DifficultyEasy,
		},
	}
}
