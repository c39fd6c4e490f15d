package pricing

// ingredientPrices maps normalized ingredient names to approximate US
// prices per unit (per pound for proteins and produce, per container for
// pantry staples, per item for counted goods).
var ingredientPrices = map[string]float64{
	// Proteins (per pound)
	"chicken":        4.50,
	"chicken breast": 5.00,
	"chicken thigh":  3.50,
	"beef":           8.00,
	"ground beef":    6.00,
	"steak":          12.00,
	"sirloin":        10.00,
	"ribeye":         15.00,
	"pork":           5.00,
	"pork shoulder":  4.00,
	"pork chop":      6.00,
	"bacon":          7.00,
	"ham":            5.00,
	"sausage":        5.50,
	"salmon":         12.00,
	"tuna":           8.00,
	"fish":           8.00,
	"cod":            7.00,
	"halibut":        15.00,
	"tilapia":        5.00,
	"shrimp":         10.00,
	"crab":           15.00,
	"lobster":        20.00,
	"scallop":        18.00,
	"turkey":         4.00,
	"lamb":           10.00,
	"egg":            0.25,
	"eggs":           0.25,

	// Vegetables (per pound or unit)
	"onion":       1.00,
	"garlic":      0.50,
	"carrot":      1.50,
	"celery":      1.50,
	"potato":      1.00,
	"tomato":      2.00,
	"bell pepper": 2.00,
	"mushroom":    4.00,
	"spinach":     3.00,
	"lettuce":     2.00,
	"broccoli":    2.50,
	"cauliflower": 2.50,
	"zucchini":    2.00,
	"eggplant":    2.00,
	"corn":        1.50,
	"peas":        2.00,
	"green bean":  3.00,
	"asparagus":   4.00,
	"avocado":     1.50,

	// Grains & starches
	"rice":     2.00,
	"pasta":    2.00,
	"noodle":   2.00,
	"bread":    3.00,
	"flour":    1.50,
	"quinoa":   5.00,
	"barley":   2.00,
	"couscous": 3.00,

	// Dairy
	"milk":       3.50,
	"cheese":     5.00,
	"butter":     4.00,
	"cream":      4.00,
	"yogurt":     4.00,
	"sour cream": 3.00,

	// Oils & fats
	"olive oil":     8.00,
	"vegetable oil": 3.00,
	"canola oil":    3.00,
	"coconut oil":   6.00,

	// Spices & herbs
	"salt":      0.50,
	"pepper":    2.00,
	"paprika":   3.00,
	"cumin":     4.00,
	"coriander": 4.00,
	"turmeric":  4.00,
	"cinnamon":  5.00,
	"nutmeg":    6.00,
	"oregano":   4.00,
	"thyme":     4.00,
	"rosemary":  4.00,
	"basil":     4.00,
	"parsley":   3.00,
	"cilantro":  3.00,
	"ginger":    4.00,
	"bay leaf":  3.00,

	// Other common ingredients
	"chicken broth":   2.50,
	"beef broth":      2.50,
	"vegetable broth": 2.50,
	"stock":           2.50,
	"wine":            8.00,
	"vinegar":         3.00,
	"soy sauce":       3.00,
	"worcestershire":  4.00,
	"mustard":         3.00,
	"mayonnaise":      3.00,
	"ketchup":         2.00,
	"sugar":           2.00,
	"honey":           6.00,
	"lemon":           0.50,
	"lime":            0.50,
	"orange":          0.75,
}

// defaultIngredientCost covers ingredients the table does not know.
const defaultIngredientCost = 1.50
