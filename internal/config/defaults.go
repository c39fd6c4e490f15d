package config

const (
	defaultCuratedDataset = "~/.local/share/mealbot/curated_recipes.json"
	defaultRawDataset     = "~/.local/share/mealbot/full_format_recipes.json"
	defaultStateDir       = "~/.local/share/mealbot/state"
	defaultLogDir         = "~/.local/share/mealbot/logs"

	defaultNumRecipes    = 5
	defaultMinRating     = 3.5
	defaultMealType      = "entree"
	defaultProteinSource = "any"

	defaultSheetName         = "Selected Recipes"
	defaultSheetsBaseURL     = "https://sheets.googleapis.com/v4"
	defaultDocsBaseURL       = "https://docs.googleapis.com/v1"
	defaultRequestTimeout    = 30
	defaultCurationMinProt   = 25
	defaultCurationMaxProt   = 100
	defaultCurationMinRating = 4.0
	defaultCurationMaxIngr   = 15
	defaultCurationMinIngr   = 3

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CuratedDataset: defaultCuratedDataset,
			RawDataset:     defaultRawDataset,
			StateDir:       defaultStateDir,
			LogDir:         defaultLogDir,
		},
		Selection: Selection{
			NumRecipes:    defaultNumRecipes,
			MinRating:     defaultMinRating,
			MealType:      defaultMealType,
			ProteinSource: defaultProteinSource,
		},
		Sheets: Sheets{
			SheetName:   defaultSheetName,
			BaseURL:     defaultSheetsBaseURL,
			TimeoutSecs: defaultRequestTimeout,
		},
		Docs: Docs{
			Enabled:     true,
			BaseURL:     defaultDocsBaseURL,
			TimeoutSecs: defaultRequestTimeout,
		},
		Email: Email{
			TimeoutSecs: defaultRequestTimeout,
		},
		Curation: Curation{
			MinProtein:     defaultCurationMinProt,
			MaxProtein:     defaultCurationMaxProt,
			MinRating:      defaultCurationMinRating,
			MaxIngredients: defaultCurationMaxIngr,
			MinIngredients: defaultCurationMinIngr,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
