package recipe

import "strings"

// ProteinSource identifies the primary protein category inferred during
// curation. Only curated records carry one.
type ProteinSource string

const (
	ProteinChicken ProteinSource = "chicken"
	ProteinBeef    ProteinSource = "beef"
	ProteinPork    ProteinSource = "pork"
	ProteinSeafood ProteinSource = "seafood"
	ProteinTurkey  ProteinSource = "turkey"
	ProteinLamb    ProteinSource = "lamb"
	ProteinEggs    ProteinSource = "eggs"
)

// ProteinSources lists the recognized sources in curation priority order.
// The first keyword group that matches a recipe wins.
func ProteinSources() []ProteinSource {
	return []ProteinSource{
		ProteinChicken,
		ProteinBeef,
		ProteinPork,
		ProteinSeafood,
		ProteinTurkey,
		ProteinLamb,
		ProteinEggs,
	}
}

// ParseProteinSource normalizes user input into a known source. The empty
// string and "any" both mean no protein filter.
func ParseProteinSource(value string) (ProteinSource, bool) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if normalized == "" || normalized == "any" {
		return "", true
	}
	for _, source := range ProteinSources() {
		if string(source) == normalized {
			return source, true
		}
	}
	return "", false
}

// Difficulty is a coarse effort estimate attached during curation.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyMedium   Difficulty = "medium"
	DifficultyInvolved Difficulty = "involved"
)

// Record is a single recipe as stored in the raw or curated dataset.
// Title, Ingredients, Directions, and Rating are mandatory for a loadable
// record; the remaining fields may be absent depending on provenance.
type Record struct {
	Title       string   `json:"title"`
	Ingredients []string `json:"ingredients"`
	Directions  []string `json:"directions"`
	Rating      *float64 `json:"rating"`
	Calories    *float64 `json:"calories,omitempty"`
	Protein     *float64 `json:"protein,omitempty"`
	Categories  []string `json:"categories,omitempty"`

	// Curation metadata, present only on curated records.
	ProteinSource  ProteinSource `json:"protein_source,omitempty"`
	MealType       string        `json:"meal_type,omitempty"`
	Difficulty     Difficulty    `json:"difficulty,omitempty"`
	NumIngredients int           `json:"num_ingredients,omitempty"`
	NumSteps       int           `json:"num_steps,omitempty"`
	EstimatedPrice *float64      `json:"estimated_price,omitempty"`
}

// RatingValue returns the rating and whether one is present.
func (r Record) RatingValue() (float64, bool) {
	if r.Rating == nil {
		return 0, false
	}
	return *r.Rating, true
}

// HasCategory reports whether the record carries the named category,
// compared case-insensitively.
func (r Record) HasCategory(name string) bool {
	for _, category := range r.Categories {
		if strings.EqualFold(category, name) {
			return true
		}
	}
	return false
}

// Float64 returns a pointer to v, for building records with optional fields.
func Float64(v float64) *float64 {
	return &v
}
