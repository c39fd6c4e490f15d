// Package filter narrows a recipe dataset by meal type, protein source,
// and minimum rating.
//
// Meal types map to fixed category keyword sets carried over from the
// original bot. The tables are intentionally preserved verbatim, overlaps
// and all: a "Chicken Caesar Salad" matches both entree (via Chicken) and
// side (via Salad), and that ambiguity is part of the dataset's character
// rather than a bug to engineer away.
package filter
