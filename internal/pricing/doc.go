// Package pricing estimates a per-serving cost for curated recipes.
//
// The estimate is deliberately rough: ingredient lines are normalized,
// matched against a table of approximate US unit prices, and scaled by the
// quantity extracted from the line. Servings default to four, with soup and
// appetizer recipes assumed to stretch further. Good enough to compare
// recipes against each other, not to budget a grocery run.
package pricing
