// Package dataset reads and writes the recipe dataset files.
//
// Load validates each record's mandatory fields (title, ingredients,
// directions, rating) and fails the whole load on the first violation so a
// run never proceeds on a partially usable dataset. Save writes atomically
// via a temp file and rename, which is how the curation pipeline overwrites
// the curated dataset without exposing partial output.
package dataset
