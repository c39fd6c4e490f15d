// Package curation re-derives the curated dataset from the raw recipe
// corpus.
//
// A raw record survives curation when it has complete data, lands inside
// the protein and rating thresholds, stays under the ingredient cap, avoids
// the dessert/drink/bread exclusion keywords, and can be attributed to a
// protein source. Survivors are tagged with protein source, meal type, and
// difficulty. The whole pass is deterministic: the same input and
// thresholds always produce the same curated set.
package curation
