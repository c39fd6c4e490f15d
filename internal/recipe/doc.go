// Package recipe defines the recipe record model shared by the dataset
// store, filter engine, curation pipeline, and publishers.
//
// Records are value types: once loaded they are read-only, and downstream
// components pass around slices referencing the same backing array. Optional
// nutrition fields use pointers so "absent" and "zero" stay distinguishable
// across JSON round-trips.
package recipe
