// Package sheets publishes the selected recipes to a Google Sheet.
//
// The client talks to the Sheets values API directly: it clears the target
// worksheet and rewrites it from row A1 with one row per recipe. When no
// spreadsheet is configured a noop service is returned so the pipeline can
// run without a spreadsheet collaborator.
package sheets
