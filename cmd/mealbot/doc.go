// Command mealbot selects recipes from a curated dataset and publishes
// the selection to its configured collaborators. It also hosts the
// offline curation and pricing pipelines and a run-history viewer.
package main
