// Package planner orchestrates a single meal planning run: load the
// curated dataset, filter it, draw a random selection, publish to the
// configured collaborators, and record the run in the history ledger.
//
// A file lock serializes runs so overlapping cron invocations cannot
// interleave collaborator writes. The filter result is checked before any
// collaborator is contacted; an empty subset aborts the run with a
// no-match error and nothing is published.
package planner
