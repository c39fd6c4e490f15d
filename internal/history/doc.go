// Package history persists a ledger of planning runs in SQLite.
//
// Each run records the filters used, how many recipes matched and were
// selected, which titles were published, and how far the collaborator
// chain got. The ledger backs the history command and makes repeated runs
// auditable after the fact.
package history
