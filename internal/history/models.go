package history

import "time"

// Run statuses recorded in the ledger.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Run is one planning run as recorded in the ledger.
type Run struct {
	ID             int64
	RunID          string
	StartedAt      time.Time
	FinishedAt     time.Time
	MealType       string
	ProteinSource  string
	MinRating      float64
	Requested      int
	Matched        int
	Selected       int
	Titles         []string
	SheetWritten   bool
	DocURL         string
	EmailTriggered bool
	Status         string
	ErrorMessage   string
}
