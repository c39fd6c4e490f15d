package planner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/flock"

	"mealbot/internal/config"
	"mealbot/internal/history"
	"mealbot/internal/planner"
	"mealbot/internal/recipe"
	"mealbot/internal/services"
	"mealbot/internal/testsupport"
)

type fakeSheets struct {
	calls int
	err   error
	last  []recipe.Record
}

func (f *fakeSheets) WriteSelection(_ context.Context, records []recipe.Record) error {
	f.calls++
	f.last = records
	return f.err
}

type fakeDocs struct {
	calls int
	err   error
	url   string
}

func (f *fakeDocs) CreateMealPlan(_ context.Context, _ []recipe.Record) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeEmail struct {
	calls int
	err   error
}

func (f *fakeEmail) TriggerEmail(_ context.Context) error {
	f.calls++
	return f.err
}

type fakeLedger struct {
	runs []history.Run
}

func (f *fakeLedger) RecordRun(_ context.Context, run history.Run) (int64, error) {
	f.runs = append(f.runs, run)
	return int64(len(f.runs)), nil
}

func planConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testsupport.NewConfig(t,
		testsupport.WithCuratedDataset(testsupport.CuratedRecords()),
		testsupport.WithSelection(3, "entree", "any", 3.5),
		testsupport.WithSpreadsheet("sheet-id", "http://example.invalid"),
	)
	cfg.Email.TriggerURL = "http://example.invalid/trigger"
	return cfg
}

func newPlanner(cfg *config.Config, sheetsSvc *fakeSheets, docsSvc *fakeDocs, emailSvc *fakeEmail, ledger *fakeLedger) *planner.Planner {
	return planner.New(cfg, nil,
		planner.WithSheetsService(sheetsSvc),
		planner.WithDocsService(docsSvc),
		planner.WithEmailService(emailSvc),
		planner.WithHistoryStore(ledger),
		planner.WithRetryWait(time.Millisecond),
	)
}

func TestRunPublishesAndRecordsHistory(t *testing.T) {
	cfg := planConfig(t)
	sheetsSvc := &fakeSheets{}
	docsSvc := &fakeDocs{url: "https://docs.google.com/document/d/doc-42/edit"}
	emailSvc := &fakeEmail{}
	ledger := &fakeLedger{}

	p := newPlanner(cfg, sheetsSvc, docsSvc, emailSvc, ledger)
	result, err := p.Run(context.Background(), planner.Request{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Records) != 3 {
		t.Fatalf("expected 3 selected recipes, got %d", len(result.Records))
	}
	if sheetsSvc.calls != 1 || docsSvc.calls != 1 || emailSvc.calls != 1 {
		t.Fatalf("expected each collaborator called once, got sheets=%d docs=%d email=%d",
			sheetsSvc.calls, docsSvc.calls, emailSvc.calls)
	}
	if !result.SheetWritten || !result.EmailTriggered {
		t.Fatalf("expected collaborator flags set, got sheet=%v email=%v", result.SheetWritten, result.EmailTriggered)
	}
	if result.DocURL != docsSvc.url {
		t.Fatalf("expected doc url surfaced, got %q", result.DocURL)
	}

	if len(ledger.runs) != 1 {
		t.Fatalf("expected one ledger entry, got %d", len(ledger.runs))
	}
	run := ledger.runs[0]
	if run.Status != history.StatusCompleted {
		t.Fatalf("expected completed status, got %q", run.Status)
	}
	if run.Selected != 3 || len(run.Titles) != 3 {
		t.Fatalf("unexpected ledger selection: selected=%d titles=%v", run.Selected, run.Titles)
	}
	if run.RunID == "" || run.RunID != result.RunID {
		t.Fatalf("expected matching run ids, got %q vs %q", run.RunID, result.RunID)
	}
}

func TestRunDryRunSkipsCollaborators(t *testing.T) {
	cfg := planConfig(t)
	sheetsSvc := &fakeSheets{}
	docsSvc := &fakeDocs{}
	emailSvc := &fakeEmail{}
	ledger := &fakeLedger{}

	p := newPlanner(cfg, sheetsSvc, docsSvc, emailSvc, ledger)
	result, err := p.Run(context.Background(), planner.Request{DryRun: true})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if sheetsSvc.calls != 0 || docsSvc.calls != 0 || emailSvc.calls != 0 {
		t.Fatal("expected no collaborator calls on dry run")
	}
	if len(ledger.runs) != 0 {
		t.Fatal("expected no ledger entry on dry run")
	}
	if len(result.Records) == 0 {
		t.Fatal("expected a selection on dry run")
	}
}

func TestRunReportsNoMatchBeforeCollaborators(t *testing.T) {
	cfg := planConfig(t)
	sheetsSvc := &fakeSheets{}
	docsSvc := &fakeDocs{}
	emailSvc := &fakeEmail{}

	p := newPlanner(cfg, sheetsSvc, docsSvc, emailSvc, &fakeLedger{})
	_, err := p.Run(context.Background(), planner.Request{MealType: "dessert"})
	if err == nil {
		t.Fatal("expected no-match error for dessert on a curated dataset")
	}
	if !errors.Is(err, services.ErrNoMatch) {
		t.Fatalf("expected ErrNoMatch, got %v", err)
	}
	if sheetsSvc.calls != 0 || docsSvc.calls != 0 || emailSvc.calls != 0 {
		t.Fatal("expected no collaborator contact on no-match")
	}
}

func TestRunCapsSelectionAtSubsetSize(t *testing.T) {
	cfg := planConfig(t)
	p := newPlanner(cfg, &fakeSheets{}, &fakeDocs{}, &fakeEmail{}, &fakeLedger{})

	// Only two records are tagged chicken in the fixture dataset.
	result, err := p.Run(context.Background(), planner.Request{
		Count:         5,
		MealType:      "any",
		ProteinSource: "chicken",
		DryRun:        true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Records) != 2 {
		t.Fatalf("expected all 2 matching recipes, got %d", len(result.Records))
	}
	for _, record := range result.Records {
		if record.ProteinSource != recipe.ProteinChicken {
			t.Fatalf("expected chicken recipes only, got %q", record.Title)
		}
	}
}

func TestRunCollaboratorFailureAbortsRemainder(t *testing.T) {
	cfg := planConfig(t)
	sheetsSvc := &fakeSheets{err: errors.New("http 429: quota exceeded")}
	docsSvc := &fakeDocs{}
	emailSvc := &fakeEmail{}
	ledger := &fakeLedger{}

	p := newPlanner(cfg, sheetsSvc, docsSvc, emailSvc, ledger)
	_, err := p.Run(context.Background(), planner.Request{})
	if err == nil {
		t.Fatal("expected error when sheet write fails")
	}
	if !errors.Is(err, services.ErrCollaborator) {
		t.Fatalf("expected ErrCollaborator, got %v", err)
	}

	if sheetsSvc.calls != 3 {
		t.Fatalf("expected 3 sheet attempts, got %d", sheetsSvc.calls)
	}
	if docsSvc.calls != 0 || emailSvc.calls != 0 {
		t.Fatal("expected doc and email skipped after sheet failure")
	}

	if len(ledger.runs) != 1 {
		t.Fatalf("expected failed run recorded, got %d entries", len(ledger.runs))
	}
	run := ledger.runs[0]
	if run.Status != history.StatusFailed || run.ErrorMessage == "" {
		t.Fatalf("expected failed ledger entry with message, got %+v", run)
	}
	if run.SheetWritten {
		t.Fatal("expected sheet_written false on failure")
	}
}

func TestRunSkipsTriggerWithoutSpreadsheet(t *testing.T) {
	cfg := testsupport.NewConfig(t,
		testsupport.WithCuratedDataset(testsupport.CuratedRecords()),
		testsupport.WithSelection(3, "entree", "any", 3.5),
	)
	cfg.Email.TriggerURL = "http://example.invalid/trigger"

	emailSvc := &fakeEmail{}
	ledger := &fakeLedger{}
	p := newPlanner(cfg, &fakeSheets{}, &fakeDocs{}, emailSvc, ledger)

	result, err := p.Run(context.Background(), planner.Request{})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if emailSvc.calls != 0 {
		t.Fatalf("expected no trigger call without a spreadsheet, got %d", emailSvc.calls)
	}
	if result.EmailTriggered {
		t.Fatal("expected email flag unset without a spreadsheet")
	}
	if len(ledger.runs) != 1 || ledger.runs[0].EmailTriggered {
		t.Fatalf("expected ledger entry without email flag, got %+v", ledger.runs)
	}
}

func TestRunRejectsUnknownProteinSource(t *testing.T) {
	cfg := planConfig(t)
	p := newPlanner(cfg, &fakeSheets{}, &fakeDocs{}, &fakeEmail{}, &fakeLedger{})

	_, err := p.Run(context.Background(), planner.Request{ProteinSource: "venison"})
	if err == nil {
		t.Fatal("expected error for unknown protein source")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestRunRefusesConcurrentRuns(t *testing.T) {
	cfg := planConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}

	held := flock.New(cfg.LockPath())
	locked, err := held.TryLock()
	if err != nil || !locked {
		t.Fatalf("pre-acquire lock: locked=%v err=%v", locked, err)
	}
	defer func() { _ = held.Unlock() }()

	p := newPlanner(cfg, &fakeSheets{}, &fakeDocs{}, &fakeEmail{}, &fakeLedger{})
	if _, err := p.Run(context.Background(), planner.Request{DryRun: true}); err == nil {
		t.Fatal("expected error while another run holds the lock")
	}
}
