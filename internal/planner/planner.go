package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"mealbot/internal/config"
	"mealbot/internal/dataset"
	"mealbot/internal/filter"
	"mealbot/internal/history"
	"mealbot/internal/logging"
	"mealbot/internal/recipe"
	"mealbot/internal/selector"
	"mealbot/internal/services"
	"mealbot/internal/services/appsscript"
	"mealbot/internal/services/gdocs"
	"mealbot/internal/services/sheets"
)

// HistoryStore records finished runs. *history.Store satisfies it.
type HistoryStore interface {
	RecordRun(ctx context.Context, run history.Run) (int64, error)
}

// Planner drives the selection and publishing pipeline.
type Planner struct {
	cfg       *config.Config
	logger    *slog.Logger
	sheets    sheets.Service
	docs      gdocs.Service
	email     appsscript.Service
	ledger    HistoryStore
	now       func() time.Time
	newRunID  func() string
	retryWait time.Duration
}

// Option customizes the planner, mainly for tests.
type Option func(*Planner)

// WithSheetsService overrides the spreadsheet collaborator.
func WithSheetsService(svc sheets.Service) Option {
	return func(p *Planner) {
		if svc != nil {
			p.sheets = svc
		}
	}
}

// WithDocsService overrides the document collaborator.
func WithDocsService(svc gdocs.Service) Option {
	return func(p *Planner) {
		if svc != nil {
			p.docs = svc
		}
	}
}

// WithEmailService overrides the email trigger collaborator.
func WithEmailService(svc appsscript.Service) Option {
	return func(p *Planner) {
		if svc != nil {
			p.email = svc
		}
	}
}

// WithHistoryStore overrides the run ledger.
func WithHistoryStore(store HistoryStore) Option {
	return func(p *Planner) {
		if store != nil {
			p.ledger = store
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(p *Planner) {
		if now != nil {
			p.now = now
		}
	}
}

// WithRetryWait overrides the base wait between collaborator retries.
func WithRetryWait(wait time.Duration) Option {
	return func(p *Planner) {
		if wait > 0 {
			p.retryWait = wait
		}
	}
}

// New constructs a planner with collaborators derived from configuration.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Planner{
		cfg:       cfg,
		logger:    logging.WithComponent(logger, "planner"),
		sheets:    sheets.NewService(cfg),
		docs:      gdocs.NewService(cfg),
		email:     appsscript.NewService(cfg),
		now:       time.Now,
		newRunID:  uuid.NewString,
		retryWait: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Request carries per-run overrides on top of the configured selection.
type Request struct {
	Count         int
	MealType      string
	ProteinSource string
	MinRating     *float64
	DryRun        bool
}

// Result summarizes a finished run.
type Result struct {
	RunID          string
	Records        []recipe.Record
	Matched        int
	SheetWritten   bool
	DocURL         string
	EmailTriggered bool
}

// Run executes one planning run.
func (p *Planner) Run(ctx context.Context, req Request) (*Result, error) {
	criteria, count, err := p.resolveCriteria(req)
	if err != nil {
		return nil, err
	}

	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "planner", "prepare", "create state directories", err)
	}

	lock := flock.New(p.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, errors.New("another mealbot run is already in progress")
	}
	defer func() { _ = lock.Unlock() }()

	runID := p.newRunID()
	ctx = services.WithRunID(ctx, runID)
	logger := p.logger.With(slog.String("run_id", runID))
	startedAt := p.now()

	logger.Info("starting run",
		slog.Int("count", count),
		slog.String("meal_type", criteria.MealType),
		slog.String("protein_source", string(criteria.ProteinSource)),
		slog.Float64("min_rating", criteria.MinRating),
		slog.Bool("dry_run", req.DryRun),
	)

	records, err := dataset.Load(p.cfg.Paths.CuratedDataset)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded", slog.Int("records", len(records)))

	subset := filter.Apply(records, criteria)
	if len(subset) == 0 {
		return nil, services.Wrap(services.ErrNoMatch, "planner", "filter",
			"no recipes match the requested filters; try a lower --min-rating or a different --meal-type or --protein", nil)
	}

	selection := selector.Pick(subset, count)
	logger.Info("recipes selected",
		slog.Int("matched", len(subset)),
		slog.Int("selected", len(selection)),
	)

	result := &Result{
		RunID:   runID,
		Records: selection,
		Matched: len(subset),
	}

	if req.DryRun {
		logger.Info("dry run; skipping collaborators")
		return result, nil
	}

	if err := p.publish(ctx, logger, selection, result); err != nil {
		p.recordRun(ctx, logger, criteria, count, startedAt, result, err)
		return nil, err
	}

	p.recordRun(ctx, logger, criteria, count, startedAt, result, nil)
	logger.Info("run complete", slog.Int("published", len(selection)))
	return result, nil
}

func (p *Planner) resolveCriteria(req Request) (filter.Criteria, int, error) {
	sel := p.cfg.Selection

	count := sel.NumRecipes
	if req.Count > 0 {
		count = req.Count
	}
	if count <= 0 {
		return filter.Criteria{}, 0, services.Wrap(services.ErrConfiguration, "planner", "resolve",
			"recipe count must be positive", nil)
	}

	mealType := sel.MealType
	if req.MealType != "" {
		mealType = req.MealType
	}
	if !filter.KnownMealType(mealType) {
		return filter.Criteria{}, 0, services.Wrap(services.ErrConfiguration, "planner", "resolve",
			fmt.Sprintf("unknown meal type %q", mealType), nil)
	}

	proteinValue := sel.ProteinSource
	if req.ProteinSource != "" {
		proteinValue = req.ProteinSource
	}
	proteinSource, ok := recipe.ParseProteinSource(proteinValue)
	if !ok {
		return filter.Criteria{}, 0, services.Wrap(services.ErrConfiguration, "planner", "resolve",
			fmt.Sprintf("unknown protein source %q", proteinValue), nil)
	}

	minRating := sel.MinRating
	if req.MinRating != nil {
		minRating = *req.MinRating
	}
	if minRating < 0 || minRating > 5 {
		return filter.Criteria{}, 0, services.Wrap(services.ErrConfiguration, "planner", "resolve",
			fmt.Sprintf("min rating %.2f outside [0, 5]", minRating), nil)
	}

	return filter.Criteria{
		MealType:      mealType,
		ProteinSource: proteinSource,
		MinRating:     minRating,
	}, count, nil
}

func (p *Planner) publish(ctx context.Context, logger *slog.Logger, selection []recipe.Record, result *Result) error {
	if err := p.retry(ctx, func() error {
		return p.sheets.WriteSelection(ctx, selection)
	}); err != nil {
		return services.Wrap(services.ErrCollaborator, "sheets", "write selection", "", err)
	}
	result.SheetWritten = p.cfg.Sheets.SpreadsheetID != ""
	if result.SheetWritten {
		logger.Info("sheet updated", slog.Int("recipes", len(selection)))
	}

	docURL := ""
	if err := p.retry(ctx, func() error {
		var docErr error
		docURL, docErr = p.docs.CreateMealPlan(ctx, selection)
		return docErr
	}); err != nil {
		return services.Wrap(services.ErrCollaborator, "docs", "create meal plan", "", err)
	}
	result.DocURL = docURL
	if docURL != "" {
		logger.Info("document created", slog.String("url", docURL))
	}

	// The trigger announces the populated sheet; without a spreadsheet
	// there is nothing to announce.
	if p.cfg.Sheets.SpreadsheetID == "" {
		if p.cfg.Email.TriggerURL != "" {
			logger.Warn("email trigger skipped; no spreadsheet configured")
		}
		return nil
	}
	if err := p.retry(ctx, func() error {
		return p.email.TriggerEmail(ctx)
	}); err != nil {
		return services.Wrap(services.ErrCollaborator, "email", "trigger", "", err)
	}
	result.EmailTriggered = p.cfg.Email.TriggerURL != ""
	if result.EmailTriggered {
		logger.Info("email trigger fired")
	}
	return nil
}

func (p *Planner) retry(ctx context.Context, fn func() error) error {
	return services.Retry(ctx, 3, p.retryWait, fn)
}

func (p *Planner) recordRun(ctx context.Context, logger *slog.Logger, criteria filter.Criteria, count int, startedAt time.Time, result *Result, runErr error) {
	if p.ledger == nil {
		return
	}

	titles := make([]string, len(result.Records))
	for i, record := range result.Records {
		titles[i] = record.Title
	}

	run := history.Run{
		RunID:          result.RunID,
		StartedAt:      startedAt,
		FinishedAt:     p.now(),
		MealType:       criteria.MealType,
		ProteinSource:  string(criteria.ProteinSource),
		MinRating:      criteria.MinRating,
		Requested:      count,
		Matched:        result.Matched,
		Selected:       len(result.Records),
		Titles:         titles,
		SheetWritten:   result.SheetWritten,
		DocURL:         result.DocURL,
		EmailTriggered: result.EmailTriggered,
		Status:         history.StatusCompleted,
	}
	if runErr != nil {
		run.Status = history.StatusFailed
		run.ErrorMessage = runErr.Error()
	}

	if _, err := p.ledger.RecordRun(ctx, run); err != nil {
		logger.Warn("record run in ledger", slog.Any("error", err))
	}
}
