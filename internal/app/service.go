// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	repository "github.com/okian/staffer/internal/adapters/repository"
	"github.com/okian/staffer/internal/domain/model"
	"github.com/okian/staffer/internal/domain/recommend"
	"github.com/okian/staffer/internal/domain/staffing"
	"github.com/okian/staffer/internal/domain/types"
	"github.com/okian/staffer/pkg/logger"
	"github.com/okian/staffer/pkg/metrics"
)

// Staffing request outcomes, used as metric labels and stats keys.
const (
	OutcomeShortlisted = "shortlisted"
	OutcomeEmpty       = "empty"
	OutcomeNotFound    = "not_found"
	OutcomeError       = "error"
)

// Service staffs catalog projects with catalog employees.
type Service struct {
	mu sync.RWMutex

	// Core components
	catalog     repository.Store
	recommender *recommend.Recommender

	// Configuration
	catalogPath      string
	batchConcurrency int
	recommendOpts    []recommend.Option
	now              func() time.Time

	// State
	started  bool
	outcomes map[string]int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore serves projects and employees from store instead of loading a catalog.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.catalog = store
		}
	}
}

// WithCatalogPath loads the catalog from a YAML file on Start.
func WithCatalogPath(path string) Option {
	return func(s *Service) {
		s.catalogPath = path
	}
}

// WithBatchConcurrency bounds the projects staffed in parallel by StaffAll.
func WithBatchConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.batchConcurrency = n
		}
	}
}

// WithConfidenceThresholds sets the minimum scores for high and medium confidence.
func WithConfidenceThresholds(high, medium int) Option {
	return func(s *Service) {
		s.recommendOpts = append(s.recommendOpts, recommend.WithConfidenceThresholds(high, medium))
	}
}

// WithKnowledgeTransferURL sets the fallback knowledge transfer link.
func WithKnowledgeTransferURL(url string) Option {
	return func(s *Service) {
		s.recommendOpts = append(s.recommendOpts, recommend.WithKnowledgeTransferURL(url))
	}
}

// WithClock overrides the time source used to stamp shortlists.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		batchConcurrency: runtime.NumCPU(),
		now:              time.Now,
		outcomes:         make(map[string]int),
		logger:           nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the catalog and prepares the recommender.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting staffing service...")

	if s.catalog == nil {
		store, err := s.openCatalog()
		if err != nil {
			metrics.RecordErrorByComponent("service", "catalog")
			return fmt.Errorf("open catalog: %w", err)
		}
		s.catalog = store
	}
	s.recommender = recommend.New(s.recommendOpts...)

	stats := s.catalog.Stats(ctx)
	s.started = true
	s.logger.Info(ctx, "staffing service started",
		logger.Int("projects", stats.Projects),
		logger.Int("employees", stats.Employees),
		logger.Int("batchConcurrency", s.batchConcurrency),
		logger.String("catalog", s.catalogSource()),
	)

	return nil
}

func (s *Service) openCatalog() (repository.Store, error) {
	if s.catalogPath == "" {
		return repository.NewDefaultStore()
	}
	c, err := repository.LoadCatalog(s.catalogPath)
	if err != nil {
		return nil, err
	}
	return repository.NewMemoryStore(c)
}

func (s *Service) catalogSource() string {
	if s.catalogPath == "" {
		return "embedded"
	}
	return s.catalogPath
}

// Stop shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "staffing service stopped")
}

// components returns the catalog and recommender of a started service.
func (s *Service) components() (repository.Store, *recommend.Recommender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return nil, nil, ErrNotStarted
	}
	return s.catalog, s.recommender, nil
}

// Staff builds the shortlist and recommendation for one project. An unknown
// project returns an error wrapping repository.ErrNotFound. A project nobody
// qualifies for returns an empty shortlist and no error.
func (s *Service) Staff(ctx context.Context, projectID string, demo bool) (types.Shortlist, error) {
	store, rec, err := s.components()
	if err != nil {
		return types.Shortlist{}, err
	}

	p, err := store.Project(ctx, projectID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.record(OutcomeNotFound)
		} else {
			s.record(OutcomeError)
		}
		return types.Shortlist{}, err
	}
	employees, err := store.Employees(ctx)
	if err != nil {
		s.record(OutcomeError)
		return types.Shortlist{}, err
	}

	return s.staff(ctx, rec, p, employees, demo)
}

func (s *Service) staff(ctx context.Context, rec *recommend.Recommender, p model.Project, employees []model.Employee, demo bool) (types.Shortlist, error) {
	start := time.Now()
	report := staffing.Evaluate(p, employees)
	metrics.RecordEngineLatency(float64(time.Since(start).Microseconds()) / 1000.0)

	metrics.RecordCandidatesEvaluated(report.Evaluated)
	metrics.RecordCandidatesAdmitted(report.Eligible)
	for reason, n := range report.Rejected {
		metrics.RecordCandidatesRejected(string(reason), n)
	}
	metrics.RecordShortlistSize(len(report.Shortlist))

	if report.Empty() {
		s.record(OutcomeEmpty)
		s.logger.Info(ctx, "no eligible candidates",
			logger.String("projectId", p.ID),
			logger.Int("evaluated", report.Evaluated),
		)
		return types.NewShortlist(p, report, nil, s.now()), nil
	}

	r, err := rec.Recommend(p, report.Shortlist, demo)
	if err != nil {
		s.record(OutcomeError)
		return types.Shortlist{}, err
	}
	metrics.RecordRecommendation(string(r.Confidence))
	s.record(OutcomeShortlisted)

	s.logger.Debug(ctx, "shortlist built",
		logger.String("projectId", p.ID),
		logger.Int("evaluated", report.Evaluated),
		logger.Int("eligible", report.Eligible),
		logger.Int("shortlisted", len(report.Shortlist)),
		logger.String("selected", r.SelectedID),
		logger.Bool("demo", demo),
	)
	return types.NewShortlist(p, report, &r, s.now()), nil
}

// StaffAll staffs every catalog project, at most batchConcurrency at a time.
// Results follow catalog order. The first error cancels the remaining work.
func (s *Service) StaffAll(ctx context.Context) ([]types.Shortlist, error) {
	start := time.Now()
	results, err := s.staffAll(ctx)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.RecordBatchRun(outcome, float64(time.Since(start).Milliseconds()))
	return results, err
}

func (s *Service) staffAll(ctx context.Context) ([]types.Shortlist, error) {
	store, rec, err := s.components()
	if err != nil {
		return nil, err
	}

	projects, err := store.Projects(ctx)
	if err != nil {
		return nil, err
	}
	employees, err := store.Employees(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	limit := s.batchConcurrency
	s.mu.RUnlock()

	results := make([]types.Shortlist, len(projects))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, p := range projects {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := s.staff(gctx, rec, p, employees, false)
			if err != nil {
				return fmt.Errorf("staff %s: %w", p.ID, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error(ctx, "batch staffing failed", logger.Error(err))
		return nil, err
	}

	s.logger.Info(ctx, "batch staffing finished",
		logger.Int("projects", len(projects)),
		logger.Int("concurrency", limit),
	)
	return results, nil
}

// Project returns a single catalog project.
func (s *Service) Project(ctx context.Context, id string) (model.Project, error) {
	store, _, err := s.components()
	if err != nil {
		return model.Project{}, err
	}
	return store.Project(ctx, id)
}

// Projects returns every catalog project.
func (s *Service) Projects(ctx context.Context) ([]model.Project, error) {
	store, _, err := s.components()
	if err != nil {
		return nil, err
	}
	return store.Projects(ctx)
}

// Employees returns every catalog employee.
func (s *Service) Employees(ctx context.Context) ([]model.Employee, error) {
	store, _, err := s.components()
	if err != nil {
		return nil, err
	}
	return store.Employees(ctx)
}

func (s *Service) record(outcome string) {
	metrics.RecordStaffingRequest(outcome)
	s.mu.Lock()
	s.outcomes[outcome]++
	s.mu.Unlock()
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	requests := make(map[string]int, len(s.outcomes))
	for k, v := range s.outcomes {
		requests[k] = v
	}
	stats := map[string]interface{}{
		"started":          s.started,
		"batchConcurrency": s.batchConcurrency,
		"requests":         requests,
	}

	if s.started {
		c := s.catalog.Stats(context.Background())
		stats["projects"] = c.Projects
		stats["employees"] = c.Employees

		metrics.UpdateCatalogProjects(c.Projects)
		metrics.UpdateCatalogEmployees(c.Employees)
	}

	return stats
}
