// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the tracker CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hoopsight/hoopsight/internal/adapters/repository"
	"github.com/hoopsight/hoopsight/internal/adapters/results"
	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/internal/domain/predict"
	"github.com/hoopsight/hoopsight/internal/domain/stats"
	"github.com/hoopsight/hoopsight/internal/domain/synergy"
	"github.com/hoopsight/hoopsight/internal/domain/teams"
	"github.com/hoopsight/hoopsight/internal/domain/types"
	"github.com/hoopsight/hoopsight/pkg/logger"
	"github.com/hoopsight/hoopsight/pkg/metrics"
)

const dateLayout = "2006-01-02"

// ErrNotConfigured reports a Service missing a required collaborator.
var ErrNotConfigured = errors.New("service dependency not configured")

// Catalog is the read-only player index the service resolves names in.
type Catalog interface {
	synergy.Catalog
	All() []types.Player
	Search(q string, limit int) []types.Player
}

// Service owns the catalog, the prediction store, the external score
// source, and the predictor. One instance is constructed at process
// start and passed to every surface that needs it; there is no hidden
// global state.
//
// The mutex serializes every read-modify-write cycle against the
// prediction store so that logging and reconciliation never race.
type Service struct {
	mu sync.Mutex

	catalog   Catalog
	store     repository.Store
	source    results.Source
	predictor *predict.Predictor
	clock     func() time.Time
	maxSearch int

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithCatalog sets the player catalog.
func WithCatalog(c Catalog) Option {
	return func(s *Service) {
		if c != nil {
			s.catalog = c
		}
	}
}

// WithStore sets the prediction store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithResultSource sets the external score source.
func WithResultSource(src results.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithPredictor sets a custom outcome predictor.
func WithPredictor(p *predict.Predictor) Option {
	return func(s *Service) {
		if p != nil {
			s.predictor = p
		}
	}
}

// WithClock overrides the time source.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithMaxSearchResults caps player search responses.
func WithMaxSearchResults(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxSearch = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New constructs a Service. Catalog, store, and result source must be
// supplied via options before the corresponding operations are used.
func New(opts ...Option) *Service {
	s := &Service{
		predictor: predict.New(),
		clock:     time.Now,
		maxSearch: 10,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	return s
}

// Compare resolves both lineups and computes their comparison.
func (s *Service) Compare(ctx context.Context, lineup1, lineup2 types.Lineup) (model.Comparison, error) {
	if s.catalog == nil {
		return model.Comparison{}, fmt.Errorf("%w: catalog", ErrNotConfigured)
	}
	cmp, err := synergy.Compare(s.catalog, lineup1, lineup2)
	if err != nil {
		var missing *synergy.MissingPlayersError
		if errors.As(err, &missing) {
			metrics.RecordMissingPlayer()
		}
		return model.Comparison{}, err
	}
	metrics.RecordComparison()
	return cmp, nil
}

// Predict compares both lineups and runs the outcome predictor. The
// comparison is returned alongside the outcome so callers can show the
// synergy breakdown. No side effects.
func (s *Service) Predict(ctx context.Context, lineup1, lineup2 types.Lineup, team1Home bool) (model.Outcome, model.Comparison, error) {
	cmp, err := s.Compare(ctx, lineup1, lineup2)
	if err != nil {
		return model.Outcome{}, model.Comparison{}, err
	}
	return s.predictor.Predict(cmp, team1Home), cmp, nil
}

// LogRequest carries everything needed to persist one prediction.
type LogRequest struct {
	Team1           string
	Team2           string
	Team1Name       string
	Team2Name       string
	PredictedWinner string
	PredictedScore  string
	Confidence      float64
	GameDate        string // YYYY-MM-DD; empty means today
}

// LogPrediction persists a prediction as an unchecked record. Team
// references are canonicalized before storage; logging is idempotent
// per (team pair, date) while the record is unchecked.
func (s *Service) LogPrediction(ctx context.Context, req LogRequest) (model.PredictionRecord, error) {
	if s.store == nil {
		return model.PredictionRecord{}, fmt.Errorf("%w: store", ErrNotConfigured)
	}

	date := req.GameDate
	if date == "" {
		date = s.clock().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return model.PredictionRecord{}, fmt.Errorf("invalid game date %q: %w", req.GameDate, err)
	}

	team1 := teams.Canonical(req.Team1)
	team2 := teams.Canonical(req.Team2)
	rec := model.PredictionRecord{
		ID:              model.PredictionID(team1, team2, date),
		Date:            date,
		Team1:           team1,
		Team2:           team2,
		Team1Name:       fallback(req.Team1Name, req.Team1),
		Team2Name:       fallback(req.Team2Name, req.Team2),
		PredictedWinner: teams.Canonical(req.PredictedWinner),
		PredictedScore:  req.PredictedScore,
		Confidence:      req.Confidence,
		Timestamp:       s.clock(),
		Checked:         false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored, err := s.store.Log(ctx, rec)
	if err != nil {
		return model.PredictionRecord{}, err
	}
	metrics.RecordPredictionLogged()
	s.log.Info(ctx, "prediction logged",
		logger.String("id", stored.ID),
		logger.String("winner", stored.PredictedWinner),
		logger.Float64("confidence", stored.Confidence),
	)
	return stored, nil
}

// PredictAndLog runs Predict and persists the outcome in one step.
func (s *Service) PredictAndLog(ctx context.Context, lineup1, lineup2 types.Lineup, team1Home bool, req LogRequest) (model.Outcome, model.Comparison, model.PredictionRecord, error) {
	outcome, cmp, err := s.Predict(ctx, lineup1, lineup2, team1Home)
	if err != nil {
		return model.Outcome{}, model.Comparison{}, model.PredictionRecord{}, err
	}

	winner := req.Team1
	if outcome.Winner == 2 {
		winner = req.Team2
	}
	req.PredictedWinner = winner
	req.PredictedScore = fmt.Sprintf("%d-%d", outcome.Team1Score, outcome.Team2Score)
	req.Confidence = outcome.Confidence

	rec, err := s.LogPrediction(ctx, req)
	if err != nil {
		return model.Outcome{}, model.Comparison{}, model.PredictionRecord{}, err
	}
	return outcome, cmp, rec, nil
}

// Predictions returns the full logged history, oldest first.
func (s *Service) Predictions(ctx context.Context) ([]model.PredictionRecord, error) {
	if s.store == nil {
		return nil, fmt.Errorf("%w: store", ErrNotConfigured)
	}
	return s.store.All(ctx)
}

// Reconcile fetches yesterday's completed games and settles every
// unchecked prediction whose date and unordered team pair match one of
// them. A failed or empty fetch is a no-op, not an error. After any
// mutation the store is persisted and the accuracy report rebuilt.
func (s *Service) Reconcile(ctx context.Context) (model.ReconcileReport, error) {
	if s.store == nil || s.source == nil {
		return model.ReconcileReport{}, fmt.Errorf("%w: store and result source", ErrNotConfigured)
	}
	metrics.RecordReconcileRun()

	yesterday := s.clock().AddDate(0, 0, -1).Format(dateLayout)
	games, err := s.source.FinalScores(ctx, yesterday)
	if err != nil {
		// External source unavailable means "no data", never fatal.
		metrics.RecordResultFetchError()
		s.log.Warn(ctx, "score source unavailable; skipping reconciliation",
			logger.String("date", yesterday), logger.Error(err))
		games = nil
	}
	metrics.RecordResultsFetched(len(games))
	if len(games) == 0 {
		return model.ReconcileReport{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.store.All(ctx)
	if err != nil {
		return model.ReconcileReport{}, err
	}

	var report model.ReconcileReport
	for _, game := range games {
		for i := range recs {
			if recs[i].Checked || recs[i].Date != game.Date {
				continue
			}
			if !samePair(recs[i], game) {
				continue
			}
			correct := teams.Same(recs[i].PredictedWinner, game.Winner)
			recs[i].ActualResult = &model.ActualResult{Winner: game.Winner, Score: game.Score}
			recs[i].WasCorrect = &correct
			recs[i].Checked = true

			report.Checked++
			if correct {
				report.Correct++
			}
			metrics.RecordReconcileMatch(correct)
			s.log.Info(ctx, "prediction settled",
				logger.String("id", recs[i].ID),
				logger.String("actual_winner", game.Winner),
				logger.Bool("correct", correct),
			)
		}
	}

	if report.Checked == 0 {
		return report, nil
	}
	if err := s.store.Replace(ctx, recs); err != nil {
		return model.ReconcileReport{}, err
	}
	if err := s.refreshStats(ctx, recs); err != nil {
		return model.ReconcileReport{}, err
	}
	return report, nil
}

// Stats returns the last persisted accuracy report.
func (s *Service) Stats(ctx context.Context) (model.AccuracyStats, error) {
	if s.store == nil {
		return model.AccuracyStats{}, fmt.Errorf("%w: store", ErrNotConfigured)
	}
	return s.store.Stats(ctx)
}

// Players returns the whole catalog sorted by scoring average.
func (s *Service) Players(ctx context.Context) []types.Player {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.All()
}

// SearchPlayers returns catalog players matching q, capped at the
// configured maximum.
func (s *Service) SearchPlayers(ctx context.Context, q string) []types.Player {
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Search(q, s.maxSearch)
}

// PlayerByName resolves one catalog entry.
func (s *Service) PlayerByName(ctx context.Context, name string) (types.Player, bool) {
	if s.catalog == nil {
		return types.Player{}, false
	}
	return s.catalog.Player(name)
}

// refreshStats rebuilds and persists the accuracy report. Caller holds s.mu.
func (s *Service) refreshStats(ctx context.Context, recs []model.PredictionRecord) error {
	report := stats.Aggregate(recs)
	if err := s.store.SaveStats(ctx, report); err != nil {
		return err
	}
	metrics.SetAccuracy(report.Accuracy, report.TotalPredictions)
	return nil
}

// samePair matches a stored prediction against a result by unordered
// canonical team pair.
func samePair(rec model.PredictionRecord, game model.GameResult) bool {
	return (teams.Same(rec.Team1, game.Team1) && teams.Same(rec.Team2, game.Team2)) ||
		(teams.Same(rec.Team1, game.Team2) && teams.Same(rec.Team2, game.Team1))
}

func fallback(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
