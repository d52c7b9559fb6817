package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/hoopsight/hoopsight/internal/domain/model"
	"github.com/hoopsight/hoopsight/pkg/logger"
	"github.com/hoopsight/hoopsight/pkg/metrics"
)

// Default file names inside the data directory.
const (
	defaultPredictionsFile = "predictions_history.json"
	defaultStatsFile       = "prediction_stats.json"
)

// FileStore is a Store backed by two JSON files in a data directory.
// An unreadable or corrupt file is treated as empty so a bad write can
// never take the reconciliation and stats paths down with it; the
// failure is logged and counted, and the next successful write repairs
// the file.
type FileStore struct {
	mu              sync.Mutex
	dir             string
	predictionsPath string
	statsPath       string
	log             logger.Logger
}

// FileOption applies a configuration option to the FileStore.
type FileOption func(*FileStore)

// WithPredictionsFile overrides the history file name.
func WithPredictionsFile(name string) FileOption {
	return func(s *FileStore) {
		if name != "" {
			s.predictionsPath = filepath.Join(s.dir, name)
		}
	}
}

// WithStatsFile overrides the stats file name.
func WithStatsFile(name string) FileOption {
	return func(s *FileStore) {
		if name != "" {
			s.statsPath = filepath.Join(s.dir, name)
		}
	}
}

// WithStoreLogger sets a logger for corruption warnings.
func WithStoreLogger(l logger.Logger) FileOption {
	return func(s *FileStore) {
		s.log = l
	}
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory when needed.
func NewFileStore(dir string, opts ...FileOption) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	s := &FileStore{
		dir:             dir,
		predictionsPath: filepath.Join(dir, defaultPredictionsFile),
		statsPath:       filepath.Join(dir, defaultStatsFile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// All returns every logged prediction, oldest first.
func (s *FileStore) All(ctx context.Context) ([]model.PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readPredictions(ctx)
}

// Log stores rec with idempotent-per-id semantics.
func (s *FileStore) Log(ctx context.Context, rec model.PredictionRecord) (model.PredictionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	recs, err := s.readPredictions(ctx)
	if err != nil {
		return model.PredictionRecord{}, err
	}

	start := time.Now()
	for i := range recs {
		if recs[i].ID != rec.ID {
			continue
		}
		if recs[i].Checked {
			// Settled prediction; a late duplicate never rewrites history.
			return recs[i], nil
		}
		recs[i] = rec
		if err := s.writeJSON(s.predictionsPath, recs); err != nil {
			return model.PredictionRecord{}, err
		}
		metrics.RecordStoreWriteLatency(float64(time.Since(start).Milliseconds()))
		return rec, nil
	}

	recs = append(recs, rec)
	if err := s.writeJSON(s.predictionsPath, recs); err != nil {
		return model.PredictionRecord{}, err
	}
	metrics.RecordStoreWriteLatency(float64(time.Since(start).Milliseconds()))
	return rec, nil
}

// Replace rewrites the full history.
func (s *FileStore) Replace(ctx context.Context, recs []model.PredictionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if recs == nil {
		recs = []model.PredictionRecord{}
	}
	return s.writeJSON(s.predictionsPath, recs)
}

// Stats returns the persisted accuracy report, or the zero report when
// none has been written yet.
func (s *FileStore) Stats(ctx context.Context) (model.AccuracyStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out model.AccuracyStats
	data, err := os.ReadFile(s.statsPath)
	if errors.Is(err, os.ErrNotExist) {
		return out, nil
	}
	if err != nil {
		s.warnCorrupt(ctx, s.statsPath, err)
		return model.AccuracyStats{}, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		s.warnCorrupt(ctx, s.statsPath, err)
		return model.AccuracyStats{}, nil
	}
	return out, nil
}

// SaveStats overwrites the persisted accuracy report.
func (s *FileStore) SaveStats(ctx context.Context, st model.AccuracyStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeJSON(s.statsPath, st)
}

func (s *FileStore) readPredictions(ctx context.Context) ([]model.PredictionRecord, error) {
	start := time.Now()
	data, err := os.ReadFile(s.predictionsPath)
	if errors.Is(err, os.ErrNotExist) {
		return []model.PredictionRecord{}, nil
	}
	if err != nil {
		s.warnCorrupt(ctx, s.predictionsPath, err)
		return []model.PredictionRecord{}, nil
	}
	var recs []model.PredictionRecord
	if err := json.Unmarshal(data, &recs); err != nil {
		s.warnCorrupt(ctx, s.predictionsPath, err)
		return []model.PredictionRecord{}, nil
	}
	metrics.RecordStoreReadLatency(float64(time.Since(start).Milliseconds()))
	return recs, nil
}

// writeJSON swaps the target file atomically: write a temp sibling,
// fsync, rename over the original.
func (s *FileStore) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %s", ErrWriteStore, path, err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: %s", ErrWriteStore, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s", ErrWriteStore, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %s", ErrWriteStore, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteStore, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %s", ErrWriteStore, err)
	}
	return nil
}

func (s *FileStore) warnCorrupt(ctx context.Context, path string, err error) {
	metrics.RecordStoreCorruption()
	if s.log != nil {
		s.log.Warn(ctx, "store file unreadable; continuing with empty data",
			logger.String("path", path), logger.Error(err))
	}
}
