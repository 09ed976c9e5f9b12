package health

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/metrics"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=store_mocks_test.go -package=health

type Status string

const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

type LoadStatus struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

type datasetLoader interface {
	Load(ctx context.Context, source string) ([]HealthRecord, error)
}

// Store owns the dataset and its load status: idle -> loading -> succeeded | failed.
// The load is attempted once, a failed state is final.
type Store struct {
	mu      sync.RWMutex
	status  Status
	errMsg  string
	dataset *Dataset

	loader  datasetLoader
	source  string
	metrics *metrics.Manager
	now     func() time.Time
}

func NewStore(loader datasetLoader, source string, metricsManager *metrics.Manager) *Store {
	return &Store{
		status:  StatusIdle,
		loader:  loader,
		source:  source,
		metrics: metricsManager,
		now:     time.Now,
	}
}

// NewStoreFromDataset returns a store already in the succeeded state.
func NewStoreFromDataset(ds *Dataset) *Store {
	return &Store{
		status:  StatusSucceeded,
		dataset: ds,
		now:     time.Now,
	}
}

// WithClock replaces the clock used to clamp the dataset bounds to "today".
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.status != StatusIdle {
		s.mu.Unlock()
		return fmt.Errorf("dataset load already attempted, status: %s", s.status)
	}
	s.status = StatusLoading
	s.mu.Unlock()

	begin := time.Now()
	ds, err := s.load(ctx)
	if s.metrics != nil {
		s.metrics.HistDatasetLoadDuration.Observe(time.Since(begin).Seconds())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.status = StatusFailed
		s.errMsg = err.Error()
		if s.metrics != nil {
			s.metrics.CounterDatasetLoads.WithLabelValues(string(StatusFailed)).Inc()
		}
		log.Errorf("load dataset from [%s]: %s", s.source, err)
		return err
	}

	s.status = StatusSucceeded
	s.dataset = ds
	if s.metrics != nil {
		s.metrics.CounterDatasetLoads.WithLabelValues(string(StatusSucceeded)).Inc()
		s.metrics.GaugeDatasetRecords.Set(float64(ds.Len()))
	}
	log.Infof("dataset loaded: %d records, bounds: %+v", ds.Len(), ds.Bounds())
	return nil
}

func (s *Store) load(ctx context.Context) (*Dataset, error) {
	records, err := s.loader.Load(ctx, s.source)
	if err != nil {
		return nil, err
	}
	ds, err := NewDataset(records, s.now())
	if err != nil {
		if !errors.Is(err, ErrMalformedDataset) {
			err = fmt.Errorf("%w: %w", ErrMalformedDataset, err)
		}
		return nil, err
	}
	return ds, nil
}

func (s *Store) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return LoadStatus{Status: s.status, Error: s.errMsg}
}

// Dataset returns the loaded dataset, or ErrNotLoaded while the store has not succeeded.
func (s *Store) Dataset() (*Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.status {
	case StatusSucceeded:
		return s.dataset, nil
	case StatusFailed:
		return nil, fmt.Errorf("%w: %s", ErrNotLoaded, s.errMsg)
	default:
		return nil, fmt.Errorf("%w: status %s", ErrNotLoaded, s.status)
	}
}
