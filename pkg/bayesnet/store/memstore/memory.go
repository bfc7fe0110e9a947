// Package memstore is an in-memory store.Store for tests and embedded
// use.
package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
)

// Store is an in-memory implementation of store.Store.
type Store struct {
	mu       sync.RWMutex
	datasets map[string]*data.DataSet
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{datasets: make(map[string]*data.DataSet)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// SaveDataSet stores a copy of the dataset under name, replacing any
// previous dataset with that name.
func (s *Store) SaveDataSet(ctx context.Context, name string, ds *data.DataSet) error {
	cp, err := copyDataSet(ds)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.datasets[name] = cp
	return nil
}

// LoadDataSet returns a copy of the named dataset.
func (s *Store) LoadDataSet(ctx context.Context, name string) (*data.DataSet, bool, error) {
	s.mu.RLock()
	ds, ok := s.datasets[name]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	cp, err := copyDataSet(ds)
	if err != nil {
		return nil, false, err
	}
	return cp, true, nil
}

// ListDataSets returns the stored dataset names in sorted order.
func (s *Store) ListDataSets(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// DeleteDataSet removes the named dataset if present.
func (s *Store) DeleteDataSet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.datasets, name)
	return nil
}

// copyDataSet rebuilds a dataset so callers cannot mutate stored rows.
// Attributes are immutable and shared.
func copyDataSet(ds *data.DataSet) (*data.DataSet, error) {
	cp, err := data.NewDataSet(ds.Attributes())
	if err != nil {
		return nil, err
	}
	for _, in := range ds.Instances() {
		values := make([]float64, len(in.Values))
		copy(values, in.Values)
		if err := cp.AddInstance(data.Instance{Values: values}); err != nil {
			return nil, err
		}
	}
	return cp, nil
}
