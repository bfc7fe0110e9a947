// Package store defines the persistence interface for datasets.
package store

import (
	"context"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
)

// Store persists named datasets so a learned-from corpus can be saved
// once and reloaded across runs.
type Store interface {
	Close() error

	SaveDataSet(ctx context.Context, name string, ds *data.DataSet) error
	LoadDataSet(ctx context.Context, name string) (*data.DataSet, bool, error)
	ListDataSets(ctx context.Context) ([]string, error)
	DeleteDataSet(ctx context.Context, name string) error
}
