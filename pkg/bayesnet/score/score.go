// Package score defines the scoring contract the structure search
// optimizes, plus the two stock scorers. By convention lower is better;
// scorers must be deterministic for a fixed (structure, dataset) pair.
package score

import (
	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
)

// Scorer rates how well a network structure fits a dataset. Lower is
// better.
type Scorer interface {
	Score(nw *network.Network, ds *data.DataSet) (float64, error)
	Name() string
}
