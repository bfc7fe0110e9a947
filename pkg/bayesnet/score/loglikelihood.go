package score

import (
	"math"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
)

// LogLikelihood scores a network by its negative log-likelihood over
// the dataset:
//
//	NLL = -Σ_instances Σ_nodes ln P(node value | parent values)
//
// Lower means the structure explains the data better. With a positive
// smoothing count every probability is strictly positive, so the score
// is finite; a zero-probability lookup yields +Inf, which the search
// will never prefer.
type LogLikelihood struct{}

// Name implements Scorer.
func (LogLikelihood) Name() string { return "loglikelihood" }

// Score implements Scorer.
func (LogLikelihood) Score(nw *network.Network, ds *data.DataSet) (float64, error) {
	nodes := nw.Nodes()
	nll := 0.0
	assignment := make(map[int]int, len(nodes))

	for _, in := range ds.Instances() {
		for _, n := range nodes {
			assignment[n.Attribute().ID()] = in.Nominal(n.Attribute())
		}
		for _, n := range nodes {
			p, err := n.CPD().Query(assignment[n.Attribute().ID()], assignment)
			if err != nil {
				return 0, err
			}
			if p <= 0 {
				return math.Inf(1), nil
			}
			nll -= math.Log(p)
		}
	}
	return nll, nil
}
