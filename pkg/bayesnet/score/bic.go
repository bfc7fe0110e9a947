package score

import (
	"math"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
)

// BIC scores a network by the Bayesian information criterion:
// negative log-likelihood plus a complexity penalty of
// (ln N / 2) * free parameters. The penalty keeps hill climbing from
// adding edges that only memorize the training set.
type BIC struct{}

// Name implements Scorer.
func (BIC) Name() string { return "bic" }

// Score implements Scorer.
func (b BIC) Score(nw *network.Network, ds *data.DataSet) (float64, error) {
	nll, err := LogLikelihood{}.Score(nw, ds)
	if err != nil {
		return 0, err
	}
	if math.IsInf(nll, 1) {
		return nll, nil
	}

	n := ds.NumInstances()
	if n == 0 {
		return nll, nil
	}
	return nll + math.Log(float64(n))/2*float64(freeParameters(nw)), nil
}

// freeParameters counts the independent CPD entries: for each node,
// (arity - 1) rows per combination of parent values.
func freeParameters(nw *network.Network) int {
	total := 0
	for _, n := range nw.Nodes() {
		rows := n.Attribute().Arity() - 1
		for _, p := range n.Parents() {
			rows *= p.Attribute().Arity()
		}
		total += rows
	}
	return total
}
