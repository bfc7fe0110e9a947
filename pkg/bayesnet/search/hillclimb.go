package search

import (
	"crypto/rand"
	"fmt"
	"math"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/metrics"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
	"github.com/cognicore/bayesnet/pkg/bayesnet/score"
)

// Stats holds running totals for a search run. They are exposed for
// observability and never affect control flow.
type Stats struct {
	Iterations         int
	OperationsExamined int
	EdgesCommitted     int
}

// Result describes a finished run.
type Result struct {
	RunID      string
	FinalScore float64
	Stats      Stats
}

// HillClimber mutates a network in place to minimize a scoring
// function. Candidates are explored serially against the one shared
// network via apply/score/undo, so a climber must not be shared across
// goroutines.
type HillClimber struct {
	ds        *data.DataSet
	scorer    score.Scorer
	smoothing int
	entropy   *ulid.MonotonicEntropy
}

// NewHillClimber creates a climber over the given dataset and scorer.
func NewHillClimber(ds *data.DataSet, scorer score.Scorer, smoothing int) *HillClimber {
	return &HillClimber{
		ds:        ds,
		scorer:    scorer,
		smoothing: smoothing,
		entropy:   ulid.Monotonic(rand.Reader, 0),
	}
}

// Run climbs from the network's current structure until no candidate
// operation strictly improves the score, then reports the converged
// score and run totals. The network is left in its best found state.
func (h *HillClimber) Run(nw *network.Network) (Result, error) {
	metrics.SearchRuns.Inc()

	res := Result{
		RunID:      ulid.MustNew(ulid.Timestamp(time.Now()), h.entropy).String(),
		FinalScore: math.Inf(1),
	}

	committed := math.Inf(1)
	for {
		ops := h.ValidOperations(nw)
		res.Stats.OperationsExamined += len(ops)
		metrics.OperationsExamined.Add(float64(len(ops)))

		res.Stats.Iterations++
		metrics.SearchIterations.Inc()

		best, bestScore, err := h.bestOperation(nw, ops)
		if err != nil {
			return res, err
		}

		// Converged: the best candidate is no strict improvement on
		// the previously committed structure.
		if !(bestScore < committed) {
			res.FinalScore = committed
			return res, nil
		}

		if err := best.Apply(nw, h.ds, h.smoothing); err != nil {
			return res, fmt.Errorf("commit %s: %w", best, err)
		}
		committed = bestScore
		res.Stats.EdgesCommitted++
		metrics.OperationsCommitted.WithLabelValues(best.Type.String()).Inc()
	}
}

// bestOperation scores every candidate with an apply/score/undo round
// trip and returns the minimum-scoring one, first encountered winning
// ties. With no candidates the score is +Inf, which forces convergence.
func (h *HillClimber) bestOperation(nw *network.Network, ops []Operation) (Operation, float64, error) {
	best := Operation{}
	bestScore := math.Inf(1)

	for _, op := range ops {
		if err := op.Apply(nw, h.ds, h.smoothing); err != nil {
			return best, 0, fmt.Errorf("apply %s: %w", op, err)
		}
		s, scoreErr := h.scorer.Score(nw, h.ds)
		if err := op.Inverse().Apply(nw, h.ds, h.smoothing); err != nil {
			return best, 0, fmt.Errorf("undo %s: %w", op, err)
		}
		if scoreErr != nil {
			return best, 0, fmt.Errorf("score %s: %w", op, scoreErr)
		}
		if s < bestScore {
			best = op
			bestScore = s
		}
	}
	return best, bestScore, nil
}

// ValidOperations enumerates every candidate operation on the current
// structure: for each ordered pair of distinct nodes (ascending
// attribute id, parent outer loop), a non-existent cycle-safe edge
// yields ADD, and an existing edge yields REVERSE (when flipping stays
// acyclic) then REMOVE.
func (h *HillClimber) ValidOperations(nw *network.Network) []Operation {
	nodes := nw.Nodes()
	var ops []Operation
	for _, parent := range nodes {
		for _, child := range nodes {
			if parent == child {
				continue
			}
			ops = append(ops, operationsOnEdge(nw, parent, child)...)
		}
	}
	return ops
}

func operationsOnEdge(nw *network.Network, parent, child *network.Node) []Operation {
	var ops []Operation

	exists := nw.EdgeExists(parent, child)
	if !exists && nw.IsValidEdge(parent, child) {
		ops = append(ops, Operation{Type: OpAdd, Parent: parent, Child: child})
	}
	if exists && nw.IsValidReverseEdge(parent, child) {
		ops = append(ops, Operation{Type: OpReverse, Parent: parent, Child: child})
	}
	if exists {
		ops = append(ops, Operation{Type: OpRemove, Parent: parent, Child: child})
	}
	return ops
}
