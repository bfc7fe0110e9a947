// Package bayesnet learns the structure of a discrete Bayesian network
// from tabular data and answers probabilistic queries against it.
package bayesnet

import (
	"context"
	"fmt"

	"github.com/cognicore/bayesnet/pkg/bayesnet/builders"
	"github.com/cognicore/bayesnet/pkg/bayesnet/config"
	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
	"github.com/cognicore/bayesnet/pkg/bayesnet/query"
	"github.com/cognicore/bayesnet/pkg/bayesnet/score"
	"github.com/cognicore/bayesnet/pkg/bayesnet/search"
	"github.com/cognicore/bayesnet/pkg/bayesnet/store"
)

// Engine is the main structure-learning facade.
type Engine struct {
	store     store.Store
	scorer    score.Scorer
	builder   builders.Builder
	smoothing int
}

// Options configures an Engine instance.
type Options struct {
	Store     store.Store      // dataset persistence; optional if only LearnFrom is used
	Scorer    score.Scorer     // defaults to BIC
	Builder   builders.Builder // defaults to the empty seed network
	Smoothing int              // Laplace pseudo-count, defaults to 1
}

// New creates an Engine with the given dependencies.
func New(opts Options) *Engine {
	e := &Engine{
		store:     opts.Store,
		scorer:    opts.Scorer,
		builder:   opts.Builder,
		smoothing: opts.Smoothing,
	}
	if e.scorer == nil {
		e.scorer = score.BIC{}
	}
	if e.builder == nil {
		e.builder = builders.Empty{}
	}
	if e.smoothing == 0 {
		e.smoothing = 1
	}
	return e
}

// FromConfig creates an Engine from a learn configuration.
func FromConfig(cfg config.Learn, st store.Store) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scorer, err := cfg.BuildScorer()
	if err != nil {
		return nil, err
	}
	builder, err := cfg.BuildSeed()
	if err != nil {
		return nil, err
	}
	return New(Options{
		Store:     st,
		Scorer:    scorer,
		Builder:   builder,
		Smoothing: cfg.Smoothing,
	}), nil
}

// Close cleanly shuts down the engine.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Model pairs a learned network with the dataset it was learned from,
// so queries and re-scoring use the same data.
type Model struct {
	Network *network.Network
	Data    *data.DataSet
	Result  search.Result
}

// Learn loads the named dataset from the store and learns a structure
// for it.
func (e *Engine) Learn(ctx context.Context, dataset string) (*Model, error) {
	if e.store == nil {
		return nil, fmt.Errorf("engine has no store: %w", internalerr.ErrStoreUnavailable)
	}
	ds, found, err := e.store.LoadDataSet(ctx, dataset)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("dataset %q: %w", dataset, internalerr.ErrNotFound)
	}
	return e.LearnFrom(ds)
}

// LearnFrom builds the seed network for the dataset and hill-climbs it
// to convergence.
func (e *Engine) LearnFrom(ds *data.DataSet) (*Model, error) {
	nw, err := e.builder.Build(ds, e.smoothing)
	if err != nil {
		return nil, fmt.Errorf("build seed network: %w", err)
	}

	climber := search.NewHillClimber(ds, e.scorer, e.smoothing)
	res, err := climber.Run(nw)
	if err != nil {
		return nil, fmt.Errorf("structure search: %w", err)
	}

	return &Model{Network: nw, Data: ds, Result: res}, nil
}

// JointProbability answers P(vars) against the learned network.
func (m *Model) JointProbability(vars ...query.Variable) (float64, error) {
	q, err := query.NewJoint(vars...)
	if err != nil {
		return 0, err
	}
	return m.Network.JointProbability(q)
}

// ConditionalProbability answers P(target | condition) against the
// learned network.
func (m *Model) ConditionalProbability(target, condition []query.Variable) (float64, error) {
	tq, err := query.NewJoint(target...)
	if err != nil {
		return 0, err
	}
	cq, err := query.NewJoint(condition...)
	if err != nil {
		return 0, err
	}
	q, err := query.NewConditional(tq, cq)
	if err != nil {
		return 0, err
	}
	return m.Network.ConditionalProbability(q)
}
