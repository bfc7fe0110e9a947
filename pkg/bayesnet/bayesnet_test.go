package bayesnet

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/cognicore/bayesnet/pkg/bayesnet/config"
	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
	"github.com/cognicore/bayesnet/pkg/bayesnet/query"
	"github.com/cognicore/bayesnet/pkg/bayesnet/store/memstore"
)

// copyDataSet builds x, y binary with y a deterministic copy of x.
func copyDataSet(t *testing.T) *data.DataSet {
	t.Helper()

	x, err := data.NewNominal("x", 0, []string{"0", "1"})
	if err != nil {
		t.Fatalf("NewNominal: %v", err)
	}
	y, err := data.NewNominal("y", 1, []string{"0", "1"})
	if err != nil {
		t.Fatalf("NewNominal: %v", err)
	}
	ds, err := data.NewDataSet([]*data.Attribute{x, y})
	if err != nil {
		t.Fatalf("NewDataSet: %v", err)
	}
	for i := 0; i < 32; i++ {
		v := float64(i % 2)
		if err := ds.AddInstance(data.Instance{Values: []float64{v, v}}); err != nil {
			t.Fatalf("AddInstance: %v", err)
		}
	}
	return ds
}

func TestEngineLearnEndToEnd(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()

	if err := st.SaveDataSet(ctx, "pairs", copyDataSet(t)); err != nil {
		t.Fatalf("SaveDataSet: %v", err)
	}

	engine := New(Options{Store: st})
	defer engine.Close()

	model, err := engine.Learn(ctx, "pairs")
	if err != nil {
		t.Fatalf("Learn: %v", err)
	}

	x, _ := model.Data.AttributeByName("x")
	y, _ := model.Data.AttributeByName("y")
	xNode, _ := model.Network.Node(x)
	yNode, _ := model.Network.Node(y)
	if !model.Network.EdgeExists(xNode, yNode) {
		t.Errorf("learned structure missing x -> y:\n%s", model.Network)
	}
	if model.Result.RunID == "" {
		t.Error("RunID should be set")
	}

	// With smoothing 1, P(y=1|x=1) = 17/18 and P(x=1) = 17/34.
	joint, err := model.JointProbability(
		query.Variable{Attribute: x, Value: 1},
		query.Variable{Attribute: y, Value: 1})
	if err != nil {
		t.Fatalf("JointProbability: %v", err)
	}
	want := 17.0 / 34.0 * 17.0 / 18.0
	if math.Abs(joint-want) > 1e-9 {
		t.Errorf("P(x=1, y=1) = %f, want %f", joint, want)
	}

	conditional, err := model.ConditionalProbability(
		[]query.Variable{{Attribute: y, Value: 1}},
		[]query.Variable{{Attribute: x, Value: 1}})
	if err != nil {
		t.Fatalf("ConditionalProbability: %v", err)
	}
	if math.Abs(conditional-17.0/18.0) > 1e-9 {
		t.Errorf("P(y=1 | x=1) = %f, want %f", conditional, 17.0/18.0)
	}
}

func TestEngineLearnMissingDataset(t *testing.T) {
	engine := New(Options{Store: memstore.New()})
	defer engine.Close()

	_, err := engine.Learn(context.Background(), "nope")
	if !errors.Is(err, internalerr.ErrNotFound) {
		t.Errorf("missing dataset should return ErrNotFound, got %v", err)
	}
}

func TestEngineWithoutStore(t *testing.T) {
	engine := New(Options{})

	_, err := engine.Learn(context.Background(), "pairs")
	if !errors.Is(err, internalerr.ErrStoreUnavailable) {
		t.Errorf("store-less Learn should return ErrStoreUnavailable, got %v", err)
	}

	// LearnFrom works without a store.
	model, err := engine.LearnFrom(copyDataSet(t))
	if err != nil {
		t.Fatalf("LearnFrom: %v", err)
	}
	if model.Network.NumEdges() != 1 {
		t.Errorf("NumEdges = %d, want 1", model.Network.NumEdges())
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Learn{Smoothing: 1, Scorer: "loglikelihood", Seed: config.Seed{Kind: "empty"}}
	engine, err := FromConfig(cfg, nil)
	if err != nil {
		t.Fatalf("FromConfig: %v", err)
	}
	if _, err := engine.LearnFrom(copyDataSet(t)); err != nil {
		t.Fatalf("LearnFrom: %v", err)
	}

	bad := config.Learn{Scorer: "aic", Seed: config.Seed{Kind: "empty"}}
	if _, err := FromConfig(bad, nil); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("bad config should return ErrInvalidConfig, got %v", err)
	}
}
