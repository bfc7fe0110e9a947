// Package builders constructs seed networks that hill climbing starts
// from.
package builders

import (
	"fmt"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
)

// Builder produces a seed network satisfying the DAG invariant.
type Builder interface {
	Build(ds *data.DataSet, smoothing int) (*network.Network, error)
}

// Empty builds an edgeless network with one node per nominal attribute.
// Continuous attributes are skipped; they cannot carry a CPD.
type Empty struct{}

// Build implements Builder.
func (Empty) Build(ds *data.DataSet, smoothing int) (*network.Network, error) {
	nw := network.New()
	for _, a := range ds.Attributes() {
		if a.Type() != data.Nominal {
			continue
		}
		if _, err := nw.AddAttribute(a, ds, smoothing); err != nil {
			return nil, err
		}
	}
	if nw.NumNodes() == 0 {
		return nil, fmt.Errorf("dataset has no nominal attributes: %w", internalerr.ErrInvalidInput)
	}
	return nw, nil
}

// NaiveBayes builds the naive-Bayes skeleton: the class attribute is
// the sole parent of every other nominal attribute.
type NaiveBayes struct {
	ClassAttribute string
}

// Build implements Builder.
func (b NaiveBayes) Build(ds *data.DataSet, smoothing int) (*network.Network, error) {
	nw, err := Empty{}.Build(ds, smoothing)
	if err != nil {
		return nil, err
	}

	classAttr, ok := ds.AttributeByName(b.ClassAttribute)
	if !ok {
		return nil, fmt.Errorf("class attribute %q: %w", b.ClassAttribute, internalerr.ErrUnknownAttribute)
	}
	class, ok := nw.Node(classAttr)
	if !ok {
		return nil, fmt.Errorf("class attribute %q is not nominal: %w", b.ClassAttribute, internalerr.ErrUnsupportedAttributeType)
	}

	for _, n := range nw.Nodes() {
		if n == class {
			continue
		}
		if err := nw.CreateEdge(class, n, ds, smoothing); err != nil {
			return nil, err
		}
	}
	return nw, nil
}
