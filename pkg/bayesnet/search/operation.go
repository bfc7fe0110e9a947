// Package search implements greedy hill climbing over network
// structures: enumerate candidate edge operations, score each one
// against the dataset with an apply/score/undo round trip on the single
// shared network, and commit the best strict improvement until none
// remains.
package search

import (
	"fmt"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/network"
)

// OpType is the kind of structural edit an Operation describes.
type OpType int

const (
	OpAdd OpType = iota
	OpReverse
	OpRemove
)

// String returns the operation type name.
func (t OpType) String() string {
	switch t {
	case OpAdd:
		return "add"
	case OpReverse:
		return "reverse"
	case OpRemove:
		return "remove"
	}
	return fmt.Sprintf("optype(%d)", int(t))
}

// Operation describes one candidate structural edit on an ordered
// (parent, child) node pair. It is a pure descriptor; Apply delegates
// to the network's mutation methods.
type Operation struct {
	Type   OpType
	Parent *network.Node
	Child  *network.Node
}

// String renders the operation as e.g. "add A -> B".
func (op Operation) String() string {
	return fmt.Sprintf("%s %s -> %s", op.Type, op.Parent.Attribute().Name(), op.Child.Attribute().Name())
}

// Apply executes the operation on the network, recomputing the CPDs the
// underlying mutation touches.
func (op Operation) Apply(nw *network.Network, ds *data.DataSet, smoothing int) error {
	switch op.Type {
	case OpAdd:
		return nw.CreateEdge(op.Parent, op.Child, ds, smoothing)
	case OpRemove:
		return nw.RemoveEdge(op.Parent, op.Child, ds, smoothing)
	case OpReverse:
		return nw.ReverseEdge(op.Parent, op.Child, ds, smoothing)
	}
	return fmt.Errorf("unknown operation type %d", int(op.Type))
}

// Inverse returns the operation that exactly undoes this one: REMOVE
// undoes ADD, ADD undoes REMOVE, and REVERSE undoes REVERSE with the
// endpoints swapped. Because CPDs are deterministic functions of
// (parent set, dataset, smoothing), applying op then op.Inverse()
// restores the network bit for bit.
func (op Operation) Inverse() Operation {
	switch op.Type {
	case OpAdd:
		return Operation{Type: OpRemove, Parent: op.Parent, Child: op.Child}
	case OpRemove:
		return Operation{Type: OpAdd, Parent: op.Parent, Child: op.Child}
	default:
		return Operation{Type: OpReverse, Parent: op.Child, Child: op.Parent}
	}
}
