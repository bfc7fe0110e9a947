package network

import (
	"sort"

	"github.com/cognicore/bayesnet/pkg/bayesnet/cpd"
	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
)

// Node wraps one attribute in the network. It holds relations (not
// ownership) to its parent and child nodes, keyed by attribute id, and
// owns the conditional probability table for its current parent set.
type Node struct {
	attr     *data.Attribute
	parents  map[int]*Node
	children map[int]*Node
	table    *cpd.Table
}

func newNode(attr *data.Attribute) *Node {
	return &Node{
		attr:     attr,
		parents:  make(map[int]*Node),
		children: make(map[int]*Node),
	}
}

// Attribute returns the attribute this node represents.
func (n *Node) Attribute() *data.Attribute { return n.attr }

// CPD returns the node's current conditional probability table.
func (n *Node) CPD() *cpd.Table { return n.table }

// Parents returns the parent nodes in ascending attribute-id order.
func (n *Node) Parents() []*Node { return sortedNodes(n.parents) }

// Children returns the child nodes in ascending attribute-id order.
func (n *Node) Children() []*Node { return sortedNodes(n.children) }

// NumParents returns the size of the parent set.
func (n *Node) NumParents() int { return len(n.parents) }

// recomputeCPD re-estimates the node's table from the dataset and its
// current parent set. The table is a deterministic function of both,
// which is what makes apply/undo restoration exact.
func (n *Node) recomputeCPD(ds *data.DataSet, smoothing int) error {
	parents := n.Parents()
	attrs := make([]*data.Attribute, len(parents))
	for i, p := range parents {
		attrs[i] = p.attr
	}
	table, err := cpd.Estimate(n.attr, attrs, ds, smoothing)
	if err != nil {
		return err
	}
	n.table = table
	return nil
}

func sortedNodes(m map[int]*Node) []*Node {
	out := make([]*Node, 0, len(m))
	for _, n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].attr.ID() < out[j].attr.ID()
	})
	return out
}
