// Package network implements the Bayesian network itself: the directed
// acyclic graph of nodes over attributes, structural mutation that
// keeps it acyclic, and exact inference by enumeration.
package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cognicore/bayesnet/pkg/bayesnet/data"
	"github.com/cognicore/bayesnet/pkg/bayesnet/internalerr"
)

// Network owns the attribute → node mapping and enforces the DAG
// invariant. Mutation preconditions are validated by the IsValid*
// queries; CreateEdge and friends only check the cheap local
// preconditions, so callers that skip validation get a structure error
// rather than a cycle check.
type Network struct {
	nodes map[int]*Node
}

// New creates an empty network.
func New() *Network {
	return &Network{nodes: make(map[int]*Node)}
}

// AddAttribute attaches a new parentless node for attr and estimates
// its CPD from the dataset.
func (nw *Network) AddAttribute(attr *data.Attribute, ds *data.DataSet, smoothing int) (*Node, error) {
	if attr == nil {
		return nil, fmt.Errorf("nil attribute: %w", internalerr.ErrInvalidInput)
	}
	if _, ok := nw.nodes[attr.ID()]; ok {
		return nil, fmt.Errorf("attribute %q already in network: %w", attr.Name(), internalerr.ErrInvalidStructure)
	}
	n := newNode(attr)
	if err := n.recomputeCPD(ds, smoothing); err != nil {
		return nil, err
	}
	nw.nodes[attr.ID()] = n
	return n, nil
}

// Node returns the node representing attr.
func (nw *Network) Node(attr *data.Attribute) (*Node, bool) {
	if attr == nil {
		return nil, false
	}
	n, ok := nw.nodes[attr.ID()]
	return n, ok
}

// NodeByName returns the node whose attribute has the given name.
func (nw *Network) NodeByName(name string) (*Node, bool) {
	for _, n := range nw.nodes {
		if n.attr.Name() == name {
			return n, true
		}
	}
	return nil, false
}

// Nodes returns all nodes in ascending attribute-id order. This is the
// stable ordering used for candidate enumeration and printing.
func (nw *Network) Nodes() []*Node { return sortedNodes(nw.nodes) }

// NumNodes returns the number of nodes in the network.
func (nw *Network) NumNodes() int { return len(nw.nodes) }

// NumEdges returns the number of directed edges in the network.
func (nw *Network) NumEdges() int {
	total := 0
	for _, n := range nw.nodes {
		total += len(n.parents)
	}
	return total
}

// EdgeExists reports whether the directed edge parent → child is
// present.
func (nw *Network) EdgeExists(parent, child *Node) bool {
	if parent == nil || child == nil {
		return false
	}
	_, ok := child.parents[parent.attr.ID()]
	return ok
}

// CreateEdge adds the directed edge parent → child and re-estimates the
// child's CPD. The caller must have checked IsValidEdge; this method
// rejects self-loops and duplicate edges but does not re-run the
// acyclicity search.
func (nw *Network) CreateEdge(parent, child *Node, ds *data.DataSet, smoothing int) error {
	if parent == nil || child == nil || parent == child {
		return fmt.Errorf("create edge: bad endpoints: %w", internalerr.ErrInvalidStructure)
	}
	if nw.EdgeExists(parent, child) {
		return fmt.Errorf("create edge %s -> %s: already exists: %w",
			parent.attr.Name(), child.attr.Name(), internalerr.ErrInvalidStructure)
	}

	parent.children[child.attr.ID()] = child
	child.parents[parent.attr.ID()] = parent

	return child.recomputeCPD(ds, smoothing)
}

// RemoveEdge deletes the directed edge parent → child and re-estimates
// the child's CPD. Removing an absent edge is a caller error.
func (nw *Network) RemoveEdge(parent, child *Node, ds *data.DataSet, smoothing int) error {
	if !nw.EdgeExists(parent, child) {
		return fmt.Errorf("remove edge %s -> %s: %w",
			nodeName(parent), nodeName(child), internalerr.ErrEdgeNotFound)
	}

	delete(parent.children, child.attr.ID())
	delete(child.parents, parent.attr.ID())

	return child.recomputeCPD(ds, smoothing)
}

// ReverseEdge flips parent → child into child → parent, re-estimating
// both endpoints' CPDs. The caller must have checked
// IsValidReverseEdge.
func (nw *Network) ReverseEdge(parent, child *Node, ds *data.DataSet, smoothing int) error {
	if err := nw.RemoveEdge(parent, child, ds, smoothing); err != nil {
		return err
	}
	return nw.CreateEdge(child, parent, ds, smoothing)
}

// IsValidEdge reports whether adding parent → child would keep the
// graph a DAG: the edge must not exist, the endpoints must differ, and
// child must not already be an ancestor of parent.
func (nw *Network) IsValidEdge(parent, child *Node) bool {
	if parent == nil || child == nil || parent == child {
		return false
	}
	if nw.EdgeExists(parent, child) {
		return false
	}
	for _, above := range nw.NodesAbove(parent) {
		if above == child {
			return false
		}
	}
	return true
}

// IsValidReverseEdge reports whether the edge parent → child exists and
// flipping it keeps the graph acyclic, i.e. parent has no other path to
// child besides the edge being reversed.
func (nw *Network) IsValidReverseEdge(parent, child *Node) bool {
	if !nw.EdgeExists(parent, child) {
		return false
	}
	// Any other path parent ~> child must pass through one of child's
	// other parents.
	for _, other := range child.Parents() {
		if other == parent {
			continue
		}
		for _, above := range nw.NodesAbove(other) {
			if above == parent {
				return false
			}
		}
	}
	return true
}

// NodesAbove returns node plus its full ancestor closure, in the order
// nodes are first reached walking parents depth-first (parents in
// ascending attribute-id order). A parentless node yields just itself.
func (nw *Network) NodesAbove(node *Node) []*Node {
	var closure []*Node
	visited := make(map[int]struct{})

	var walk func(n *Node)
	walk = func(n *Node) {
		if _, ok := visited[n.attr.ID()]; ok {
			return
		}
		visited[n.attr.ID()] = struct{}{}
		closure = append(closure, n)
		for _, p := range n.Parents() {
			walk(p)
		}
	}
	walk(node)
	return closure
}

// String renders the structure one node per line: the node's attribute
// name followed by its parents' names.
func (nw *Network) String() string {
	var sb strings.Builder
	for _, n := range nw.Nodes() {
		sb.WriteString(n.attr.Name())
		for _, p := range n.Parents() {
			sb.WriteByte(' ')
			sb.WriteString(p.attr.Name())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Edges returns every directed edge as a (parent, child) pair, ordered
// by child then parent attribute id.
func (nw *Network) Edges() [][2]*Node {
	var out [][2]*Node
	for _, child := range nw.Nodes() {
		for _, parent := range child.Parents() {
			out = append(out, [2]*Node{parent, child})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i][1].attr.ID() != out[j][1].attr.ID() {
			return out[i][1].attr.ID() < out[j][1].attr.ID()
		}
		return out[i][0].attr.ID() < out[j][0].attr.ID()
	})
	return out
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.attr.Name()
}
