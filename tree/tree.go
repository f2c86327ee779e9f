package tree

import (
	"fmt"
	"math"
	"strings"

	"github.com/pbanos/bonsai/feature"
)

// Tree represents a binary decision tree. Its nodes live in an arena
// indexed by NodeID, and a side table annotated once when the tree is
// built links every node to its parent.
type Tree struct {
	nodes   []Node
	parents []parentLink
}

type parentLink struct {
	parent NodeID
	side   feature.Side
}

/*
Builder allows growing a tree from a single root leaf by splitting
leaves into pairs of new leaves. Build returns the finished tree.
*/
type Builder struct {
	nodes []Node
}

// NewBuilder returns a builder for a tree consisting of a single leaf
func NewBuilder() *Builder {
	return &Builder{nodes: []Node{{ID: 0, Left: NoNode, Right: NoNode}}}
}

// Root returns the ID of the root node
func (b *Builder) Root() NodeID {
	return 0
}

/*
Split takes the ID of a leaf, a feature index and a threshold, turns the leaf
into a split on that feature and threshold and returns the IDs of the two new
leaves under it. It returns an error if the node is unknown or already split,
if the feature index is out of range or if the threshold is not finite.
*/
func (b *Builder) Split(id NodeID, f int, threshold float64) (left, right NodeID, err error) {
	if id < 0 || int(id) >= len(b.nodes) {
		return NoNode, NoNode, fmt.Errorf("splitting node %d: %w", id, ErrUnknownNode)
	}
	if !b.nodes[id].IsLeaf() {
		return NoNode, NoNode, fmt.Errorf("splitting node %d: node is already split", id)
	}
	if f < 0 || f >= feature.Count {
		return NoNode, NoNode, fmt.Errorf("splitting node %d: feature index %d out of range", id, f)
	}
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return NoNode, NoNode, fmt.Errorf("splitting node %d: non-finite threshold %v", id, threshold)
	}
	left = NodeID(len(b.nodes))
	right = left + 1
	b.nodes = append(b.nodes,
		Node{ID: left, Left: NoNode, Right: NoNode},
		Node{ID: right, Left: NoNode, Right: NoNode},
	)
	n := &b.nodes[id]
	n.Feature = f
	n.Threshold = threshold
	n.Left = left
	n.Right = right
	return left, right, nil
}

/*
Build returns the tree grown so far. The builder can keep being used
afterwards without affecting the returned tree.
*/
func (b *Builder) Build() *Tree {
	nodes := make([]Node, len(b.nodes))
	copy(nodes, b.nodes)
	t := &Tree{nodes: nodes}
	t.annotateParents()
	return t
}

func (t *Tree) annotateParents() {
	t.parents = make([]parentLink, len(t.nodes))
	for i := range t.parents {
		t.parents[i] = parentLink{parent: NoNode}
	}
	for _, n := range t.nodes {
		if n.IsLeaf() {
			continue
		}
		t.parents[n.Left] = parentLink{n.ID, feature.Left}
		t.parents[n.Right] = parentLink{n.ID, feature.Right}
	}
}

// Root returns the ID of the root node
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return len(t.nodes)
}

/*
Node returns the node with the given ID or an error wrapping ErrUnknownNode
*/
func (t *Tree) Node(id NodeID) (Node, error) {
	if !t.has(id) {
		return Node{}, fmt.Errorf("node %d: %w", id, ErrUnknownNode)
	}
	return t.nodes[id], nil
}

/*
Parent returns the ID of the parent of the given node (NoNode for the root)
and the side of the parent the node hangs from.
*/
func (t *Tree) Parent(id NodeID) (NodeID, feature.Side) {
	if !t.has(id) {
		return NoNode, feature.Left
	}
	p := t.parents[id]
	return p.parent, p.side
}

/*
Path takes a node ID and returns, in root-to-node order, the criteria that
a sample must satisfy to reach the node. The root has an empty path.
*/
func (t *Tree) Path(id NodeID) []feature.Criterion {
	var path []feature.Criterion
	for cur := id; t.has(cur); {
		p := t.parents[cur]
		if p.parent == NoNode {
			break
		}
		path = append(path, t.nodes[p.parent].Criterion(p.side))
		cur = p.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Depth returns the number of splits on the longest root-to-leaf path
func (t *Tree) Depth() int {
	var depth int
	t.Traverse(false, func(n Node) error {
		if d := len(t.Path(n.ID)); d > depth {
			depth = d
		}
		return nil
	})
	return depth
}

// Traverse takes a bottomup boolean and an error-returning function
// that takes a node as parameter, and goes through the tree running the
// function with every traversed node.
// Traverse will call the function with a parent node before
// calling it for its children if bottomup is false, and
// call it after its children if bottomup is true.
// If the call to the function returns an error, the traversing is
// aborted and the error is returned.
func (t *Tree) Traverse(bottomup bool, f func(Node) error) error {
	if t == nil || len(t.nodes) == 0 {
		return nil
	}
	return t.traverse(t.Root(), bottomup, f)
}

func (t *Tree) traverse(id NodeID, bottomup bool, f func(Node) error) error {
	n := t.nodes[id]
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	if !n.IsLeaf() {
		if err := t.traverse(n.Left, bottomup, f); err != nil {
			return err
		}
		if err := t.traverse(n.Right, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		return f(n)
	}
	return nil
}

func (t *Tree) has(id NodeID) bool {
	return t != nil && id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) String() string {
	return t.Describe(nil)
}

/*
Describe returns a text rendering of the tree naming features after the
given metadata (which may be nil).
*/
func (t *Tree) Describe(md *feature.Metadata) string {
	if t == nil || len(t.nodes) == 0 {
		return ""
	}
	return t.subtreeString(t.Root(), md)
}

func (t *Tree) subtreeString(id NodeID, md *feature.Metadata) string {
	n := t.nodes[id]
	result := fmt.Sprintf("[%d]\n", id)
	if p := t.parents[id]; p.parent != NoNode {
		result = fmt.Sprintf("%s{ %s }\n", result, t.nodes[p.parent].Criterion(p.side).Describe(md))
	}
	if n.IsLeaf() {
		return result + " \n"
	}
	result += "|\n"
	children := []NodeID{n.Left, n.Right}
	for i, child := range children {
		for j, line := range strings.Split(t.subtreeString(child, md), "\n") {
			if len(line) == 0 {
				continue
			}
			switch {
			case j == 0:
				result = fmt.Sprintf("%s|__%s\n", result, line)
			case i == len(children)-1:
				result = fmt.Sprintf("%s   %s\n", result, line)
			default:
				result = fmt.Sprintf("%s|  %s\n", result, line)
			}
		}
	}
	return result
}
