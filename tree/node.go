package tree

import (
	"github.com/pbanos/bonsai/feature"
)

/*
NodeID identifies a node within its tree
*/
type NodeID int

// NoNode is the NodeID used where there is no node, like the root's parent
const NoNode NodeID = -1

/*
Node is a node of the tree. It is either a split, with two children, or a
leaf, with none.
*/
type Node struct {
	// An ID to identify the node
	ID NodeID
	// The index of the feature whose value selects the child to follow.
	// Only meaningful on splits.
	Feature int
	// Samples whose feature value is lower than or equal to the threshold
	// follow the left child, the rest follow the right one.
	Threshold float64
	// The IDs of the nodes directly under this node, NoNode on leaves
	Left, Right NodeID
}

// IsLeaf returns whether the node has no children
func (n *Node) IsLeaf() bool {
	return n.Left == NoNode && n.Right == NoNode
}

/*
Criterion returns the criterion a sample must satisfy on this split to follow
the given side.
*/
func (n *Node) Criterion(side feature.Side) feature.Criterion {
	return feature.NewCriterion(n.Feature, n.Threshold, side)
}

/*
Child returns the ID of the child on the given side
*/
func (n *Node) Child(side feature.Side) NodeID {
	if side == feature.Left {
		return n.Left
	}
	return n.Right
}

/*
Route returns the side a sample with the given value for the split feature
follows
*/
func (n *Node) Route(s feature.Sample) feature.Side {
	return feature.Side(n.Criterion(feature.Left).SatisfiedBy(s))
}
