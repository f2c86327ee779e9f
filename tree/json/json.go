/*
Package json encodes trees as JSON documents: effective trees in the shape
tree renderers expect and trained trees as flat lists of nodes.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pbanos/bonsai/feature"
	"github.com/pbanos/bonsai/tree"
)

/*
Node is the JSON representation of an effective tree node. Branches carry
their two children, resolved leaves their details and prediction.
*/
type Node struct {
	Name       string  `json:"name"`
	Samples    int     `json:"samples"`
	Details    string  `json:"details,omitempty"`
	Prediction *bool   `json:"prediction,omitempty"`
	Merge      string  `json:"merge,omitempty"`
	Children   []*Node `json:"children,omitempty"`
}

/*
NewNode takes an effective tree node and the metadata to name features and
outcomes after (which may be nil) and returns the JSON representation of the
subtree under it.
*/
func NewNode(en *tree.EffectiveNode, md *feature.Metadata) *Node {
	if en == nil {
		return nil
	}
	n := &Node{Name: en.Name(md), Samples: en.SampleCount}
	if en.IsLeaf() {
		passed := en.Passed
		n.Prediction = &passed
		n.Details = en.Details()
		if en.Merge != tree.NoMerge {
			n.Merge = en.Merge.String()
		}
		return n
	}
	n.Children = []*Node{NewNode(en.Left, md), NewNode(en.Right, md)}
	return n
}

/*
RawNode is the JSON representation of a node of a trained tree. Left and
Right hold the ids of the children of splits.
*/
type RawNode struct {
	ID        tree.NodeID  `json:"id"`
	Parent    *tree.NodeID `json:"parent,omitempty"`
	Feature   string       `json:"feature,omitempty"`
	Threshold *float64     `json:"threshold,omitempty"`
	Left      *tree.NodeID `json:"left,omitempty"`
	Right     *tree.NodeID `json:"right,omitempty"`
}

/*
NewRawNodes takes a trained tree and the metadata to name features after
(which may be nil) and returns the JSON representation of its nodes in
depth-first order starting at the root.
*/
func NewRawNodes(t *tree.Tree, md *feature.Metadata) ([]*RawNode, error) {
	if t == nil {
		return nil, tree.ErrNilTree
	}
	nodes := make([]*RawNode, 0, t.Len())
	err := t.Traverse(false, func(n tree.Node) error {
		rn := &RawNode{ID: n.ID}
		if p, _ := t.Parent(n.ID); p != tree.NoNode {
			rn.Parent = &p
		}
		if !n.IsLeaf() {
			threshold, left, right := n.Threshold, n.Left, n.Right
			rn.Feature = featureName(n.Feature, md)
			rn.Threshold = &threshold
			rn.Left = &left
			rn.Right = &right
		}
		nodes = append(nodes, rn)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return nodes, nil
}

func featureName(index int, md *feature.Metadata) string {
	if md != nil && md.Features[index] != nil {
		return md.Features[index].Name()
	}
	return fmt.Sprintf("x%d", index)
}

/*
WriteEffective takes an io.Writer, an effective tree and the metadata to name
features and outcomes after and writes the JSON representation of the tree
onto the writer, or returns an error.
*/
func WriteEffective(w io.Writer, en *tree.EffectiveNode, md *feature.Metadata) error {
	return encode(w, NewNode(en, md))
}

/*
WriteTree takes an io.Writer, a trained tree and the metadata to name
features after and writes the JSON representation of its nodes onto the
writer, or returns an error.
*/
func WriteTree(w io.Writer, t *tree.Tree, md *feature.Metadata) error {
	nodes, err := NewRawNodes(t, md)
	if err != nil {
		return err
	}
	return encode(w, nodes)
}

func encode(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
