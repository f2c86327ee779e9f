package tree

import (
	"fmt"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
)

/*
EffectiveNode is a node of the tree as presented after undersized branches
have been folded. It is either a branch, with both Left and Right set, or a
resolved leaf, with neither. It holds no reference to the trained tree it
comes from.
*/
type EffectiveNode struct {
	// Number of training rows reaching the node
	SampleCount int
	// Branch fields: the split feature index and threshold. Rows with a
	// value lower than or equal to the threshold go left.
	Feature     int
	Threshold   float64
	Left, Right *EffectiveNode
	// Resolved leaf fields
	Passed       bool
	PassRate     float64
	Distribution dataset.Distribution
	// How the leaf came from folding a split, NoMerge for trained leaves
	Merge MergeKind
}

// IsLeaf returns whether the node is a resolved leaf
func (en *EffectiveNode) IsLeaf() bool {
	return en.Left == nil && en.Right == nil
}

/*
Materialize takes a dataset and a minimum number of samples and returns the
effective tree: the tree with every split whose branches do not both hold at
least minSamples rows of the dataset folded into a leaf resolved with the
split's own distribution. Splits are evaluated with the same routine Predict
uses.

It returns an error if the tree is nil, the dataset empty or minSamples
lower than 1. The result is built anew on every call.
*/
func (t *Tree) Materialize(s *dataset.Dataset, minSamples int) (*EffectiveNode, error) {
	p := MergePolicy{minSamples}
	if err := t.check(s, p); err != nil {
		return nil, fmt.Errorf("materializing tree: %w", err)
	}
	return t.materialize(t.nodes[t.Root()], s, p), nil
}

func (t *Tree) materialize(n Node, s *dataset.Dataset, p MergePolicy) *EffectiveNode {
	if r := t.step(n, s, p); r != nil {
		return newResolvedLeaf(r)
	}
	left := t.materialize(t.nodes[n.Left], s, p)
	right := t.materialize(t.nodes[n.Right], s, p)
	return &EffectiveNode{
		SampleCount: left.SampleCount + right.SampleCount,
		Feature:     n.Feature,
		Threshold:   n.Threshold,
		Left:        left,
		Right:       right,
	}
}

func newResolvedLeaf(r *resolution) *EffectiveNode {
	return &EffectiveNode{
		SampleCount:  r.distribution.Total(),
		Passed:       r.distribution.Passed(),
		PassRate:     r.distribution.PassRate(),
		Distribution: r.distribution,
		Merge:        r.merge,
	}
}

/*
Locate takes a sample and returns the resolved leaf whose region contains it
*/
func (en *EffectiveNode) Locate(s feature.Sample) *EffectiveNode {
	cur := en
	for cur != nil && !cur.IsLeaf() {
		if s.Value(cur.Feature) <= cur.Threshold {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur
}

// Leaves returns the resolved leaves of the subtree from left to right
func (en *EffectiveNode) Leaves() []*EffectiveNode {
	if en == nil {
		return nil
	}
	if en.IsLeaf() {
		return []*EffectiveNode{en}
	}
	return append(en.Left.Leaves(), en.Right.Leaves()...)
}

// Depth returns the number of branches on the longest root-to-leaf path
func (en *EffectiveNode) Depth() int {
	if en == nil || en.IsLeaf() {
		return 0
	}
	l, r := en.Left.Depth(), en.Right.Depth()
	if r > l {
		l = r
	}
	return l + 1
}

/*
Name returns the caption of the node: its split condition on branches and
its outcome on leaves, naming features and outcomes after the given metadata
(which may be nil).
*/
func (en *EffectiveNode) Name(md *feature.Metadata) string {
	if en.IsLeaf() {
		if md != nil && md.Label != nil {
			return md.Label.Format(en.Passed)
		}
		if en.Passed {
			return "passed"
		}
		return "not passed"
	}
	return feature.NewCriterion(en.Feature, en.Threshold, feature.Left).Describe(md)
}

// Details returns the pass rate of leaves as text and "" for branches
func (en *EffectiveNode) Details() string {
	if !en.IsLeaf() {
		return ""
	}
	return fmt.Sprintf("pass rate: %.1f%%", en.PassRate)
}

func (en *EffectiveNode) String() string {
	return en.Describe(nil)
}

/*
Describe returns a text rendering of the subtree naming features and
outcomes after the given metadata (which may be nil).
*/
func (en *EffectiveNode) Describe(md *feature.Metadata) string {
	if en == nil {
		return ""
	}
	var b strings.Builder
	en.describe(&b, md, "", "")
	return b.String()
}

func (en *EffectiveNode) describe(b *strings.Builder, md *feature.Metadata, prefix, edge string) {
	b.WriteString(prefix)
	b.WriteString(edge)
	b.WriteString(en.Name(md))
	if en.IsLeaf() {
		fmt.Fprintf(b, " { %s, samples: %d", en.Details(), en.SampleCount)
		if en.Merge != NoMerge {
			fmt.Fprintf(b, ", merged: %s", en.Merge)
		}
		b.WriteString(" }\n")
		return
	}
	fmt.Fprintf(b, " { samples: %d }\n", en.SampleCount)
	childPrefix := prefix
	if edge != "" {
		childPrefix += "   "
	}
	en.Left.describe(b, md, childPrefix, "|__yes: ")
	en.Right.describe(b, md, childPrefix, "|__no: ")
}
