package tree

import (
	"fmt"

	"github.com/pbanos/bonsai/dataset"
)

/*
MergeKind tells whether and how the branches of a split were folded into a
single leaf because they held too few samples.
*/
type MergeKind int

const (
	// NoMerge marks leaves of the trained tree and splits that are kept
	NoMerge MergeKind = iota
	// AbsorbedLeft marks splits whose undersized left branch was absorbed
	// by the right one
	AbsorbedLeft
	// AbsorbedRight marks splits whose undersized right branch was absorbed
	// by the left one
	AbsorbedRight
	// AbsorbedBoth marks splits whose branches were both undersized
	AbsorbedBoth
)

var mergeKindNames = map[MergeKind]string{
	NoMerge:       "none",
	AbsorbedLeft:  "absorbed-left",
	AbsorbedRight: "absorbed-right",
	AbsorbedBoth:  "absorbed-both",
}

func (k MergeKind) String() string {
	if name, ok := mergeKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MergeKind(%d)", int(k))
}

// MarshalText encodes the kind by its name
func (k MergeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

/*
MergePolicy holds the minimum number of training rows a branch must hold to be
shown and trusted as a decision region of its own. Branches below it are
folded, together with their sibling, into a leaf resolved with the parent's
distribution.

Materialize and Predict both consult the same policy through the same routine,
so a point always gets the prediction of the region it falls in on the
materialized tree.
*/
type MergePolicy struct {
	MinSamples int
}

/*
NewMergePolicy takes a minimum number of samples and returns a policy
enforcing it or an error wrapping ErrInvalidThreshold if it is below 1.
*/
func NewMergePolicy(minSamples int) (MergePolicy, error) {
	p := MergePolicy{minSamples}
	return p, p.Validate()
}

// Validate returns an error wrapping ErrInvalidThreshold if MinSamples < 1
func (p MergePolicy) Validate() error {
	if p.MinSamples < 1 {
		return fmt.Errorf("min samples %d: %w", p.MinSamples, ErrInvalidThreshold)
	}
	return nil
}

// Undersized returns whether a branch with the given distribution is folded
func (p MergePolicy) Undersized(d dataset.Distribution) bool {
	return d.Total() < p.MinSamples
}

/*
Verdict takes the distributions of the two branches of a split and returns
how they must be merged, NoMerge meaning the split is kept.
*/
func (p MergePolicy) Verdict(left, right dataset.Distribution) MergeKind {
	l, r := p.Undersized(left), p.Undersized(right)
	switch {
	case l && r:
		return AbsorbedBoth
	case l:
		return AbsorbedLeft
	case r:
		return AbsorbedRight
	}
	return NoMerge
}

/*
resolution is the outcome of walking the tree down to a node that acts as
a leaf under a merge policy: either a trained leaf or a split whose branches
were folded.
*/
type resolution struct {
	node         NodeID
	distribution dataset.Distribution
	merge        MergeKind
}

/*
step evaluates the node with the given ID under the policy. It returns a
resolution when the node acts as a leaf and nil when the split is kept and
the walk has to continue on one or both of its children.

When a branch is absorbed the surviving branch takes over the parent's whole
aggregate and stands in for the parent, so the resolving distribution is the
parent's own one, recomputed from the dataset, whatever the verdict.
*/
func (t *Tree) step(n Node, s *dataset.Dataset, p MergePolicy) *resolution {
	if n.IsLeaf() {
		return &resolution{n.ID, t.DistributionOf(n.ID, s), NoMerge}
	}
	kind := p.Verdict(t.DistributionOf(n.Left, s), t.DistributionOf(n.Right, s))
	if kind == NoMerge {
		return nil
	}
	return &resolution{n.ID, t.DistributionOf(n.ID, s), kind}
}

func (t *Tree) check(s *dataset.Dataset, p MergePolicy) error {
	if t == nil || len(t.nodes) == 0 {
		return ErrNilTree
	}
	if s.Empty() {
		return dataset.ErrEmptyDataset
	}
	return p.Validate()
}
