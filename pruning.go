package bonsai

import (
	"github.com/pbanos/bonsai/dataset"
)

// PruningStrategy holds the configuration
// for when a node must not be partitioned
// further or at all.
type PruningStrategy struct {
	// Pruner is applied to the best partition
	// found for a node's dataset to determine
	// if the result is worth incorporating
	// into the tree.
	Pruner
	// MinimumImpurity is the maximum value of
	// impurity for a node that prevents it from
	// being branched out at all. In other words,
	// nodes whose training dataset has an
	// impurity equal or below this will not be
	// developed.
	MinimumImpurity float64
	// MaxDepth is the depth at which nodes are
	// no longer developed.
	MaxDepth int
	// MinSplitSamples is the minimum number of
	// samples a node must hold to be developed.
	MinSplitSamples int
}

/*
Pruner is an interface wrapping the Prune method, that can be used
to decide whether a partition is good enough to become part of a tree
or if it must be pruned instead.

The Prune method takes a dataset and a partition of it and returns a
boolean: true to indicate the partition must be pruned, false to
allow its adding to the tree and further development.
*/
type Pruner interface {
	Prune(s *dataset.Dataset, p *Partition) bool
}

/*
PrunerFunc wraps a function with the Prune method signature to implement
the Pruner interface
*/
type PrunerFunc func(s *dataset.Dataset, p *Partition) bool

/*
Prune takes a dataset and a partition and invokes the PrunerFunc with
those parameters to return its boolean result.
*/
func (pf PrunerFunc) Prune(s *dataset.Dataset, p *Partition) bool {
	return pf(s, p)
}

/*
FixedImpurityDecreasePruner takes a minimumDecrease float64 value
and returns a Pruner whose Prune method returns whether the minimumDecrease
is greater or equal to the received partition's impurity decrease
*/
func FixedImpurityDecreasePruner(minimumDecrease float64) Pruner {
	return PrunerFunc(func(s *dataset.Dataset, p *Partition) bool {
		return minimumDecrease >= p.impurityDecrease
	})
}

/*
MinimumLeafPruner takes a minimum number of samples and returns a Pruner
whose Prune method returns true for partitions leaving fewer samples than
that on either side.
*/
func MinimumLeafPruner(minSamples int) Pruner {
	return PrunerFunc(func(s *dataset.Dataset, p *Partition) bool {
		return p.Left.Count() < minSamples || p.Right.Count() < minSamples
	})
}

/*
AnyPruner takes a list of pruners and returns a Pruner whose Prune method
returns true if any of them prunes the partition.
*/
func AnyPruner(pruners ...Pruner) Pruner {
	return PrunerFunc(func(s *dataset.Dataset, p *Partition) bool {
		for _, pr := range pruners {
			if pr.Prune(s, p) {
				return true
			}
		}
		return false
	})
}

/*
NoPruner returns a Pruner whose Prune method always returns false, that is,
never prunes.
*/
func NoPruner() Pruner {
	return PrunerFunc(func(s *dataset.Dataset, p *Partition) bool {
		return false
	})
}
