package tree

import (
	"github.com/pbanos/bonsai/dataset"
)

/*
DistributionOf takes a node ID and a dataset and returns the number of failing
and passing rows of the dataset that reach the node, replaying the split
decisions of its ancestors from the root. The root's distribution is the label
counts of the whole dataset. Unknown nodes are reached by no rows.
*/
func (t *Tree) DistributionOf(id NodeID, s *dataset.Dataset) dataset.Distribution {
	if !t.has(id) {
		return dataset.Distribution{}
	}
	return s.Distribution(t.Path(id)...)
}
