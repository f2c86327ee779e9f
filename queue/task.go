package queue

import (
	"fmt"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/tree"
)

// Task represents a leaf of a growing tree
// that may be developed into a split.
type Task struct {
	// The ID of the leaf to be developed
	Node tree.NodeID
	// The dataset of training data with samples
	// satisfying the constraints on the node
	// and its ancestors.
	Dataset *dataset.Dataset
	// The number of splits between the root
	// and the node.
	Depth int
}

func (t *Task) String() string {
	return fmt.Sprintf("{Task %d depth:%d samples:%d}", t.Node, t.Depth, t.Dataset.Count())
}
