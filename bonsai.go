/*
Package bonsai grows shallow binary decision trees that predict a binary
label from two continuous features.

Trees are grown CART-style: every node is split on the threshold of the
feature that most decreases the impurity of the label, until the maximum
depth is reached, nodes become too small or pure, or the pruning strategy
rejects the best partition.
*/
package bonsai

import (
	"context"
	"fmt"
	"strings"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/queue"
	"github.com/pbanos/bonsai/tree"
	"go.uber.org/zap"
)

// Impurity names a measure of the impurity of the label on a dataset
type Impurity string

const (
	// Gini is the Gini impurity
	Gini Impurity = "gini"
	// Entropy is the entropy in bits
	Entropy Impurity = "entropy"
)

/*
ParseImpurity takes the name of an impurity measure and returns it or an
error if it is unknown.
*/
func ParseImpurity(name string) (Impurity, error) {
	i := Impurity(strings.ToLower(strings.TrimSpace(name)))
	switch i {
	case Gini, Entropy:
		return i, nil
	}
	return "", fmt.Errorf("unknown impurity %q, expected %q or %q", name, Gini, Entropy)
}

// Of returns the impurity of the given distribution
func (i Impurity) Of(d dataset.Distribution) (float64, error) {
	switch i {
	case Gini:
		return d.Gini(), nil
	case Entropy:
		return d.Entropy(), nil
	}
	return 0.0, fmt.Errorf("unknown impurity %q", string(i))
}

/*
Config holds the parameters to grow a tree.
*/
type Config struct {
	// MaxDepth is the maximum number of splits from the root to any leaf
	MaxDepth int
	// MinSplitSamples is the minimum number of samples a node must hold
	// to be split
	MinSplitSamples int
	// MinLeafSamples is the minimum number of samples each side of a split
	// must hold
	MinLeafSamples int
	// Impurity is the measure whose decrease selects the splits
	Impurity Impurity
	// MinImpurityDecrease is the decrease in impurity a split must exceed
	MinImpurityDecrease float64
	// Logger receives debug information on the growing; nil disables it
	Logger *zap.Logger
}

// DefaultConfig returns the configuration for trees of depth 3 split
// on the Gini impurity
func DefaultConfig() Config {
	return Config{
		MaxDepth:            3,
		MinSplitSamples:     2,
		MinLeafSamples:      1,
		Impurity:            Gini,
		MinImpurityDecrease: 0.01,
	}
}

// Validate returns an error describing the first invalid parameter, if any
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.MinSplitSamples < 2 {
		return fmt.Errorf("min split samples must be at least 2, got %d", c.MinSplitSamples)
	}
	if c.MinLeafSamples < 1 {
		return fmt.Errorf("min leaf samples must be at least 1, got %d", c.MinLeafSamples)
	}
	if c.MinImpurityDecrease < 0 {
		return fmt.Errorf("min impurity decrease must not be negative, got %v", c.MinImpurityDecrease)
	}
	_, err := ParseImpurity(string(c.Impurity))
	return err
}

// PruningStrategy returns the pruning strategy the configuration defines
func (c Config) PruningStrategy() *PruningStrategy {
	return &PruningStrategy{
		Pruner: AnyPruner(
			MinimumLeafPruner(c.MinLeafSamples),
			FixedImpurityDecreasePruner(c.MinImpurityDecrease),
		),
		MaxDepth:        c.MaxDepth,
		MinSplitSamples: c.MinSplitSamples,
	}
}

/*
TrainingError is the error returned when a tree cannot be grown. No tree,
not even a partial one, accompanies it.
*/
type TrainingError struct {
	Err error
}

func (te *TrainingError) Error() string {
	return fmt.Sprintf("training failed: %v", te.Err)
}

func (te *TrainingError) Unwrap() error {
	return te.Err
}

/*
Grow takes a context, a dataset and a configuration and grows a tree
that predicts the label of the dataset's rows from their features.
Nodes are developed breadth-first through a task queue: the root is
seeded as the first task and every developed node pushes a task for each
of its children.

Grow returns a *TrainingError if the configuration is invalid, the dataset
empty or the context times out or is cancelled before the tree is grown.
*/
func Grow(ctx context.Context, s *dataset.Dataset, c Config) (*tree.Tree, error) {
	if err := c.Validate(); err != nil {
		return nil, &TrainingError{err}
	}
	if s.Empty() {
		return nil, &TrainingError{dataset.ErrEmptyDataset}
	}
	logger := c.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ps := c.PruningStrategy()
	b := tree.NewBuilder()
	q := queue.New()
	q.Push(&queue.Task{Node: b.Root(), Dataset: s})
	for task := q.Pull(); task != nil; task = q.Pull() {
		if err := ctx.Err(); err != nil {
			return nil, &TrainingError{err}
		}
		tasks, err := BranchOut(task, b, ps, c.Impurity, logger)
		if err != nil {
			return nil, &TrainingError{err}
		}
		for _, st := range tasks {
			q.Push(st)
		}
	}
	t := b.Build()
	logger.Debug("tree grown", zap.Int("nodes", t.Len()), zap.Int("depth", t.Depth()), zap.Int("samples", s.Count()))
	return t, nil
}

/*
BranchOut takes a task, the builder of the tree being grown, a pruning
strategy and an impurity measure, and develops the node in the task using
the task's dataset. It returns the tasks to develop the resulting children
nodes, none if the node stays a leaf, or an error.
*/
func BranchOut(task *queue.Task, b *tree.Builder, ps *PruningStrategy, impurity Impurity, logger *zap.Logger) ([]*queue.Task, error) {
	log := logger.With(zap.Int("node", int(task.Node)), zap.Int("depth", task.Depth), zap.Int("samples", task.Dataset.Count()))
	if task.Depth >= ps.MaxDepth || task.Dataset.Count() < ps.MinSplitSamples {
		log.Debug("leaf: depth or sample limit")
		return nil, nil
	}
	sImpurity, err := impurity.Of(task.Dataset.Distribution())
	if err != nil {
		return nil, err
	}
	if sImpurity <= ps.MinimumImpurity {
		log.Debug("leaf: pure node", zap.Float64("impurity", sImpurity))
		return nil, nil
	}
	part, err := bestPartition(task.Dataset, impurity)
	if err != nil {
		return nil, err
	}
	if part == nil {
		log.Debug("leaf: no partition available")
		return nil, nil
	}
	if ps.Pruner != nil && ps.Pruner.Prune(task.Dataset, part) {
		log.Debug("leaf: partition pruned", zap.Stringer("partition", part))
		return nil, nil
	}
	left, right, err := b.Split(task.Node, part.Feature, part.Threshold)
	if err != nil {
		return nil, err
	}
	log.Debug("node split", zap.Stringer("partition", part))
	return []*queue.Task{
		{Node: left, Dataset: part.Left, Depth: task.Depth + 1},
		{Node: right, Dataset: part.Right, Depth: task.Depth + 1},
	}, nil
}
