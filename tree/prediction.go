package tree

import (
	"fmt"

	"github.com/pbanos/bonsai/dataset"
)

/*
Prediction represents a prediction made by a decision Tree
*/
type Prediction struct {
	// The outcome of the majority of the training rows behind the
	// prediction, ties resolving to not passed
	Passed bool
	// The pass rate of those rows, as a percentage
	Confidence float64
	// The training rows behind the prediction
	Distribution dataset.Distribution
	// The node of the trained tree that resolved the prediction
	Node NodeID
	// How that node came to act as a leaf
	Merge MergeKind
}

func newPrediction(r *resolution) *Prediction {
	return &Prediction{
		Passed:       r.distribution.Passed(),
		Confidence:   r.distribution.PassRate(),
		Distribution: r.distribution,
		Node:         r.node,
		Merge:        r.merge,
	}
}

/*
Weight returns the weight of the prediction: an int equal to the number of
training rows from which the prediction was made
*/
func (p *Prediction) Weight() int {
	return p.Distribution.Total()
}

func (p *Prediction) String() string {
	return fmt.Sprintf("{passed: %t, confidence: %.1f%%}", p.Passed, p.Confidence)
}

/*
Predict takes a dataset, a minimum number of samples and a point and returns
the prediction for the point, walking the tree one node at a time under the
same merge policy Materialize applies, without materializing the effective
tree: kept splits route the point by its value for the split feature, and
splits with undersized branches resolve the prediction with their own
distribution.

It returns an error if the tree is nil, the dataset empty, minSamples lower
than 1 or if the point has non-finite values.
*/
func (t *Tree) Predict(s *dataset.Dataset, minSamples int, point dataset.Point) (*Prediction, error) {
	p := MergePolicy{minSamples}
	if err := t.check(s, p); err != nil {
		return nil, fmt.Errorf("predicting sample: %w", err)
	}
	if err := point.Validate(); err != nil {
		return nil, fmt.Errorf("predicting sample: %v: %w", err, ErrMalformedQuery)
	}
	n := t.nodes[t.Root()]
	for {
		if r := t.step(n, s, p); r != nil {
			return newPrediction(r), nil
		}
		n = t.nodes[n.Child(n.Route(point))]
	}
}

/*
Test takes a training dataset, a minimum number of samples and a test
dataset and returns the rate of rows of the test dataset whose outcome the
tree predicts correctly, or an error if predictions cannot be made.
*/
func (t *Tree) Test(training *dataset.Dataset, minSamples int, test *dataset.Dataset) (float64, error) {
	if test.Empty() {
		return 0.0, fmt.Errorf("testing tree: %w", dataset.ErrEmptyDataset)
	}
	var hits int
	for _, r := range test.Rows() {
		p, err := t.Predict(training, minSamples, r.Point)
		if err != nil {
			return 0.0, err
		}
		if p.Passed == r.Passed {
			hits++
		}
	}
	return float64(hits) / float64(test.Count()), nil
}
