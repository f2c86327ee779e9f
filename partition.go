package bonsai

import (
	"fmt"

	"github.com/pbanos/bonsai/dataset"
	"github.com/pbanos/bonsai/feature"
)

/*
Partition represents a binary partition of a dataset according to a threshold
on a feature, with the decrease in impurity it achieves on the label.
*/
type Partition struct {
	Feature          int
	Threshold        float64
	Left, Right      *dataset.Dataset
	impurityDecrease float64
}

// ImpurityDecrease returns how much the partition reduces the impurity of
// the partitioned dataset, weighting each side by its number of samples
func (p *Partition) ImpurityDecrease() float64 {
	return p.impurityDecrease
}

func (p *Partition) String() string {
	return fmt.Sprintf("{x%d <= %g: %d/%d samples, decrease %.4f}", p.Feature, p.Threshold, p.Left.Count(), p.Right.Count(), p.impurityDecrease)
}

/*
bestPartition takes a dataset and an impurity measure and returns the
partition that achieves the largest impurity decrease over all features,
or nil if the dataset cannot be partitioned. Features are scanned in index
order and ties keep the first partition found.
*/
func bestPartition(s *dataset.Dataset, impurity Impurity) (*Partition, error) {
	var result *Partition
	for f := 0; f < feature.Count; f++ {
		part, err := newPartition(s, f, impurity)
		if err != nil {
			return nil, err
		}
		if part != nil && (result == nil || part.impurityDecrease > result.impurityDecrease) {
			result = part
		}
	}
	return result, nil
}

/*
newPartition returns the partition of the dataset in 2 parts on the given
feature that generates the largest impurity decrease, trying as thresholds
the midpoints between every pair of consecutive distinct values. It returns
nil if the dataset takes less than 2 distinct values for the feature.
*/
func newPartition(s *dataset.Dataset, f int, impurity Impurity) (*Partition, error) {
	values := s.Values(f)
	if len(values) < 2 {
		return nil, nil
	}
	total := s.Distribution()
	parentImpurity, err := impurity.Of(total)
	if err != nil {
		return nil, err
	}
	n := float64(total.Total())
	var result *Partition
	for i, v := range values[1:] {
		threshold := (values[i] + v) / 2.0
		criterion := feature.NewCriterion(f, threshold, feature.Left)
		left := s.Distribution(criterion)
		right := s.Distribution(criterion.Negate())
		leftImpurity, err := impurity.Of(left)
		if err != nil {
			return nil, err
		}
		rightImpurity, err := impurity.Of(right)
		if err != nil {
			return nil, err
		}
		decrease := parentImpurity - (float64(left.Total())*leftImpurity+float64(right.Total())*rightImpurity)/n
		if result == nil || decrease > result.impurityDecrease {
			result = &Partition{Feature: f, Threshold: threshold, impurityDecrease: decrease}
		}
	}
	criterion := feature.NewCriterion(f, result.Threshold, feature.Left)
	result.Left = s.SubsetWith(criterion)
	result.Right = s.SubsetWith(criterion.Negate())
	return result, nil
}
