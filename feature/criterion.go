package feature

import (
	"fmt"
	"strings"
)

/*
Sample is an interface for something that can satisfy a Criterion.

Its Value method returns the value of the sample for the feature with
the given index.
*/
type Sample interface {
	Value(index int) float64
}

/*
Side indicates which branch of a split a criterion selects
*/
type Side bool

const (
	// Left selects values lower than or equal to the threshold
	Left Side = true
	// Right selects values greater than the threshold
	Right Side = false
)

/*
Criterion represents a constraint on a continuous feature imposed by a
binary split: either the feature's value is at most the threshold (Left)
or above it (Right).
*/
type Criterion struct {
	Feature   int
	Threshold float64
	Side      Side
}

/*
NewCriterion takes a feature index, a threshold and a side and returns the
criterion a sample must satisfy to follow that side of the split.
*/
func NewCriterion(feature int, threshold float64, side Side) Criterion {
	return Criterion{feature, threshold, side}
}

/*
SatisfiedBy receives a sample and returns a boolean indicating if the sample
satisfies the criterion.
*/
func (c Criterion) SatisfiedBy(s Sample) bool {
	v := s.Value(c.Feature)
	if c.Side == Left {
		return v <= c.Threshold
	}
	return v > c.Threshold
}

/*
Negate returns the criterion for the other side of the same split
*/
func (c Criterion) Negate() Criterion {
	return Criterion{c.Feature, c.Threshold, !c.Side}
}

func (c Criterion) String() string {
	if c.Side == Left {
		return fmt.Sprintf("x%d <= %g", c.Feature, c.Threshold)
	}
	return fmt.Sprintf("x%d > %g", c.Feature, c.Threshold)
}

/*
Describe returns the criterion as text using the feature names in the
given metadata
*/
func (c Criterion) Describe(md *Metadata) string {
	name := fmt.Sprintf("x%d", c.Feature)
	if md != nil && c.Feature >= 0 && c.Feature < Count && md.Features[c.Feature] != nil {
		name = md.Features[c.Feature].Name()
	}
	if c.Side == Left {
		return fmt.Sprintf("%s <= %.1f", name, c.Threshold)
	}
	return fmt.Sprintf("%s > %.1f", name, c.Threshold)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
