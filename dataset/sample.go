package dataset

import (
	"fmt"
	"math"

	"github.com/pbanos/bonsai/feature"
)

/*
Point holds the values of the input features of a sample, in feature order.
*/
type Point [feature.Count]float64

/*
Row represents a training sample: its feature values and whether it passed.
*/
type Row struct {
	Point
	Passed bool
}

/*
NewRow takes the two feature values and the label of a sample and returns
a row for them.
*/
func NewRow(x0, x1 float64, passed bool) Row {
	return Row{Point{x0, x1}, passed}
}

// Value returns the value of the point for the feature with the given index
func (p Point) Value(index int) float64 {
	return p[index]
}

/*
Validate returns an error wrapping ErrNonFinite if any of the point's
values is NaN or infinite.
*/
func (p Point) Validate() error {
	for i, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("feature %d has value %v: %w", i, v, ErrNonFinite)
		}
	}
	return nil
}

func (r Row) String() string {
	return fmt.Sprintf("[%g %g %t]", r.Point[0], r.Point[1], r.Passed)
}
