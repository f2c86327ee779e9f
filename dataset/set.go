package dataset

import (
	"math"
	"sort"

	"github.com/pbanos/bonsai/feature"
)

/*
Dataset represents an immutable collection of rows.

Its Distribution method counts the rows satisfying a chain of criteria
without building the subset, applying the criteria on every original row.
Its SubsetWith method does build the subset, replicating the matching rows
to make further calculations on it cheaper.
*/
type Dataset struct {
	rows []Row
}

/*
New takes a slice of rows and returns a dataset built with a copy of them.
*/
func New(rows []Row) *Dataset {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	return &Dataset{cp}
}

/*
NewValidated works like New but returns an error if any row has a non-finite
feature value.
*/
func NewValidated(rows []Row) (*Dataset, error) {
	for _, r := range rows {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	return New(rows), nil
}

// Count returns the number of rows in the dataset
func (s *Dataset) Count() int {
	if s == nil {
		return 0
	}
	return len(s.rows)
}

// Empty returns whether the dataset has no rows
func (s *Dataset) Empty() bool {
	return s.Count() == 0
}

/*
Rows returns the rows of the dataset. The slice must not be modified.
*/
func (s *Dataset) Rows() []Row {
	if s == nil {
		return nil
	}
	return s.rows
}

/*
Distribution takes a sequence of criteria and returns the number of failing
and passing rows that satisfy all of them. With no criteria it returns the
label counts of the whole dataset.
*/
func (s *Dataset) Distribution(criteria ...feature.Criterion) Distribution {
	var d Distribution
	s.iterate(criteria, func(r Row) {
		d.Count(r.Passed)
	})
	return d
}

/*
SubsetWith takes a sequence of criteria and returns a new dataset with the
rows that satisfy all of them.
*/
func (s *Dataset) SubsetWith(criteria ...feature.Criterion) *Dataset {
	var rows []Row
	s.iterate(criteria, func(r Row) {
		rows = append(rows, r)
	})
	return &Dataset{rows}
}

/*
Values takes a feature index and returns the sorted distinct values the rows
take for it.
*/
func (s *Dataset) Values(f int) []float64 {
	values := make([]float64, 0, s.Count())
	for _, r := range s.Rows() {
		values = append(values, r.Value(f))
	}
	sort.Float64s(values)
	result := values[:0]
	for i, v := range values {
		if i == 0 || v != result[len(result)-1] {
			result = append(result, v)
		}
	}
	return result
}

/*
Gini returns the Gini impurity of the label on the dataset
*/
func (s *Dataset) Gini() float64 {
	return s.Distribution().Gini()
}

/*
Entropy returns the entropy of the label on the dataset: a measure of the
disinformation we have on the outcome of rows that belong to it.
*/
func (s *Dataset) Entropy() float64 {
	return s.Distribution().Entropy()
}

// Gini returns the Gini impurity of the distribution, 0 when empty
func (d Distribution) Gini() float64 {
	total := float64(d.Total())
	if total == 0 {
		return 0.0
	}
	p, f := float64(d.Pass)/total, float64(d.Fail)/total
	return 1 - (p*p + f*f)
}

// Entropy returns the entropy in bits of the distribution, 0 when empty
func (d Distribution) Entropy() float64 {
	total := float64(d.Total())
	var result float64
	for _, c := range []int{d.Fail, d.Pass} {
		if c == 0 {
			continue
		}
		prob := float64(c) / total
		result -= prob * math.Log2(prob)
	}
	return result
}

func (s *Dataset) iterate(criteria []feature.Criterion, f func(Row)) {
	for _, r := range s.Rows() {
		ok := true
		for _, c := range criteria {
			if !c.SatisfiedBy(r) {
				ok = false
				break
			}
		}
		if ok {
			f(r)
		}
	}
}
