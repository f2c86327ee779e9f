package json

import (
	"encoding/json"
	"fmt"

	"github.com/pbanos/bonsai/feature"
)

const (
	lessOrEqual = "<="
	greaterThan = ">"
)

/*
Criterion is the JSON representation of a feature.Criterion, naming the
feature after the metadata it is encoded with.
*/
type Criterion struct {
	Feature   string  `json:"f"`
	Operator  string  `json:"op"`
	Threshold float64 `json:"v"`
}

/*
CriteriaEncodeDecoder encodes criteria into slices of bytes and decodes them
back using the features on its metadata.
*/
type CriteriaEncodeDecoder struct {
	md *feature.Metadata
}

/*
NewCriteriaEncodeDecoder takes the metadata to name features after and
returns a CriteriaEncodeDecoder for it.
*/
func NewCriteriaEncodeDecoder(md *feature.Metadata) *CriteriaEncodeDecoder {
	return &CriteriaEncodeDecoder{md}
}

// NewCriteria returns the JSON representations of the given criteria
func (ced *CriteriaEncodeDecoder) NewCriteria(criteria []feature.Criterion) ([]Criterion, error) {
	result := make([]Criterion, 0, len(criteria))
	for _, c := range criteria {
		if c.Feature < 0 || c.Feature >= feature.Count {
			return nil, fmt.Errorf("encoding criterion %v: unknown feature", c)
		}
		jc := Criterion{Feature: ced.md.Features[c.Feature].Name(), Operator: greaterThan, Threshold: c.Threshold}
		if c.Side == feature.Left {
			jc.Operator = lessOrEqual
		}
		result = append(result, jc)
	}
	return result, nil
}

// Encode returns the given criteria encoded as a JSON array
func (ced *CriteriaEncodeDecoder) Encode(criteria []feature.Criterion) ([]byte, error) {
	jcs, err := ced.NewCriteria(criteria)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jcs)
}

/*
Decode takes a slice of bytes with a JSON array of criteria and returns the
criteria decoded from it or an error.
*/
func (ced *CriteriaEncodeDecoder) Decode(data []byte) ([]feature.Criterion, error) {
	var jcs []Criterion
	if err := json.Unmarshal(data, &jcs); err != nil {
		return nil, err
	}
	result := make([]feature.Criterion, 0, len(jcs))
	for _, jc := range jcs {
		f := ced.md.FeatureNamed(jc.Feature)
		if f == nil {
			return nil, fmt.Errorf("decoding criterion: unknown feature %s", jc.Feature)
		}
		var side feature.Side
		switch jc.Operator {
		case lessOrEqual:
			side = feature.Left
		case greaterThan:
			side = feature.Right
		default:
			return nil, fmt.Errorf("decoding criterion on %s: unknown operator %q", jc.Feature, jc.Operator)
		}
		result = append(result, feature.NewCriterion(f.Index(), jc.Threshold, side))
	}
	return result, nil
}
