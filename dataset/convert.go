package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pbanos/bonsai/feature"
)

/*
ParseFloat takes a feature value as read from an input source (a string, a
number or a byte slice) and returns it as a finite float64 or an error.
*/
func ParseFloat(v interface{}) (float64, error) {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case []byte:
		return ParseFloat(string(t))
	case string:
		var err error
		f, err = strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0.0, fmt.Errorf("parsing %q as number: %v", t, err)
		}
	case nil:
		return 0.0, fmt.Errorf("missing value")
	default:
		return 0.0, fmt.Errorf("unexpected value %v of type %T", v, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0.0, fmt.Errorf("value %v: %w", f, ErrNonFinite)
	}
	return f, nil
}

/*
ParseLabel takes a label value as read from an input source and returns
whether it means pass according to the given label, or an error.
Booleans are taken as is and numbers must be 0 or 1.
*/
func ParseLabel(v interface{}, l *feature.Label) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case []byte:
		return l.Parse(string(t))
	case string:
		return l.Parse(t)
	case int, int32, int64, float32, float64:
		return l.Parse(fmt.Sprintf("%v", t))
	case nil:
		return false, fmt.Errorf("missing value for label %s", l.Name())
	}
	return false, fmt.Errorf("unexpected value %v of type %T for label %s", v, v, l.Name())
}

/*
ParseRow takes the metadata of the rows and the values of both features and
the label as read from an input source, and returns the row they make up or
an error if any value is not valid.
*/
func ParseRow(md *feature.Metadata, x0, x1, label interface{}) (Row, error) {
	var r Row
	for i, v := range []interface{}{x0, x1} {
		f, err := ParseFloat(v)
		if err != nil {
			return r, fmt.Errorf("feature %s: %w", md.Features[i].Name(), err)
		}
		r.Point[i] = f
	}
	passed, err := ParseLabel(label, md.Label)
	if err != nil {
		return r, err
	}
	r.Passed = passed
	return r, nil
}
