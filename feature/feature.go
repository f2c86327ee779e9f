package feature

import "fmt"

// Count is the number of input features every sample carries.
const Count = 2

/*
ContinuousFeature represents a property that can be observed and that can take
a numeric value. Its index is the position of its value in a sample.
*/
type ContinuousFeature struct {
	name  string
	index int
}

/*
Label represents the binary property a tree predicts. PassValue and FailValue
are the textual values that denote each outcome on the input sources.
*/
type Label struct {
	name      string
	passValue string
	failValue string
}

/*
Metadata describes the features available on the data a tree is grown from:
the two continuous input features (in sample order) and the label.
*/
type Metadata struct {
	Features [Count]*ContinuousFeature
	Label    *Label
}

/*
NewContinuousFeature takes a name string and an index and returns a continuous
feature with the given name whose value is found at that index of samples.
*/
func NewContinuousFeature(name string, index int) *ContinuousFeature {
	return &ContinuousFeature{name, index}
}

/*
NewLabel takes a name, the value meaning pass and the value meaning fail and
returns a label with them.
*/
func NewLabel(name, passValue, failValue string) *Label {
	return &Label{name, passValue, failValue}
}

/*
NewMetadata takes the names of the two input features and the label and
returns metadata with the label values defaulting to "1" and "0".
*/
func NewMetadata(feature0, feature1, label string) *Metadata {
	return &Metadata{
		Features: [Count]*ContinuousFeature{
			NewContinuousFeature(feature0, 0),
			NewContinuousFeature(feature1, 1),
		},
		Label: NewLabel(label, "1", "0"),
	}
}

/*
Name returns a string with the name of the feature
*/
func (cf *ContinuousFeature) Name() string {
	return cf.name
}

/*
Index returns the position of the feature's value on samples
*/
func (cf *ContinuousFeature) Index() int {
	return cf.index
}

func (cf *ContinuousFeature) String() string {
	return cf.name
}

// Name returns a string with the name of the label
func (l *Label) Name() string {
	return l.name
}

// PassValue returns the textual value meaning pass
func (l *Label) PassValue() string {
	return l.passValue
}

// FailValue returns the textual value meaning fail
func (l *Label) FailValue() string {
	return l.failValue
}

/*
Parse takes a textual label value and returns whether it means pass. Besides
the label's own values, "1" and "true" (case insensitive) mean pass and "0" and
"false" mean fail. Any other value returns an error.
*/
func (l *Label) Parse(value string) (bool, error) {
	switch value {
	case l.passValue:
		return true, nil
	case l.failValue:
		return false, nil
	}
	switch normalize(value) {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, fmt.Errorf("label %s got unknown value %q", l.name, value)
}

/*
Format returns the textual value for the given outcome
*/
func (l *Label) Format(passed bool) string {
	if passed {
		return l.passValue
	}
	return l.failValue
}

func (l *Label) String() string {
	return l.name
}

/*
Validate returns an error if the metadata is not usable: features or label
missing, unnamed or repeated names, or an ambiguous label.
*/
func (md *Metadata) Validate() error {
	if md == nil {
		return fmt.Errorf("no metadata")
	}
	seen := make(map[string]bool)
	for i, f := range md.Features {
		if f == nil || f.name == "" {
			return fmt.Errorf("feature %d is not defined", i)
		}
		if f.index != i {
			return fmt.Errorf("feature %s has index %d, expected %d", f.name, f.index, i)
		}
		if seen[f.name] {
			return fmt.Errorf("feature %s is defined twice", f.name)
		}
		seen[f.name] = true
	}
	if md.Label == nil || md.Label.name == "" {
		return fmt.Errorf("label is not defined")
	}
	if seen[md.Label.name] {
		return fmt.Errorf("label %s is also defined as a feature", md.Label.name)
	}
	if md.Label.passValue == md.Label.failValue {
		return fmt.Errorf("label %s uses %q for both pass and fail", md.Label.name, md.Label.passValue)
	}
	return nil
}

/*
FeatureNamed returns the feature with the given name or nil
*/
func (md *Metadata) FeatureNamed(name string) *ContinuousFeature {
	for _, f := range md.Features {
		if f != nil && f.name == name {
			return f
		}
	}
	return nil
}
