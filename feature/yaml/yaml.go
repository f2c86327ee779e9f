/*
Package yaml provides methods to parse feature.Metadata
from YAML documents.
*/
package yaml

import (
	"fmt"
	"io/ioutil"

	"github.com/pbanos/bonsai/feature"
	yaml "gopkg.in/yaml.v2"
)

type metadata struct {
	Features []string `yaml:"features"`
	Label    *struct {
		Name string `yaml:"name"`
		Pass string `yaml:"pass"`
		Fail string `yaml:"fail"`
	} `yaml:"label"`
}

/*
ReadMetadata takes a slice of bytes with a feature description in YML and
returns the metadata parsed from it or an error.
The YML is expected to be an object containing a features property with a list
of exactly two feature names (in the order their values take on samples) and a
label property. The label can be given as a name string or as an object with
name, pass and fail properties; pass and fail default to "1" and "0".
*/
func ReadMetadata(md []byte) (*feature.Metadata, error) {
	raw := struct {
		Features []string    `yaml:"features"`
		Label    interface{} `yaml:"label"`
	}{}
	err := yaml.Unmarshal(md, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if len(raw.Features) != feature.Count {
		return nil, fmt.Errorf("metadata must declare exactly %d features, got %d", feature.Count, len(raw.Features))
	}
	var label *feature.Label
	switch l := raw.Label.(type) {
	case nil:
		return nil, fmt.Errorf("metadata has no label information")
	case string:
		label = feature.NewLabel(l, "1", "0")
	default:
		m := &metadata{}
		err = yaml.Unmarshal(md, m)
		if err != nil {
			return nil, fmt.Errorf("parsing yml label: %v", err)
		}
		pass, fail := m.Label.Pass, m.Label.Fail
		if pass == "" {
			pass = "1"
		}
		if fail == "" {
			fail = "0"
		}
		label = feature.NewLabel(m.Label.Name, pass, fail)
	}
	result := &feature.Metadata{Label: label}
	for i, name := range raw.Features {
		result.Features[i] = feature.NewContinuousFeature(name, i)
	}
	if err = result.Validate(); err != nil {
		return nil, err
	}
	return result, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and uses
ReadMetadata to parse it and return the parsed metadata or an error.
If the file indicated by the filepath cannot be opened for reading an error
will be returned.
*/
func ReadMetadataFromFile(filepath string) (*feature.Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	result, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return result, err
}

/*
WriteMetadata returns the YML document describing the given metadata
*/
func WriteMetadata(md *feature.Metadata) ([]byte, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	m := &metadata{}
	for _, f := range md.Features {
		m.Features = append(m.Features, f.Name())
	}
	m.Label = &struct {
		Name string `yaml:"name"`
		Pass string `yaml:"pass"`
		Fail string `yaml:"fail"`
	}{md.Label.Name(), md.Label.PassValue(), md.Label.FailValue()}
	return yaml.Marshal(m)
}
