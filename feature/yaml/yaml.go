/*
Package yaml provides methods to parse dataset metadata from YAML
documents: the available features, the label to predict and the
special-cases constraints between features.
*/
package yaml

import (
	"fmt"
	"io/ioutil"
	"sort"

	"github.com/sproutml/sprout/feature"
	yaml "gopkg.in/yaml.v2"
)

/*
Metadata describes a dataset: the features available on it, the name
of the label to predict and the special-cases registry mapping a
prerequisite feature name to the dependent feature names that may
only be split on after it.
*/
type Metadata struct {
	Features     []feature.Feature
	Label        string
	SpecialCases map[string][]string
}

/*
CategoricalFeatureNames returns the names of the categorical features
of the metadata, in feature order.
*/
func (md *Metadata) CategoricalFeatureNames() []string {
	var names []string
	for _, f := range md.Features {
		if _, ok := f.(*feature.CategoricalFeature); ok {
			names = append(names, f.Name())
		}
	}
	return names
}

/*
NumericalFeatureNames returns the names of the numerical features of
the metadata, in feature order.
*/
func (md *Metadata) NumericalFeatureNames() []string {
	var names []string
	for _, f := range md.Features {
		if _, ok := f.(*feature.NumericalFeature); ok {
			names = append(names, f.Name())
		}
	}
	return names
}

/*
ReadMetadata takes a slice of bytes with a dataset specification in
YML and returns the metadata parsed from it or an error.

The YML is expected to be an object with a features property, a label
property and an optional special_cases property. The value for
features should be an object with a property for each feature with
its name and either a string value of 'numerical' for numerical
features or a list of valid values for categorical features. The
value for special_cases should be an object mapping a prerequisite
feature name to a dependent feature name or list of dependent feature
names. Features are returned sorted by name, so the order in which a
metadata document declares them carries no meaning.
*/
func ReadMetadata(md []byte) (*Metadata, error) {
	metadata := struct {
		Features     map[string]interface{}
		Label        string
		SpecialCases map[string]interface{} `yaml:"special_cases"`
	}{}
	err := yaml.Unmarshal(md, &metadata)
	if err != nil {
		return nil, fmt.Errorf("parsing yml metadata: %v", err)
	}
	if metadata.Features == nil {
		return nil, fmt.Errorf("metadata file has no feature information")
	}
	if metadata.Label == "" {
		return nil, fmt.Errorf("metadata file has no label information")
	}
	names := make([]string, 0, len(metadata.Features))
	for fn := range metadata.Features {
		names = append(names, fn)
	}
	sort.Strings(names)
	features := []feature.Feature{}
	for _, fn := range names {
		switch values := metadata.Features[fn].(type) {
		case string:
			if values != "numerical" {
				return nil, fmt.Errorf("invalid feature declaration %q for feature %s", values, fn)
			}
			features = append(features, feature.NewNumericalFeature(fn))
		case []interface{}:
			stringVs := []string{}
			for _, v := range values {
				stringVs = append(stringVs, fmt.Sprintf("%v", v))
			}
			features = append(features, feature.NewCategoricalFeature(fn, stringVs))
		case []string:
			features = append(features, feature.NewCategoricalFeature(fn, values))
		default:
			return nil, fmt.Errorf("invalid feature declaration of type %T for feature %s", values, fn)
		}
	}
	specialCases, err := parseSpecialCases(metadata.SpecialCases, features)
	if err != nil {
		return nil, err
	}
	return &Metadata{Features: features, Label: metadata.Label, SpecialCases: specialCases}, nil
}

/*
ReadMetadataFromFile takes a filepath string, reads its contents and
uses ReadMetadata to parse it and return the parsed metadata or an
error. If the file indicated by the filepath cannot be opened for
reading an error will be returned.
*/
func ReadMetadataFromFile(filepath string) (*Metadata, error) {
	md, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading metadata yml file %s: %v", filepath, err)
	}
	metadata, err := ReadMetadata(md)
	if err != nil {
		err = fmt.Errorf("parsing metadata yml file %s: %v", filepath, err)
	}
	return metadata, err
}

func parseSpecialCases(declared map[string]interface{}, features []feature.Feature) (map[string][]string, error) {
	if declared == nil {
		return nil, nil
	}
	known := make(map[string]bool, len(features))
	for _, f := range features {
		known[f.Name()] = true
	}
	specialCases := make(map[string][]string, len(declared))
	for prerequisite, value := range declared {
		if !known[prerequisite] {
			return nil, fmt.Errorf("special case prerequisite %s is not a declared feature", prerequisite)
		}
		var dependents []string
		switch value := value.(type) {
		case string:
			dependents = []string{value}
		case []interface{}:
			for _, v := range value {
				dependents = append(dependents, fmt.Sprintf("%v", v))
			}
		default:
			return nil, fmt.Errorf("invalid special case declaration of type %T for feature %s", value, prerequisite)
		}
		for _, dependent := range dependents {
			if !known[dependent] {
				return nil, fmt.Errorf("special case dependent %s is not a declared feature", dependent)
			}
		}
		specialCases[prerequisite] = dependents
	}
	return specialCases, nil
}
