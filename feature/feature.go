package feature

import "fmt"

/*
Feature represents a property that can be observed on samples
of a dataset.
*/
type Feature interface {
	Name() string
	Valid(interface{}) (bool, error)
}

/*
CategoricalFeature represents a property whose observed values are
discrete symbols. It may optionally declare the set of values it
admits; when no values are declared any string value is admitted.
*/
type CategoricalFeature struct {
	name            string
	availableValues []string
}

/*
NumericalFeature represents a property whose observed values are
real numbers.
*/
type NumericalFeature struct {
	name string
}

/*
NewCategoricalFeature takes a name string and a slice of available
value strings and returns a categorical feature with the given name
and available values. A nil or empty slice of available values makes
the feature admit any string value.
*/
func NewCategoricalFeature(name string, availableValues []string) *CategoricalFeature {
	return &CategoricalFeature{name, availableValues}
}

/*
NewNumericalFeature takes a name string and returns a numerical
feature with the given name.
*/
func NewNumericalFeature(name string) *NumericalFeature {
	return &NumericalFeature{name}
}

/*
Name returns a string with the name of the feature
*/
func (cf *CategoricalFeature) Name() string {
	return cf.name
}

/*
Valid receives an interface value and returns a boolean and an error.
A nil value is always valid: it represents a missing observation.
A string value is valid if the feature declares no available values
or the value is among the declared ones. Any other value makes the
method return false and an error describing the reason.
*/
func (cf *CategoricalFeature) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	vs, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("categorical feature %s expects string value, got %T value", cf.Name(), value)
	}
	if len(cf.availableValues) == 0 {
		return true, nil
	}
	for _, av := range cf.availableValues {
		if av == vs {
			return true, nil
		}
	}
	return false, fmt.Errorf("categorical feature %s got unknown value %s", cf.Name(), vs)
}

/*
AvailableValues returns a string slice with the values declared for
the feature, nil when the feature admits any string value.
*/
func (cf *CategoricalFeature) AvailableValues() []string {
	return cf.availableValues
}

func (cf *CategoricalFeature) String() string {
	return cf.name
}

/*
Name returns a string with the name of the feature
*/
func (nf *NumericalFeature) Name() string {
	return nf.name
}

/*
Valid receives an interface value and returns a boolean and an error.
A nil value is always valid: it represents a missing observation.
When the value is a float64 it returns true and nil, otherwise it
returns false and an error describing the reason.
*/
func (nf *NumericalFeature) Valid(value interface{}) (bool, error) {
	if value == nil {
		return true, nil
	}
	_, ok := value.(float64)
	if !ok {
		return false, fmt.Errorf("numerical feature %s expects float64 value, got %T value", nf.Name(), value)
	}
	return true, nil
}

func (nf *NumericalFeature) String() string {
	return nf.name
}
