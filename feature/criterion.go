package feature

import (
	"context"
	"fmt"
	"strconv"
)

/*
Criterion represents a constraint on a feature, the condition carried
by an edge between a node and one of its children.

Its SatisfiedBy method takes a sample and returns a boolean indicating
if the sample satisfies the feature criterion.

Its Feature method returns the name of the feature on which the
criterion is applied.

Its String method returns the condition as text, the way it is
displayed on tree edges: a categorical value such as "red", or a
threshold comparison such as "< 5" or ">= 5".
*/
type Criterion interface {
	fmt.Stringer
	Feature() string
	SatisfiedBy(ctx context.Context, sample Sample) (bool, error)
}

/*
Sample is an interface for something that can satisfy a Criterion.

Its ValueFor method returns the value corresponding to the feature
name passed as parameter, nil when the sample defines no value for
the feature.
*/
type Sample interface {
	ValueFor(ctx context.Context, featureName string) (interface{}, error)
}

/*
ValueCriterion represents a constraint on a categorical feature:
a value it must take.

Its Value method returns the value to which the feature is constrained
as a string.
*/
type ValueCriterion interface {
	Criterion
	Value() string
}

/*
ThresholdCriterion represents a constraint on a numerical feature:
one of the two sides of a binary split at a threshold.

Its Threshold method returns the threshold of the split. Its Below
method returns true when the criterion admits values strictly below
the threshold and false when it admits values at or above it.
*/
type ThresholdCriterion interface {
	Criterion
	Threshold() float64
	Below() bool
}

type valueCriterion struct {
	feature string
	value   string
}

type thresholdCriterion struct {
	feature   string
	threshold float64
	below     bool
}

/*
NewValueCriterion takes a categorical feature name and a value string
and returns a ValueCriterion satisfied by samples whose value for the
feature equals the given value.
*/
func NewValueCriterion(featureName string, value string) ValueCriterion {
	return &valueCriterion{featureName, value}
}

/*
NewThresholdCriterion takes a numerical feature name, a threshold and
a below boolean and returns a ThresholdCriterion satisfied by samples
whose value for the feature is strictly below the threshold when below
is true, or at or above it when below is false.
*/
func NewThresholdCriterion(featureName string, threshold float64, below bool) ThresholdCriterion {
	return &thresholdCriterion{featureName, threshold, below}
}

/*
Feature returns the name of the feature to which the constraint applies.
*/
func (vc *valueCriterion) Feature() string {
	return vc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean
indicating if the sample satisfies the criterion. Specifically, it
returns false if the sample does not define a value for the feature,
true if the value, being a string, equals the value on the criterion;
and false otherwise.
*/
func (vc *valueCriterion) SatisfiedBy(ctx context.Context, sample Sample) (bool, error) {
	val, err := sample.ValueFor(ctx, vc.feature)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}
	stringVal, ok := val.(string)
	if !ok {
		return false, nil
	}
	return vc.value == stringVal, nil
}

func (vc *valueCriterion) Value() string {
	return vc.value
}

func (vc *valueCriterion) String() string {
	return vc.value
}

/*
Feature returns the name of the feature to which the constraint applies.
*/
func (tc *thresholdCriterion) Feature() string {
	return tc.feature
}

/*
SatisfiedBy receives a sample as parameter and returns a boolean
indicating if the sample satisfies the criterion. Specifically, it
returns false if the sample does not define a value for the feature,
true if the value, being a float64, falls on the criterion's side of
the threshold; and false otherwise.
*/
func (tc *thresholdCriterion) SatisfiedBy(ctx context.Context, sample Sample) (bool, error) {
	val, err := sample.ValueFor(ctx, tc.feature)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}
	floatVal, ok := val.(float64)
	if !ok {
		return false, nil
	}
	if tc.below {
		return floatVal < tc.threshold, nil
	}
	return floatVal >= tc.threshold, nil
}

func (tc *thresholdCriterion) Threshold() float64 {
	return tc.threshold
}

func (tc *thresholdCriterion) Below() bool {
	return tc.below
}

func (tc *thresholdCriterion) String() string {
	if tc.below {
		return fmt.Sprintf("< %s", strconv.FormatFloat(tc.threshold, 'g', -1, 64))
	}
	return fmt.Sprintf(">= %s", strconv.FormatFloat(tc.threshold, 'g', -1, 64))
}
