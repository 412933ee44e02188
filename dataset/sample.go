package dataset

import (
	"context"
	"fmt"

	"github.com/sproutml/sprout/feature"
)

type sample struct {
	featureValues map[string]interface{}
}

/*
NewSample takes a map of feature string names to values and returns a
sample. Feature values must be string for categorical features and
float64 for numerical ones; a missing observation is represented by
the absence of the feature name in the map or by a nil value.
*/
func NewSample(featureValues map[string]interface{}) feature.Sample {
	return &sample{featureValues}
}

func (s *sample) ValueFor(ctx context.Context, featureName string) (interface{}, error) {
	return s.featureValues[featureName], nil
}

func (s *sample) String() string {
	return fmt.Sprintf("[%v]", s.featureValues)
}
