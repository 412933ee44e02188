package feature

import (
	"context"
	"testing"
)

type mapSample map[string]interface{}

func (ms mapSample) ValueFor(ctx context.Context, featureName string) (interface{}, error) {
	return ms[featureName], nil
}

func TestValueCriterion(t *testing.T) {
	ctx := context.Background()
	c := NewValueCriterion("color", "red")
	if c.Feature() != "color" || c.Value() != "red" {
		t.Fatal("expected criterion on color with value red, got:", c.Feature(), c.Value())
	}
	if c.String() != "red" {
		t.Error(`expected condition text "red", got:`, c.String())
	}
	for _, tc := range []struct {
		sample    mapSample
		satisfied bool
	}{
		{mapSample{"color": "red"}, true},
		{mapSample{"color": "blue"}, false},
		{mapSample{}, false},
		{mapSample{"color": 1.0}, false},
	} {
		ok, err := c.SatisfiedBy(ctx, tc.sample)
		if err != nil {
			t.Fatal(err)
		}
		if ok != tc.satisfied {
			t.Errorf("expected SatisfiedBy(%v) to be %v", tc.sample, tc.satisfied)
		}
	}
}

func TestThresholdCriterion(t *testing.T) {
	ctx := context.Background()
	below := NewThresholdCriterion("size", 5, true)
	atOrAbove := NewThresholdCriterion("size", 5, false)
	if below.String() != "< 5" {
		t.Error(`expected condition text "< 5", got:`, below.String())
	}
	if atOrAbove.String() != ">= 5" {
		t.Error(`expected condition text ">= 5", got:`, atOrAbove.String())
	}
	for _, tc := range []struct {
		criterion Criterion
		sample    mapSample
		satisfied bool
	}{
		{below, mapSample{"size": 4.9}, true},
		{below, mapSample{"size": 5.0}, false},
		{atOrAbove, mapSample{"size": 5.0}, true},
		{atOrAbove, mapSample{"size": 4.9}, false},
		{below, mapSample{}, false},
		{atOrAbove, mapSample{}, false},
		{below, mapSample{"size": "tall"}, false},
	} {
		ok, err := tc.criterion.SatisfiedBy(ctx, tc.sample)
		if err != nil {
			t.Fatal(err)
		}
		if ok != tc.satisfied {
			t.Errorf("expected %v SatisfiedBy(%v) to be %v", tc.criterion, tc.sample, tc.satisfied)
		}
	}
}

func TestFeatureValid(t *testing.T) {
	cf := NewCategoricalFeature("color", []string{"red", "blue"})
	if ok, _ := cf.Valid("red"); !ok {
		t.Error("expected red to be valid for color")
	}
	if ok, _ := cf.Valid("green"); ok {
		t.Error("expected green to be invalid for color")
	}
	if ok, _ := cf.Valid(nil); !ok {
		t.Error("expected a missing value to be valid for color")
	}
	if ok, _ := cf.Valid(1.0); ok {
		t.Error("expected a float value to be invalid for color")
	}
	open := NewCategoricalFeature("shape", nil)
	if ok, _ := open.Valid("round"); !ok {
		t.Error("expected any string to be valid for a feature without declared values")
	}
	nf := NewNumericalFeature("size")
	if ok, _ := nf.Valid(4.2); !ok {
		t.Error("expected a float value to be valid for size")
	}
	if ok, _ := nf.Valid("tall"); ok {
		t.Error("expected a string value to be invalid for size")
	}
}
