package yaml

import (
	"reflect"
	"strings"
	"testing"

	"github.com/sproutml/sprout/feature"
)

func TestReadMetadata(t *testing.T) {
	doc := strings.Join([]string{
		"label: diagnosis",
		"features:",
		"  size: numerical",
		"  color: [red, blue]",
		"  shape:",
		"    - round",
		"    - square",
		"special_cases:",
		"  color: shape",
	}, "\n")
	md, err := ReadMetadata([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if md.Label != "diagnosis" {
		t.Errorf("expected label diagnosis, got %s", md.Label)
	}
	expectedNames := []string{"color", "shape", "size"}
	for i, f := range md.Features {
		if f.Name() != expectedNames[i] {
			t.Errorf("expected feature %s at position %d, got %s", expectedNames[i], i, f.Name())
		}
	}
	if !reflect.DeepEqual(md.CategoricalFeatureNames(), []string{"color", "shape"}) {
		t.Errorf("expected categorical features [color shape], got %v", md.CategoricalFeatureNames())
	}
	if !reflect.DeepEqual(md.NumericalFeatureNames(), []string{"size"}) {
		t.Errorf("expected numerical features [size], got %v", md.NumericalFeatureNames())
	}
	color, ok := md.Features[0].(*feature.CategoricalFeature)
	if !ok {
		t.Fatalf("expected a categorical feature, got %v", md.Features[0])
	}
	if !reflect.DeepEqual(color.AvailableValues(), []string{"red", "blue"}) {
		t.Errorf("expected values [red blue] for feature color, got %v", color.AvailableValues())
	}
	expectedSpecialCases := map[string][]string{"color": {"shape"}}
	if !reflect.DeepEqual(md.SpecialCases, expectedSpecialCases) {
		t.Errorf("expected special cases %v, got %v", expectedSpecialCases, md.SpecialCases)
	}
}

func TestReadMetadataSpecialCaseList(t *testing.T) {
	doc := strings.Join([]string{
		"label: diagnosis",
		"features:",
		"  color: [red, blue]",
		"  shape: [round, square]",
		"  texture: [smooth, rough]",
		"special_cases:",
		"  color: [shape, texture]",
	}, "\n")
	md, err := ReadMetadata([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	expected := map[string][]string{"color": {"shape", "texture"}}
	if !reflect.DeepEqual(md.SpecialCases, expected) {
		t.Errorf("expected special cases %v, got %v", expected, md.SpecialCases)
	}
}

func TestReadMetadataErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			"no label",
			"features:\n  color: [red, blue]\n",
		},
		{
			"no features",
			"label: diagnosis\n",
		},
		{
			"invalid feature declaration",
			"label: diagnosis\nfeatures:\n  size: continuous\n",
		},
		{
			"undeclared special case prerequisite",
			"label: diagnosis\nfeatures:\n  color: [red, blue]\nspecial_cases:\n  shape: color\n",
		},
		{
			"undeclared special case dependent",
			"label: diagnosis\nfeatures:\n  color: [red, blue]\nspecial_cases:\n  color: shape\n",
		},
		{
			"invalid yml",
			"label: [\n",
		},
	}
	for _, tc := range testCases {
		_, err := ReadMetadata([]byte(tc.doc))
		if err == nil {
			t.Errorf("expected an error parsing metadata with %s", tc.name)
		}
	}
}
