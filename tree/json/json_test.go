package json

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/sproutml/sprout/feature"
	"github.com/sproutml/sprout/tree"
)

func testTree() *tree.Tree {
	return &tree.Tree{
		FeatureNames:            []string{"color", "size"},
		ClassNames:              []string{"healthy", "sick"},
		CategoricalFeatureNames: []string{"color"},
		NumericalFeatureNames:   []string{"size"},
		Root: &tree.Node{
			SplitFeature: "color",
			Samples:      4,
			Distribution: []int{2, 2},
			Label:        "healthy",
			Childs: []*tree.Node{
				{
					Criterion:    feature.NewValueCriterion("color", "red"),
					SplitFeature: "size",
					Samples:      2,
					Distribution: []int{1, 1},
					Label:        "healthy",
					Childs: []*tree.Node{
						{
							Criterion:    feature.NewThresholdCriterion("size", 3, true),
							Samples:      1,
							Distribution: []int{1, 0},
							Label:        "healthy",
						},
						{
							Criterion:    feature.NewThresholdCriterion("size", 3, false),
							Samples:      1,
							Distribution: []int{0, 1},
							Label:        "sick",
						},
					},
				},
				{
					Criterion:    feature.NewValueCriterion("color", "blue"),
					Samples:      2,
					Distribution: []int{2, 0},
					Label:        "healthy",
				},
			},
		},
	}
}

func TestWriteAndReadJSONTree(t *testing.T) {
	original := testTree()
	var buf bytes.Buffer
	err := WriteJSONTree(original, &buf)
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ReadJSONTree(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(original, parsed) {
		t.Errorf("expected parsed tree to equal the serialized one, got %v instead of %v", parsed, original)
	}
}

func TestWriteJSONTreeUngrown(t *testing.T) {
	var buf bytes.Buffer
	err := WriteJSONTree(&tree.Tree{}, &buf)
	if err != tree.ErrNotGrown {
		t.Error("expected ErrNotGrown, got:", err)
	}
}

func TestReadJSONTreeWithoutRoot(t *testing.T) {
	_, err := ReadJSONTree(strings.NewReader(`{"classNames":["yes"]}`))
	if err == nil {
		t.Error("expected an error when parsing a tree without a root node")
	}
}

func TestReadJSONTreeInvalidCriterion(t *testing.T) {
	doc := `{"root":{"label":"yes","childs":[{"criterion":{"feature":"size"},"label":"yes"}]}}`
	_, err := ReadJSONTree(strings.NewReader(doc))
	if err == nil {
		t.Error("expected an error when parsing a criterion with neither value nor threshold")
	}
}
