package tree

import (
	"context"
	"strings"
	"testing"

	"github.com/sproutml/sprout/feature"
)

type mapSample map[string]interface{}

func (ms mapSample) ValueFor(ctx context.Context, featureName string) (interface{}, error) {
	return ms[featureName], nil
}

func testTree() *Tree {
	return &Tree{
		FeatureNames:            []string{"color", "size"},
		ClassNames:              []string{"no", "yes"},
		CategoricalFeatureNames: []string{"color"},
		NumericalFeatureNames:   []string{"size"},
		Root: &Node{
			SplitFeature: "color",
			Samples:      4,
			Distribution: []int{2, 2},
			Label:        "no",
			Childs: []*Node{
				{
					Criterion:    feature.NewValueCriterion("color", "red"),
					SplitFeature: "size",
					Samples:      2,
					Distribution: []int{1, 1},
					Label:        "no",
					Childs: []*Node{
						{
							Criterion:    feature.NewThresholdCriterion("size", 3, true),
							Samples:      1,
							Distribution: []int{0, 1},
							Label:        "yes",
						},
						{
							Criterion:    feature.NewThresholdCriterion("size", 3, false),
							Samples:      1,
							Distribution: []int{1, 0},
							Label:        "no",
						},
					},
				},
				{
					Criterion:    feature.NewValueCriterion("color", "blue"),
					Samples:      2,
					Distribution: []int{1, 1},
					Label:        "no",
				},
			},
		},
	}
}

func TestClassify(t *testing.T) {
	tr := testTree()
	ctx := context.Background()
	for _, tc := range []struct {
		sample mapSample
		label  string
	}{
		{mapSample{"color": "red", "size": 1.0}, "yes"},
		{mapSample{"color": "red", "size": 7.0}, "no"},
		{mapSample{"color": "blue"}, "no"},
	} {
		label, err := tr.Classify(ctx, tc.sample)
		if err != nil {
			t.Fatal(err)
		}
		if label != tc.label {
			t.Errorf("expected sample %v to be classified as %s, got: %s", tc.sample, tc.label, label)
		}
	}
}

func TestClassifyUnroutableSample(t *testing.T) {
	tr := testTree()
	_, err := tr.Classify(context.Background(), mapSample{"color": "green"})
	if err != ErrCannotClassifySample {
		t.Error("expected ErrCannotClassifySample, got:", err)
	}
}

func TestClassifyUngrownTree(t *testing.T) {
	_, err := (&Tree{}).Classify(context.Background(), mapSample{})
	if err != ErrNotGrown {
		t.Error("expected ErrNotGrown, got:", err)
	}
}

func TestTest(t *testing.T) {
	tr := testTree()
	samples := []feature.Sample{
		mapSample{"color": "red", "size": 1.0},
		mapSample{"color": "red", "size": 7.0},
		mapSample{"color": "green"},
		mapSample{"color": "blue"},
	}
	labels := []string{"yes", "yes", "no", "no"}
	successRate, errCount, err := tr.Test(context.Background(), &sliceDataset{samples}, labels)
	if err != nil {
		t.Fatal(err)
	}
	// 2 correct, 1 wrong, 1 unclassifiable out of 4
	if successRate != 0.5 {
		t.Error("expected success rate 0.5, got:", successRate)
	}
	if errCount != 1 {
		t.Error("expected 1 unclassifiable sample, got:", errCount)
	}
}

type sliceDataset struct {
	samples []feature.Sample
}

func (ds *sliceDataset) Samples(ctx context.Context) ([]feature.Sample, error) {
	return ds.samples, nil
}

func (ds *sliceDataset) Count(ctx context.Context) (int, error) {
	return len(ds.samples), nil
}

func TestTraverse(t *testing.T) {
	tr := testTree()
	var topdown []string
	err := tr.Traverse(false, func(n *Node) error {
		topdown = append(topdown, n.FeatureValue())
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"", "red", "< 3", ">= 3", "blue"}
	if len(topdown) != len(expected) {
		t.Fatal("expected 5 traversed nodes, got:", len(topdown))
	}
	for i, fv := range expected {
		if topdown[i] != fv {
			t.Errorf("expected node %d of the traversal to be %q, got: %q", i, fv, topdown[i])
		}
	}
	var bottomup []string
	tr.Traverse(true, func(n *Node) error {
		bottomup = append(bottomup, n.FeatureValue())
		return nil
	})
	if bottomup[len(bottomup)-1] != "" {
		t.Error("expected the root to be traversed last bottom-up, got:", bottomup[len(bottomup)-1])
	}
	if err := (&Tree{}).Traverse(false, func(*Node) error { return nil }); err != ErrNotGrown {
		t.Error("expected ErrNotGrown, got:", err)
	}
}

func TestString(t *testing.T) {
	s := testTree().String()
	for _, expected := range []string{"[color]", "[size]", "< 3", ">= 3", "red", "blue"} {
		if !strings.Contains(s, expected) {
			t.Errorf("expected tree string to contain %q, got:\n%s", expected, s)
		}
	}
}
