package dot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sproutml/sprout/feature"
	"github.com/sproutml/sprout/tree"
)

func testTree() *tree.Tree {
	return &tree.Tree{
		FeatureNames:            []string{"color"},
		ClassNames:              []string{"no", "yes"},
		CategoricalFeatureNames: []string{"color"},
		Root: &tree.Node{
			SplitFeature: "color",
			Samples:      4,
			Distribution: []int{2, 2},
			Label:        "no",
			Childs: []*tree.Node{
				{
					Criterion:    feature.NewValueCriterion("color", "red"),
					Samples:      2,
					Distribution: []int{0, 2},
					Label:        "yes",
				},
				{
					Criterion:    feature.NewValueCriterion("color", "blue"),
					Samples:      2,
					Distribution: []int{2, 0},
					Label:        "no",
				},
			},
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testTree(), Options{Rounded: true, ShowSamples: true, ShowDistribution: true, ShowLabel: true})
	if err != nil {
		t.Fatal(err)
	}
	expected := strings.Join([]string{
		`digraph "decision tree" {`,
		"\tnode [shape=box style=rounded];",
		"\tnode1 [label=\"color\\nsamples = 4\\ndistribution: [2 2]\\nlabel = no\"];",
		"\tnode2 [label=\"samples = 2\\ndistribution: [0 2]\\nlabel = yes\"];",
		"\tnode1 -> node2 [label=\"red\"];",
		"\tnode3 [label=\"samples = 2\\ndistribution: [2 0]\\nlabel = no\"];",
		"\tnode1 -> node3 [label=\"blue\"];",
		"}",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("expected dot document:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestWriteDefaultOptions(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testTree(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	doc := buf.String()
	if !strings.Contains(doc, "\tnode [shape=box];\n") {
		t.Error("expected unrounded box nodes, got:\n", doc)
	}
	if strings.Contains(doc, "samples =") || strings.Contains(doc, "distribution:") || strings.Contains(doc, "label = ") {
		t.Error("expected node details to be hidden by default, got:\n", doc)
	}
	if !strings.Contains(doc, "node1 [label=\"color\"];") {
		t.Error("expected the split feature on the root node, got:\n", doc)
	}
}

func TestWriteUngrownTree(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, &tree.Tree{}, Options{})
	if err != tree.ErrNotGrown {
		t.Error("expected ErrNotGrown, got:", err)
	}
}
