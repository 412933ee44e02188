/*
Package json provides methods to serialize grown trees as JSON and
parse them back, so that a tree grown by one process can be rendered
or used to classify samples by another.
*/
package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sproutml/sprout/feature"
	"github.com/sproutml/sprout/tree"
)

type jsonTree struct {
	FeatureNames            []string  `json:"featureNames"`
	ClassNames              []string  `json:"classNames"`
	CategoricalFeatureNames []string  `json:"categoricalFeatureNames"`
	NumericalFeatureNames   []string  `json:"numericalFeatureNames"`
	Root                    *jsonNode `json:"root"`
}

type jsonNode struct {
	SplitFeature string         `json:"splitFeature,omitempty"`
	Criterion    *jsonCriterion `json:"criterion,omitempty"`
	Samples      int            `json:"samples"`
	Distribution []int          `json:"distribution"`
	Label        string         `json:"label"`
	Childs       []*jsonNode    `json:"childs,omitempty"`
}

type jsonCriterion struct {
	Feature   string   `json:"feature"`
	Value     *string  `json:"value,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
	Below     *bool    `json:"below,omitempty"`
}

/*
WriteJSONTree takes a pointer to a tree.Tree and an io.Writer and
serializes the given tree as JSON onto the io.Writer. A tree is
serialized as a JSON object with the tree metadata (feature names,
sorted class names and the categorical/numerical partition) and a
root field holding the recursively nested nodes. An error is
returned if the tree has not been grown or cannot be written onto
the io.Writer.
*/
func WriteJSONTree(t *tree.Tree, w io.Writer) error {
	if t == nil || t.Root == nil {
		return tree.ErrNotGrown
	}
	jt := &jsonTree{
		FeatureNames:            t.FeatureNames,
		ClassNames:              t.ClassNames,
		CategoricalFeatureNames: t.CategoricalFeatureNames,
		NumericalFeatureNames:   t.NumericalFeatureNames,
		Root:                    marshalNode(t.Root),
	}
	enc := json.NewEncoder(w)
	return enc.Encode(jt)
}

/*
ReadJSONTree takes an io.Reader with a tree serialized by
WriteJSONTree and returns the parsed tree or an error.
*/
func ReadJSONTree(r io.Reader) (*tree.Tree, error) {
	dec := json.NewDecoder(r)
	jt := &jsonTree{}
	err := dec.Decode(jt)
	if err != nil {
		return nil, fmt.Errorf("parsing json tree: %v", err)
	}
	if jt.Root == nil {
		return nil, fmt.Errorf("parsing json tree: no root node available")
	}
	root, err := unmarshalNode(jt.Root)
	if err != nil {
		return nil, fmt.Errorf("parsing json tree: %v", err)
	}
	return &tree.Tree{
		FeatureNames:            jt.FeatureNames,
		ClassNames:              jt.ClassNames,
		CategoricalFeatureNames: jt.CategoricalFeatureNames,
		NumericalFeatureNames:   jt.NumericalFeatureNames,
		Root:                    root,
	}, nil
}

func marshalNode(n *tree.Node) *jsonNode {
	jn := &jsonNode{
		SplitFeature: n.SplitFeature,
		Criterion:    marshalCriterion(n.Criterion),
		Samples:      n.Samples,
		Distribution: n.Distribution,
		Label:        n.Label,
	}
	for _, child := range n.Childs {
		jn.Childs = append(jn.Childs, marshalNode(child))
	}
	return jn
}

func marshalCriterion(c feature.Criterion) *jsonCriterion {
	switch c := c.(type) {
	case nil:
		return nil
	case feature.ValueCriterion:
		value := c.Value()
		return &jsonCriterion{Feature: c.Feature(), Value: &value}
	case feature.ThresholdCriterion:
		threshold := c.Threshold()
		below := c.Below()
		return &jsonCriterion{Feature: c.Feature(), Threshold: &threshold, Below: &below}
	}
	return nil
}

func unmarshalNode(jn *jsonNode) (*tree.Node, error) {
	criterion, err := unmarshalCriterion(jn.Criterion)
	if err != nil {
		return nil, err
	}
	n := &tree.Node{
		SplitFeature: jn.SplitFeature,
		Criterion:    criterion,
		Samples:      jn.Samples,
		Distribution: jn.Distribution,
		Label:        jn.Label,
	}
	for _, jc := range jn.Childs {
		child, err := unmarshalNode(jc)
		if err != nil {
			return nil, err
		}
		n.Childs = append(n.Childs, child)
	}
	return n, nil
}

func unmarshalCriterion(jc *jsonCriterion) (feature.Criterion, error) {
	if jc == nil {
		return nil, nil
	}
	if jc.Value != nil {
		return feature.NewValueCriterion(jc.Feature, *jc.Value), nil
	}
	if jc.Threshold != nil && jc.Below != nil {
		return feature.NewThresholdCriterion(jc.Feature, *jc.Threshold, *jc.Below), nil
	}
	return nil, fmt.Errorf("criterion on feature %s has neither value nor threshold", jc.Feature)
}
