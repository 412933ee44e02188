package tree

import (
	"context"
	"fmt"
	"strings"

	"github.com/sproutml/sprout/dataset"
	"github.com/sproutml/sprout/feature"
)

// Tree represents a classification decision tree. It holds the
// metadata recorded when the tree was grown (the feature catalog and
// the sorted class names fixing the positional meaning of every node
// distribution) and exclusively owns its root node.
type Tree struct {
	// The names of all the features the tree was grown with.
	FeatureNames []string
	// The distinct class labels observed when growing the tree,
	// sorted into a deterministic total order.
	ClassNames []string
	// The partition of FeatureNames into categorical and numerical
	// features.
	CategoricalFeatureNames []string
	NumericalFeatureNames   []string
	// The root node of the tree, nil until the tree has been grown.
	Root *Node
}

// ClassificationError represents an error related with classifications
type ClassificationError string

/*
ErrNotGrown is the error returned when classifying or traversing a
tree whose root has not been built yet.
*/
const ErrNotGrown = ClassificationError("tree has not been grown")

/*
ErrCannotClassifySample is the error returned by the Classify method
of a tree when the classification cannot be made because the sample
satisfies no subtree criterion at some node, as opposed to cases
where values for a feature cannot be obtained for example.
*/
const ErrCannotClassifySample = ClassificationError("no class available for this kind of sample")

func (ce ClassificationError) Error() string {
	return string(ce)
}

// Classify takes a sample and returns the class label the tree
// assigns to it: the label of the node the sample is routed to by
// the edge criteria, starting at the root. It returns ErrNotGrown
// if the tree has no root and ErrCannotClassifySample if at some
// node with children the sample satisfies no child criterion.
func (t *Tree) Classify(ctx context.Context, s feature.Sample) (string, error) {
	if t == nil || t.Root == nil {
		return "", ErrNotGrown
	}
	n := t.Root
	for len(n.Childs) > 0 {
		var selected *Node
		for _, child := range n.Childs {
			if child.Criterion == nil {
				continue
			}
			ok, err := child.Criterion.SatisfiedBy(ctx, s)
			if err != nil {
				return "", err
			}
			if ok {
				selected = child
				break
			}
		}
		if selected == nil {
			return "", ErrCannotClassifySample
		}
		n = selected
	}
	return n.Label, nil
}

/*
Test takes a context.Context, a Dataset and its parallel slice of
labels and returns three values:
 * the classification success rate of the tree over the given dataset
 * the number of samples that could not be classified because of
   ErrCannotClassifySample errors
 * an error if a sample could not be classified for reasons other
   than the tree not being able to do so. If this is not nil, the
   other values will be 0.0 and 0 respectively
*/
func (t *Tree) Test(ctx context.Context, ds dataset.Dataset, labels []string) (float64, int, error) {
	samples, err := ds.Samples(ctx)
	if err != nil {
		return 0.0, 0, err
	}
	if len(samples) != len(labels) {
		return 0.0, 0, fmt.Errorf("testing tree: %d samples for %d labels", len(samples), len(labels))
	}
	var result float64
	var errCount int
	for i, sample := range samples {
		label, err := t.Classify(ctx, sample)
		if err != nil {
			if err != ErrCannotClassifySample {
				return 0.0, 0, err
			}
			errCount++
			continue
		}
		if label == labels[i] {
			result += 1.0
		}
	}
	result = result / float64(len(samples))
	return result, errCount, nil
}

// Traverse takes a bottomup boolean and an error-returning function
// on a node, and goes through the tree running the function with
// every traversed node. Traverse will call the function with a parent
// node before calling it for its children if bottomup is false, and
// after its children if bottomup is true. If a call to the function
// returns an error, the traversing is aborted and the error is
// returned. Traversing an ungrown tree returns ErrNotGrown.
func (t *Tree) Traverse(bottomup bool, f func(*Node) error) error {
	if t == nil || t.Root == nil {
		return ErrNotGrown
	}
	return traverse(t.Root, bottomup, f)
}

func traverse(n *Node, bottomup bool, f func(*Node) error) error {
	if !bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	for _, child := range n.Childs {
		if err := traverse(child, bottomup, f); err != nil {
			return err
		}
	}
	if bottomup {
		if err := f(n); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tree) String() string {
	if t == nil || t.Root == nil {
		return "[ungrown tree]\n"
	}
	return subtreeString(t.Root)
}

func subtreeString(n *Node) string {
	var result string
	if n.Criterion != nil {
		result = fmt.Sprintf("{ %v }\n", n.Criterion)
	}
	if n.SplitFeature != "" {
		result = fmt.Sprintf("%s[%s]\n", result, n.SplitFeature)
	}
	result = fmt.Sprintf("%s{ %s %v/%d }\n", result, n.Label, n.Distribution, n.Samples)
	if len(n.Childs) > 0 {
		result = fmt.Sprintf("%s|\n", result)
	}
	for i, child := range n.Childs {
		for j, line := range strings.Split(subtreeString(child), "\n") {
			if len(line) > 0 {
				if j == 0 {
					result = fmt.Sprintf("%s|__%s\n", result, line)
				} else {
					if i == len(n.Childs)-1 {
						result = fmt.Sprintf("%s   %s\n", result, line)
					} else {
						result = fmt.Sprintf("%s|  %s\n", result, line)
					}
				}
			}
		}
	}
	return result
}
