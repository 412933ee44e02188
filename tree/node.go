package tree

import (
	"github.com/sproutml/sprout/feature"
)

/*
Node is a node of the tree. Each node exclusively owns its children:
the node graph is a strict tree built once when the tree is grown and
read-only afterwards.
*/
type Node struct {
	// The feature whose values split this node's samples into its
	// children. Empty for leaves and for nodes whose sample count
	// did not reach the minimum required to attempt a split.
	SplitFeature string
	// The condition on the incoming edge from the parent: the
	// criterion that applied to the parent node's samples produces
	// this node's samples. Nil for the root.
	Criterion feature.Criterion
	// The number of samples from which this node was built.
	Samples int
	// The number of samples per class, one count per class in the
	// tree's sorted class name order. Counts sum to Samples.
	Distribution []int
	// The majority class among this node's samples, ties broken by
	// earliest position in the tree's sorted class name order.
	Label string
	// The nodes directly under this node, empty for leaves.
	Childs []*Node
}

/*
FeatureValue returns the condition of the incoming edge from the
parent as text: a categorical value such as "red" or a threshold
comparison such as "< 5" or ">= 5". It returns the empty string
for the root.
*/
func (n *Node) FeatureValue() string {
	if n.Criterion == nil {
		return ""
	}
	return n.Criterion.String()
}
