package sprout

import (
	"context"
	"fmt"
	"sort"

	"github.com/sproutml/sprout/dataset"
	"github.com/sproutml/sprout/feature"
	"github.com/sproutml/sprout/tree"
)

/*
Logger is an interface wrapping the Logf method, used by a Grower to
report non-fatal conditions found while growing a tree, such as
missing values on a feature column.
*/
type Logger interface {
	Logf(format string, a ...interface{})
}

/*
Grower grows classification decision trees from labeled datasets with
a mix of categorical and numerical features, using an entropy-based
information-gain splitting criterion.
*/
type Grower struct {
	// MinSamplesSplit is the minimum number of samples a node must
	// have for a split to be attempted on it.
	MinSamplesSplit int
	// MinSamplesLeaf is the minimum number of samples required at a
	// leaf node.
	MinSamplesLeaf int
	// MinImpurityDecrease is the minimum information-gain score a
	// feature must strictly exceed to be selected for a split.
	MinImpurityDecrease float64
	// Logger, when not nil, receives warnings about non-fatal
	// conditions found while growing.
	Logger Logger
}

/*
New returns a Grower with the default configuration: a minimum of 2
samples to attempt a split, a minimum of 1 sample per leaf and a
minimum impurity decrease of 0.05.
*/
func New() *Grower {
	return &Grower{
		MinSamplesSplit:     2,
		MinSamplesLeaf:      1,
		MinImpurityDecrease: 0.05,
	}
}

/*
Grow takes a context.Context, a dataset, its parallel slice of class
labels, the disjoint lists of categorical and numerical feature names
to consider and an optional special-cases registry, and returns a
tree grown from the data to predict the labels, or an error.

The initial set of features eligible for splitting is every listed
feature name minus every feature listed as a dependent in the
special-cases registry. The registry is consumed destructively while
growing: it is shared across the whole recursion, so a prerequisite
consumed on one branch unlocks its dependents for every branch still
to be built afterwards.
*/
func (g *Grower) Grow(ctx context.Context, ds dataset.Dataset, labels []string, categoricalFeatureNames, numericalFeatureNames []string, specialCases SpecialCases) (*tree.Tree, error) {
	samples, err := ds.Samples(ctx)
	if err != nil {
		return nil, fmt.Errorf("growing tree: %v", err)
	}
	if len(samples) != len(labels) {
		return nil, fmt.Errorf("growing tree: %d samples for %d labels", len(samples), len(labels))
	}
	featureNames := make([]string, 0, len(categoricalFeatureNames)+len(numericalFeatureNames))
	featureNames = append(featureNames, categoricalFeatureNames...)
	featureNames = append(featureNames, numericalFeatureNames...)
	r := &run{
		g:            g,
		labels:       labels,
		classNames:   sortedClassNames(labels),
		columns:      make(map[string][]interface{}, len(featureNames)),
		categorical:  make(map[string]bool, len(categoricalFeatureNames)),
		specialCases: specialCases.clone(),
	}
	for _, fn := range categoricalFeatureNames {
		r.categorical[fn] = true
	}
	for _, fn := range featureNames {
		column := make([]interface{}, len(samples))
		for i, sample := range samples {
			v, err := sample.ValueFor(ctx, fn)
			if err != nil {
				return nil, fmt.Errorf("growing tree: reading feature %s: %v", fn, err)
			}
			column[i] = v
		}
		r.columns[fn] = column
	}
	rows := make([]int, len(samples))
	for i := range rows {
		rows[i] = i
	}
	root, err := r.buildNode(ctx, rows, nil, initialEligibleFeatures(featureNames, specialCases))
	if err != nil {
		return nil, err
	}
	return &tree.Tree{
		FeatureNames:            featureNames,
		ClassNames:              r.classNames,
		CategoricalFeatureNames: categoricalFeatureNames,
		NumericalFeatureNames:   numericalFeatureNames,
		Root:                    root,
	}, nil
}

func (g *Grower) logf(format string, a ...interface{}) {
	if g.Logger == nil {
		return
	}
	g.Logger.Logf(format, a...)
}

// run holds the state shared by every node-building call of a single
// Grow invocation: the materialized feature columns, the labels, the
// sorted class names and the special-cases registry (the only state
// the recursion mutates).
type run struct {
	g            *Grower
	labels       []string
	classNames   []string
	columns      map[string][]interface{}
	categorical  map[string]bool
	specialCases SpecialCases
}

/*
buildNode recursively builds the node for the subset of rows it is
given. It selects the best eligible feature by information gain, with
the minimum impurity decrease as the score to beat and earliest-found
features winning ties, computes the node's sample count, class
distribution and majority label, and when a feature was selected and
the subset is large enough, partitions the rows and recurses once per
resulting partition.

The eligible feature list is copied on entry so changes never leak to
sibling subtrees; the special-cases registry on the run is not.
*/
func (r *run) buildNode(ctx context.Context, rows []int, criterion feature.Criterion, eligible []string) (*tree.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	eligible = append([]string(nil), eligible...)

	best := gainResult{score: r.g.MinImpurityDecrease}
	var bestFeature string
	for _, fn := range eligible {
		current := r.informationGain(rows, fn)
		if current.score > best.score {
			best = current
			bestFeature = fn
		}
	}

	samples := len(rows)
	distribution := make([]int, len(r.classNames))
	var label string
	maxSamplesPerClass := -1
	for ci, className := range r.classNames {
		var samplesPerClass int
		for _, i := range rows {
			if r.labels[i] == className {
				samplesPerClass++
			}
		}
		distribution[ci] = samplesPerClass
		if maxSamplesPerClass < samplesPerClass {
			maxSamplesPerClass = samplesPerClass
			label = className
		}
	}

	var childs []*tree.Node
	if bestFeature != "" {
		if r.categorical[bestFeature] {
			eligible = removeFeature(eligible, bestFeature)
		}
		if dependents, ok := r.specialCases[bestFeature]; ok {
			eligible = append(eligible, dependents...)
			delete(r.specialCases, bestFeature)
		}
		if samples >= r.g.MinSamplesSplit {
			partitions, criteria := r.split(rows, bestFeature, best)
			for i, partition := range partitions {
				child, err := r.buildNode(ctx, partition, criteria[i], eligible)
				if err != nil {
					return nil, err
				}
				childs = append(childs, child)
			}
		}
	}

	return &tree.Node{
		SplitFeature: bestFeature,
		Criterion:    criterion,
		Samples:      samples,
		Distribution: distribution,
		Label:        label,
		Childs:       childs,
	}, nil
}

func sortedClassNames(labels []string) []string {
	seen := make(map[string]bool)
	var classNames []string
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			classNames = append(classNames, label)
		}
	}
	sort.Strings(classNames)
	return classNames
}
