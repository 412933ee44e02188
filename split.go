package sprout

import (
	"fmt"

	"github.com/sproutml/sprout/feature"
)

/*
split partitions the given rows on the given feature and returns the
partitions together with the criterion each partition satisfies.

A categorical feature produces one partition per distinct value
actually observed in the rows, in first-observed order. A numerical
feature produces exactly two partitions at the winning threshold t:
rows strictly below t ("< t") and rows at or above it (">= t"). Rows
with a missing value for the feature belong to no partition.
*/
func (r *run) split(rows []int, featureName string, best gainResult) ([][]int, []feature.Criterion) {
	if r.categorical[featureName] {
		return r.categoricalSplit(rows, featureName)
	}
	return r.numericalSplit(rows, featureName, best.threshold)
}

func (r *run) categoricalSplit(rows []int, featureName string) ([][]int, []feature.Criterion) {
	column := r.columns[featureName]
	var values []string
	groups := make(map[string][]int)
	for _, i := range rows {
		v := column[i]
		if v == nil {
			continue
		}
		vString, ok := v.(string)
		if !ok {
			vString = fmt.Sprintf("%v", v)
		}
		if _, seen := groups[vString]; !seen {
			values = append(values, vString)
		}
		groups[vString] = append(groups[vString], i)
	}
	partitions := make([][]int, 0, len(values))
	criteria := make([]feature.Criterion, 0, len(values))
	for _, value := range values {
		partitions = append(partitions, groups[value])
		criteria = append(criteria, feature.NewValueCriterion(featureName, value))
	}
	return partitions, criteria
}

func (r *run) numericalSplit(rows []int, featureName string, threshold float64) ([][]int, []feature.Criterion) {
	column := r.columns[featureName]
	var less, more []int
	for _, i := range rows {
		v, ok := column[i].(float64)
		if !ok {
			continue
		}
		if v < threshold {
			less = append(less, i)
		} else {
			more = append(more, i)
		}
	}
	partitions := [][]int{less, more}
	criteria := []feature.Criterion{
		feature.NewThresholdCriterion(featureName, threshold, true),
		feature.NewThresholdCriterion(featureName, threshold, false),
	}
	return partitions, criteria
}
