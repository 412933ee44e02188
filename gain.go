package sprout

import (
	"fmt"
	"math"
)

// gainResult is the score of splitting a subset on a feature. For
// numerical features it also carries the threshold that produced the
// score. Results are compared on the score alone.
type gainResult struct {
	score     float64
	threshold float64
	numerical bool
}

/*
informationGain computes the information gain of splitting the given
rows on the given feature: a plain score for categorical features, a
score with its best threshold for numerical ones.

The gain conditions feature entropy on class membership:

	Gain(A, Q) = H(A, S) - sum over classes c of (|A_c|/|A|) * H(A_c, S)

where A is the subset of rows, S the feature and A_c the rows whose
label is c. Missing values on the feature column are reported through
the grower's logger and the computation proceeds over the subset as
is.
*/
func (r *run) informationGain(rows []int, featureName string) gainResult {
	column := r.columns[featureName]
	for _, i := range rows {
		if column[i] == nil {
			r.g.logf("dataset contains missing values for feature %s", featureName)
			break
		}
	}
	if r.categorical[featureName] {
		return gainResult{score: r.categoricalInformationGain(rows, column)}
	}
	return r.numericalInformationGain(rows, column)
}

/*
categoricalInformationGain computes the class-conditioned information
gain of splitting the given rows on a categorical feature column.
*/
func (r *run) categoricalInformationGain(rows []int, column []interface{}) float64 {
	a := categoricalEntropy(rows, column)

	b := 0.0
	n := float64(len(rows))
	for _, className := range r.classNames {
		classRows := r.rowsWithLabel(rows, className)
		b += (float64(len(classRows)) / n) * categoricalEntropy(classRows, column)
	}

	return a - b
}

/*
numericalInformationGain computes the class-conditioned information
gain of splitting the given rows on a numerical feature column,
scanning every integer threshold t from 0 up to the floor of the
column's maximum value minus one, and keeping the threshold with the
maximum gain. Columns whose maximum value is below 1 produce a zero
score: no threshold is ever scanned for them.
*/
func (r *run) numericalInformationGain(rows []int, column []interface{}) gainResult {
	max := math.Inf(-1)
	for _, i := range rows {
		if v, ok := column[i].(float64); ok && v > max {
			max = v
		}
	}
	best := gainResult{numerical: true}
	if math.IsInf(max, -1) {
		return best
	}
	n := float64(len(rows))
	for t := 0; t < int(max); t++ {
		threshold := float64(t)
		a := numericalEntropy(rows, column, threshold)

		b := 0.0
		for _, className := range r.classNames {
			classRows := r.rowsWithLabel(rows, className)
			b += (float64(len(classRows)) / n) * numericalEntropy(classRows, column, threshold)
		}

		gain := a - b
		if gain > best.score {
			best.score = gain
			best.threshold = threshold
		}
	}
	return best
}

func (r *run) rowsWithLabel(rows []int, className string) []int {
	var classRows []int
	for _, i := range rows {
		if r.labels[i] == className {
			classRows = append(classRows, i)
		}
	}
	return classRows
}

/*
categoricalEntropy computes the entropy in bits of a categorical
feature column over the given rows:

	H(A, S) = -sum over observed values v of (m_v/n) * log2(m_v/n)

where n is the number of rows and m_v the number of rows with value
v. Rows with a missing value contribute to n but to no term. An empty
subset has zero entropy.
*/
func categoricalEntropy(rows []int, column []interface{}) float64 {
	n := float64(len(rows))

	counts := make(map[string]float64)
	for _, i := range rows {
		v := column[i]
		if v == nil {
			continue
		}
		vString, ok := v.(string)
		if !ok {
			vString = fmt.Sprintf("%v", v)
		}
		counts[vString]++
	}

	entropy := 0.0
	for _, m := range counts {
		if m != 0 {
			entropy -= (m / n) * math.Log2(m/n)
		}
	}
	return entropy
}

/*
numericalEntropy computes the entropy in bits of the binary split of
a numerical feature column at the given threshold over the given
rows:

	H(A, S) = -(less/n) * log2(less/n) - (more/n) * log2(more/n)

where n is the number of rows, less the number of rows with a value
strictly below the threshold and more the number of rows with a value
at or above it. Any zero-count term is omitted and an empty subset
has zero entropy.
*/
func numericalEntropy(rows []int, column []interface{}, threshold float64) float64 {
	n := float64(len(rows))

	var less, more float64
	for _, i := range rows {
		v, ok := column[i].(float64)
		if !ok {
			continue
		}
		if v < threshold {
			less++
		} else {
			more++
		}
	}

	entropy := 0.0
	if less != 0 {
		entropy -= (less / n) * math.Log2(less/n)
	}
	if more != 0 {
		entropy -= (more / n) * math.Log2(more/n)
	}
	return entropy
}
