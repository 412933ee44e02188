package sprout

/*
SpecialCases maps a prerequisite feature name to the dependent
feature names that must not be considered for splitting until the
prerequisite has been chosen as a split feature.

The registry is consumed while a tree is grown: when a prerequisite
feature is selected for a split, its dependents are added to the
eligible feature list of that branch and the entry is removed from
the registry. Since a single registry is shared by the whole growing
recursion, the unlocking is global: every branch built after the
consumption may use the dependents too.
*/
type SpecialCases map[string][]string

// clone returns a copy of the registry that can be consumed without
// altering the caller's map. Dependent slices are shared: they are
// only ever read.
func (sc SpecialCases) clone() SpecialCases {
	if sc == nil {
		return nil
	}
	clone := make(SpecialCases, len(sc))
	for prerequisite, dependents := range sc {
		clone[prerequisite] = dependents
	}
	return clone
}

/*
initialEligibleFeatures returns the feature names initially eligible
for splitting: every given feature name minus every feature listed as
a dependent in the special-cases registry, in the given order.
*/
func initialEligibleFeatures(featureNames []string, specialCases SpecialCases) []string {
	dependent := make(map[string]bool)
	for _, dependents := range specialCases {
		for _, fn := range dependents {
			dependent[fn] = true
		}
	}
	eligible := make([]string, 0, len(featureNames))
	for _, fn := range featureNames {
		if !dependent[fn] {
			eligible = append(eligible, fn)
		}
	}
	return eligible
}

func removeFeature(featureNames []string, name string) []string {
	for i, fn := range featureNames {
		if fn == name {
			return append(featureNames[:i], featureNames[i+1:]...)
		}
	}
	return featureNames
}
