package sprout

import (
	"reflect"
	"testing"
)

func TestInitialEligibleFeatures(t *testing.T) {
	features := []string{"color", "size", "weight", "shape"}
	specialCases := SpecialCases{"color": {"size", "shape"}}
	eligible := initialEligibleFeatures(features, specialCases)
	if !reflect.DeepEqual(eligible, []string{"color", "weight"}) {
		t.Error("expected dependents to be excluded from the initial eligible features, got:", eligible)
	}
}

func TestInitialEligibleFeaturesWithoutSpecialCases(t *testing.T) {
	features := []string{"color", "size"}
	eligible := initialEligibleFeatures(features, nil)
	if !reflect.DeepEqual(eligible, features) {
		t.Error("expected every feature to be eligible, got:", eligible)
	}
}

func TestRemoveFeature(t *testing.T) {
	features := []string{"color", "size", "weight"}
	features = removeFeature(features, "size")
	if !reflect.DeepEqual(features, []string{"color", "weight"}) {
		t.Error("expected size to be removed, got:", features)
	}
	features = removeFeature(features, "unknown")
	if !reflect.DeepEqual(features, []string{"color", "weight"}) {
		t.Error("expected removing an absent feature to leave the list unchanged, got:", features)
	}
}

func TestSpecialCasesClone(t *testing.T) {
	specialCases := SpecialCases{"color": {"size"}}
	clone := specialCases.clone()
	delete(clone, "color")
	if _, ok := specialCases["color"]; !ok {
		t.Error("expected consuming a clone to leave the original registry unchanged")
	}
	if clone := SpecialCases(nil).clone(); clone != nil {
		t.Error("expected the clone of a nil registry to be nil, got:", clone)
	}
}
