package datasets_test

import (
	"math"
	"testing"

	"github.com/croplens/imageset/datasets"
)

func TestLabelsTensor(t *testing.T) {
	root := makePlantRoot(t)

	ds, err := datasets.NewFolderDataset(root)
	if err != nil {
		t.Fatalf("NewFolderDataset failed: %v", err)
	}

	labels := ds.LabelsTensor()
	if labels == nil {
		t.Fatalf("LabelsTensor returned nil")
	}
	shape := labels.Shape()
	if shape.Rank() != 1 || shape.Dimensions[0] != ds.Len() {
		t.Fatalf("unexpected labels tensor shape: %v (want rank 1, %d entries)", shape, ds.Len())
	}
}

func TestClassWeights_Balanced(t *testing.T) {
	root := makePlantRoot(t)

	ds, err := datasets.NewFolderDataset(root)
	if err != nil {
		t.Fatalf("NewFolderDataset failed: %v", err)
	}

	weights := ds.ClassWeights()
	if len(weights) != ds.NumClasses() {
		t.Fatalf("expected %d weights, got %d", ds.NumClasses(), len(weights))
	}
	// All classes hold 5 records each, so every weight is 1.
	for i, w := range weights {
		if math.Abs(float64(w)-1.0) > 1e-5 {
			t.Fatalf("expected weight 1.0 for balanced class %d, got %f", i, w)
		}
	}
}

func TestClassWeights_Imbalanced(t *testing.T) {
	root := t.TempDir()
	makeClassDir(t, root, "Common", 8)
	makeClassDir(t, root, "Rare", 2)

	ds, err := datasets.NewFolderDataset(root)
	if err != nil {
		t.Fatalf("NewFolderDataset failed: %v", err)
	}

	weights := ds.ClassWeights()
	classToIdx := ds.ClassToIdx()
	common := weights[classToIdx["Common"]]
	rare := weights[classToIdx["Rare"]]
	if rare <= common {
		t.Fatalf("expected rarer class to weigh more: common=%f rare=%f", common, rare)
	}
	// Inverse frequency: the 2-record class weighs 4x the 8-record class.
	if math.Abs(float64(rare/common)-4.0) > 1e-5 {
		t.Fatalf("expected weight ratio 4, got %f", rare/common)
	}

	tensor := ds.ClassWeightsTensor()
	if tensor == nil {
		t.Fatalf("ClassWeightsTensor returned nil")
	}
	if got := tensor.Shape().Dimensions[0]; got != ds.NumClasses() {
		t.Fatalf("weights tensor has %d entries, want %d", got, ds.NumClasses())
	}
}

func TestClassWeights_EmptyClassGetsZero(t *testing.T) {
	root := t.TempDir()
	makeClassDir(t, root, "Filled", 4)
	makeClassDir(t, root, "Vacant", 0)

	ds, err := datasets.NewFolderDataset(root)
	if err != nil {
		t.Fatalf("NewFolderDataset failed: %v", err)
	}

	weights := ds.ClassWeights()
	if w := weights[ds.ClassToIdx()["Vacant"]]; w != 0 {
		t.Fatalf("expected weight 0 for empty class, got %f", w)
	}
	if w := weights[ds.ClassToIdx()["Filled"]]; math.Abs(float64(w)-1.0) > 1e-5 {
		t.Fatalf("expected weight 1 for the only non-empty class, got %f", w)
	}
}
