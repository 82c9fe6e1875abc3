package datasets

import "github.com/gomlx/gomlx/pkg/core/tensors"

// Conversions from the index into gomlx tensors. These cover the parts of
// the index a training loop consumes as numeric data - the label vector and
// class weights - and never touch the image files themselves.

// LabelsTensor returns the full label vector as an int32 tensor, one entry
// per record in stored order.
func (d *FolderDataset) LabelsTensor() *tensors.Tensor {
	labels := make([]int32, len(d.labels))
	for i, label := range d.labels {
		labels[i] = int32(label)
	}
	return tensors.FromValue(labels)
}

// ClassWeights returns one inverse-frequency weight per class, scaled so the
// weights of non-empty classes average to 1. Classes with no records get
// weight 0. Useful for weighting losses on imbalanced datasets.
func (d *FolderDataset) ClassWeights() []float32 {
	weights := make([]float32, len(d.classes))
	if len(d.labels) == 0 {
		return weights
	}

	counts := make([]int, len(d.classes))
	for _, label := range d.labels {
		counts[label]++
	}

	nonEmpty := 0
	var sum float32
	total := float32(len(d.labels))
	for i, count := range counts {
		if count == 0 {
			continue
		}
		weights[i] = total / float32(count)
		sum += weights[i]
		nonEmpty++
	}

	scale := float32(nonEmpty) / sum
	for i := range weights {
		weights[i] *= scale
	}
	return weights
}

// ClassWeightsTensor returns ClassWeights as a float32 tensor.
func (d *FolderDataset) ClassWeightsTensor() *tensors.Tensor {
	return tensors.FromValue(d.ClassWeights())
}
