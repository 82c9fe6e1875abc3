package datasets

import "iter"

// This package indexes a directory tree of labeled image files into an
// ordered, randomly-addressable collection of (path, label) pairs for
// consumption by a training pipeline.
//
// The index stores file paths only - it never opens or decodes the image
// files. Decoding, batching, augmentation and shuffling are left to the
// training-loop code that consumes the index via random access.
//
// Expected on-disk layout:
//
//	root/
//	    <className>/
//	        <imageFile>.{jpg|jpeg|png|bmp|gif}
//	    ...
//
// Class names come from the subdirectory names. Subdirectories whose name
// starts with "." are ignored, as are non-directory entries at the root and
// files with unrecognized extensions inside class directories.
//
// Labels are assigned by sorting class names lexicographically and numbering
// from 0, so the name<->label mapping is reproducible across runs for the
// same directory contents.

// Dataset is the minimal surface a training loop requires from an image
// index. FolderDataset implements it; the derived views returned by Subset,
// FilterByClass and Split satisfy it too.
type Dataset interface {
	// Len returns the number of indexed records.
	Len() int
	// Example returns the (path, label) pair at position i. It fails with an
	// *IndexError when i is outside [0, Len()).
	Example(i int) (path string, label int, err error)
	// All iterates over every record in stored order.
	All() iter.Seq2[string, int]
}

var _ Dataset = (*FolderDataset)(nil)
