package datasets

import (
	"fmt"
	"iter"
	"maps"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// FolderDataset is an image index built from a directory tree where each
// subdirectory is a class. It scans the tree once at construction and is
// strictly read-only afterward, so concurrent readers need no
// synchronization.
type FolderDataset struct {
	root string

	// Parallel slices: labels[i] is the class label for imagePaths[i].
	imagePaths []string
	labels     []int

	// Class index, fixed at construction.
	classes    []string
	classToIdx map[string]int
	idxToClass map[int]string
}

// IndexError reports a request for a record outside the valid range of a
// dataset. Negative indices are never wrapped.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for dataset of size %d", e.Index, e.Size)
}

// NewFolderDataset builds an index over the class subdirectories of root.
// The scan runs to completion before returning; on any filesystem error the
// construction fails entirely and no index is produced.
func NewFolderDataset(root string) (*FolderDataset, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read dataset root %s", root)
	}

	ds := &FolderDataset{
		root:       root,
		classToIdx: make(map[string]int),
		idxToClass: make(map[int]string),
	}

	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		ds.classes = append(ds.classes, entry.Name())
	}
	sort.Strings(ds.classes)

	for idx, name := range ds.classes {
		ds.classToIdx[name] = idx
		ds.idxToClass[idx] = name
	}

	if err := ds.scan(); err != nil {
		return nil, err
	}
	return ds, nil
}

// scan walks each class directory in label order and appends every regular
// file with a recognized image extension.
func (d *FolderDataset) scan() error {
	for _, className := range d.classes {
		classDir := filepath.Join(d.root, className)
		label := d.classToIdx[className]

		entries, err := os.ReadDir(classDir)
		if err != nil {
			return errors.Wrapf(err, "failed to read class directory %s", classDir)
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() || !isImageFile(entry.Name()) {
				continue
			}
			d.imagePaths = append(d.imagePaths, filepath.Join(classDir, entry.Name()))
			d.labels = append(d.labels, label)
		}
	}
	return nil
}

// Root returns the directory the dataset was built from.
func (d *FolderDataset) Root() string { return d.root }

// Len returns the total number of indexed records.
func (d *FolderDataset) Len() int { return len(d.imagePaths) }

// Example returns the (path, label) pair at position idx.
func (d *FolderDataset) Example(idx int) (string, int, error) {
	if idx < 0 || idx >= len(d.imagePaths) {
		return "", 0, &IndexError{Index: idx, Size: len(d.imagePaths)}
	}
	return d.imagePaths[idx], d.labels[idx], nil
}

// All returns a restartable iterator over every (path, label) record in
// stored order.
func (d *FolderDataset) All() iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for i, path := range d.imagePaths {
			if !yield(path, d.labels[i]) {
				return
			}
		}
	}
}

// NumClasses returns the number of discovered classes.
func (d *FolderDataset) NumClasses() int { return len(d.classes) }

// Classes returns the class names in label order (lexicographically sorted).
func (d *FolderDataset) Classes() []string { return slices.Clone(d.classes) }

// ClassToIdx returns the class name to label mapping.
func (d *FolderDataset) ClassToIdx() map[string]int { return maps.Clone(d.classToIdx) }

// IdxToClass returns the label to class name mapping.
func (d *FolderDataset) IdxToClass() map[int]string { return maps.Clone(d.idxToClass) }

// view returns an empty dataset sharing the class index, used to build the
// derived datasets below. The shared maps are never mutated after
// construction so sharing is safe.
func (d *FolderDataset) view() *FolderDataset {
	return &FolderDataset{
		root:       d.root,
		classes:    d.classes,
		classToIdx: d.classToIdx,
		idxToClass: d.idxToClass,
	}
}

// Subset returns a new dataset containing the records at the given positions,
// in the given order. The class index is shared with the parent.
func (d *FolderDataset) Subset(indices []int) (*FolderDataset, error) {
	sub := d.view()
	sub.imagePaths = make([]string, len(indices))
	sub.labels = make([]int, len(indices))
	for i, idx := range indices {
		if idx < 0 || idx >= len(d.imagePaths) {
			return nil, &IndexError{Index: idx, Size: len(d.imagePaths)}
		}
		sub.imagePaths[i] = d.imagePaths[idx]
		sub.labels[i] = d.labels[idx]
	}
	return sub, nil
}

// FilterByClass returns a new dataset restricted to records of the named
// classes. Labels keep their original values; unknown names are ignored.
func (d *FolderDataset) FilterByClass(names ...string) *FolderDataset {
	keep := make(map[int]bool, len(names))
	for _, name := range names {
		if idx, ok := d.classToIdx[name]; ok {
			keep[idx] = true
		}
	}

	filtered := d.view()
	for i, label := range d.labels {
		if keep[label] {
			filtered.imagePaths = append(filtered.imagePaths, d.imagePaths[i])
			filtered.labels = append(filtered.labels, d.labels[i])
		}
	}
	return filtered
}

// Split partitions the dataset into disjoint train and validation views.
// The train view holds the first int(Len()*trainRatio) positions; a non-nil
// rng permutes positions before the cut, a nil rng gives a deterministic
// contiguous split. Both views share the parent's class index.
func (d *FolderDataset) Split(trainRatio float64, rng *rand.Rand) (train, val *FolderDataset) {
	n := len(d.imagePaths)
	trainSize := int(float64(n) * trainRatio)
	if trainSize < 0 {
		trainSize = 0
	}
	if trainSize > n {
		trainSize = n
	}

	positions := make([]int, n)
	for i := range positions {
		positions[i] = i
	}
	if rng != nil {
		rng.Shuffle(n, func(i, j int) {
			positions[i], positions[j] = positions[j], positions[i]
		})
	}

	// Positions are always in range, so Subset cannot fail here.
	train, _ = d.Subset(positions[:trainSize])
	val, _ = d.Subset(positions[trainSize:])
	return train, val
}
