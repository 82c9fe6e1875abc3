package datasets

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ClassDistribution returns the number of indexed records per class name.
// Every discovered class appears in the result, including classes with no
// matching files.
func (d *FolderDataset) ClassDistribution() map[string]int {
	dist := make(map[string]int, len(d.classes))
	for _, name := range d.classes {
		dist[name] = 0
	}
	for _, label := range d.labels {
		dist[d.idxToClass[label]]++
	}
	return dist
}

// String summarizes the dataset with its per-class record counts.
func (d *FolderDataset) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "FolderDataset: %d records, %d classes\n", len(d.imagePaths), len(d.classes))
	dist := d.ClassDistribution()
	for _, name := range d.classes {
		fmt.Fprintf(&sb, "  %s: %d\n", name, dist[name])
	}
	return sb.String()
}

// PlotClassDistribution renders the per-class record counts as a bar chart
// and saves it to outPath. The image format is inferred from the file
// extension (e.g. ".png").
func PlotClassDistribution(d *FolderDataset, outPath string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Class distribution (%d records)", d.Len())
	p.Y.Label.Text = "records"

	dist := d.ClassDistribution()
	values := make(plotter.Values, len(d.classes))
	for i, name := range d.classes {
		values[i] = float64(dist[name])
	}

	bars, err := plotter.NewBarChart(values, vg.Points(24))
	if err != nil {
		return errors.Wrap(err, "failed to build bar chart")
	}
	bars.Color = color.RGBA{R: 20, G: 80, B: 200, A: 220}
	p.Add(bars)
	p.NominalX(d.classes...)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, outPath); err != nil {
		return errors.Wrapf(err, "failed to save class distribution plot to %s", outPath)
	}
	return nil
}
