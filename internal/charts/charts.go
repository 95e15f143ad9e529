// Package charts renders the five analysis chart images. It consumes only
// the engine's aggregated series data; every visual decision stays here.
package charts

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/lumastat/lumastat-cli/internal/metrics"
	"github.com/lumastat/lumastat-cli/internal/utils"
)

// Output artifact names. The extension picks the encoder, so a config of
// "svg" or "pdf" also works.
const (
	FilePriceByCategory   = "lumastat_price_by_category"
	FileRatingVsPrice     = "lumastat_rating_vs_price"
	FilePriceDistribution = "lumastat_price_distribution"
	FileTopBrands         = "lumastat_top_brands"
	FileCategoryHeatmap   = "lumastat_category_heatmap"
)

const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4.5 * vg.Inch

	defaultBrandLimit = 10
)

var barWidth = vg.Points(30)

var barFill = color.RGBA{R: 0xC4, G: 0x45, B: 0x69, A: 0xFF}

// Renderer writes chart files for one engine.
type Renderer struct {
	engine *metrics.Engine
	dir    string
	format string

	// BrandLimit caps the bars on the top-brands chart.
	BrandLimit int
}

// New creates a renderer writing into dir with the given image format
// (empty means png).
func New(e *metrics.Engine, dir, format string) *Renderer {
	if format == "" {
		format = "png"
	}
	return &Renderer{engine: e, dir: dir, format: format, BrandLimit: defaultBrandLimit}
}

// RenderAll renders every chart. Charts are independent: a failure in one is
// collected and the rest still render. Returns the paths written and the
// joined errors, if any.
func (r *Renderer) RenderAll() ([]string, error) {
	if err := utils.EnsureDir(r.dir); err != nil {
		return nil, fmt.Errorf("chart output dir: %w", err)
	}

	steps := []func() (string, error){
		r.PriceByCategory,
		r.RatingVsPrice,
		r.PriceDistribution,
		r.TopBrands,
		r.CategoryHeatmap,
	}
	var paths []string
	var errs []error
	for _, step := range steps {
		path, err := step()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}

// PriceByCategory renders a bar chart of mean price per category, priciest
// first.
func (r *Renderer) PriceByCategory() (string, error) {
	series := r.engine.CategoryMeanPrices()
	if len(series) == 0 {
		return "", errors.New("price by category: no data")
	}

	p := plot.New()
	p.Title.Text = "Average Price by Category"
	p.Y.Label.Text = "Average Price ($)"

	values := make(plotter.Values, len(series))
	labels := make([]string, len(series))
	for i, lv := range series {
		values[i] = lv.Value
		labels[i] = lv.Label
	}
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return "", fmt.Errorf("price by category: %w", err)
	}
	bars.Color = barFill
	p.Add(bars)
	p.NominalX(labels...)

	return r.save(p, FilePriceByCategory)
}

// RatingVsPrice renders a scatter plot of rating against price with one
// colored series per category.
func (r *Renderer) RatingVsPrice() (string, error) {
	series := r.engine.RatingVsPrice()
	if len(series) == 0 {
		return "", errors.New("rating vs price: no data")
	}

	p := plot.New()
	p.Title.Text = "Product Rating vs Price by Category"
	p.X.Label.Text = "Price ($)"
	p.Y.Label.Text = "Rating (stars)"
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Prices))
		for j := range s.Prices {
			pts[j].X = s.Prices[j]
			pts[j].Y = s.Ratings[j]
		}
		sc, err := plotter.NewScatter(pts)
		if err != nil {
			return "", fmt.Errorf("rating vs price: %w", err)
		}
		sc.GlyphStyle.Color = plotutil.Color(i)
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(string(s.Category), sc)
	}

	return r.save(p, FileRatingVsPrice)
}

// PriceDistribution renders a bar chart of product counts per price tier.
func (r *Renderer) PriceDistribution() (string, error) {
	counts := r.engine.PriceRangeCounts()
	if len(counts) == 0 {
		return "", errors.New("price distribution: no data")
	}

	p := plot.New()
	p.Title.Text = "Product Distribution by Price Range"
	p.Y.Label.Text = "Number of Products"

	values := make(plotter.Values, len(counts))
	labels := make([]string, len(counts))
	for i, lv := range counts {
		values[i] = lv.Value
		labels[i] = lv.Label
	}
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return "", fmt.Errorf("price distribution: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)
	p.NominalX(labels...)

	return r.save(p, FilePriceDistribution)
}

// TopBrands renders a horizontal bar chart of the brands with the most
// products.
func (r *Renderer) TopBrands() (string, error) {
	brands := r.engine.TopBrandCounts(r.BrandLimit)
	if len(brands) == 0 {
		return "", errors.New("top brands: no data")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Top %d Brands by Number of Products", len(brands))
	p.X.Label.Text = "Number of Products"

	// Reverse so the leading brand renders at the top of the chart.
	values := make(plotter.Values, len(brands))
	labels := make([]string, len(brands))
	for i, lv := range brands {
		j := len(brands) - 1 - i
		values[j] = lv.Value
		labels[j] = lv.Label
	}
	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return "", fmt.Errorf("top brands: %w", err)
	}
	bars.Horizontal = true
	bars.Color = barFill
	p.Add(bars)
	p.NominalY(labels...)

	return r.save(p, FileTopBrands)
}

// CategoryHeatmap renders the normalized category performance grid.
func (r *Renderer) CategoryHeatmap() (string, error) {
	h := r.engine.CategoryHeatmap()
	if len(h.Categories) == 0 {
		return "", errors.New("category heatmap: no data")
	}

	p := plot.New()
	p.Title.Text = "Category Performance Heatmap"
	p.X.Label.Text = "Category"

	hm := plotter.NewHeatMap(heatGrid{h}, palette.Heat(12, 1))
	p.Add(hm)
	p.NominalX(h.Categories...)
	p.NominalY(h.Metrics...)

	return r.save(p, FileCategoryHeatmap)
}

func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	path := filepath.Join(r.dir, name+"."+r.format)
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return "", fmt.Errorf("save %s: %w", name, err)
	}
	return path, nil
}

// heatGrid adapts a metrics.Heatmap to the plotter grid interface. Columns
// are categories, rows are metrics, cell values the normalized means.
type heatGrid struct {
	h metrics.Heatmap
}

func (g heatGrid) Dims() (int, int)   { return len(g.h.Categories), len(g.h.Metrics) }
func (g heatGrid) X(c int) float64    { return float64(c) }
func (g heatGrid) Y(r int) float64    { return float64(r) }
func (g heatGrid) Z(c, r int) float64 { return g.h.Normalized[r][c] }
