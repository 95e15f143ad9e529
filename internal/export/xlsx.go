// Package export writes the full analysis to an Excel workbook so the
// numbers behind the report and charts can be inspected in a spreadsheet.
package export

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/lumastat/lumastat-cli/internal/metrics"
	"github.com/lumastat/lumastat-cli/internal/utils"
)

// FileWorkbook is the name of the exported workbook.
const FileWorkbook = "lumastat_analysis.xlsx"

const (
	sheetProducts    = "Products"
	sheetCategories  = "Categories"
	sheetPriceRanges = "Price Ranges"
	sheetInsights    = "Insights"
)

// Exporter writes one workbook per engine.
type Exporter struct {
	engine *metrics.Engine
	dir    string
}

// New creates an exporter writing into dir.
func New(e *metrics.Engine, dir string) *Exporter {
	return &Exporter{engine: e, dir: dir}
}

// Write renders the workbook and returns its path.
func (x *Exporter) Write() (string, error) {
	if err := utils.EnsureDir(x.dir); err != nil {
		return "", fmt.Errorf("export dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := x.writeProducts(f); err != nil {
		return "", err
	}
	if err := x.writeCategories(f); err != nil {
		return "", err
	}
	if err := x.writePriceRanges(f); err != nil {
		return "", err
	}
	if err := x.writeInsights(f); err != nil {
		return "", err
	}

	// The first sheet excelize creates is "Sheet1"; rename it rather than
	// leave an empty tab behind.
	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	path := filepath.Join(x.dir, FileWorkbook)
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save workbook: %w", err)
	}
	return path, nil
}

func (x *Exporter) writeProducts(f *excelize.File) error {
	rows := [][]any{
		{"Name", "Brand", "Category", "Price", "Rating", "Reviews", "Value Score", "Price Range"},
	}
	for _, p := range x.engine.Catalog().Products() {
		score := any("")
		if p.HasValueScore() {
			score = round2(p.ValueScore)
		}
		rows = append(rows, []any{
			p.Name, p.Brand, string(p.Category), p.Price, p.Rating,
			p.NumReviews, score, string(p.PriceRange),
		})
	}
	return writeSheet(f, sheetProducts, rows)
}

func (x *Exporter) writeCategories(f *excelize.File) error {
	report, err := x.engine.Categories()
	if err != nil {
		return fmt.Errorf("categories sheet: %w", err)
	}
	rows := [][]any{
		{"Category", "Products", "Mean Price", "Min Price", "Max Price", "Mean Rating", "Total Reviews"},
	}
	for _, cs := range report.Categories {
		rows = append(rows, []any{
			string(cs.Category), cs.Count,
			round2(cs.MeanPrice), cs.MinPrice, cs.MaxPrice,
			round2(cs.MeanRating), cs.TotalReviews,
		})
	}
	return writeSheet(f, sheetCategories, rows)
}

func (x *Exporter) writePriceRanges(f *excelize.File) error {
	report, err := x.engine.Prices()
	if err != nil {
		return fmt.Errorf("price ranges sheet: %w", err)
	}
	rows := [][]any{
		{"Price Range", "Products", "Share %"},
	}
	for _, b := range report.Buckets {
		rows = append(rows, []any{string(b.Range), b.Count, round2(b.Percent)})
	}
	if report.Unbucketed > 0 {
		rows = append(rows, []any{"Outside Ranges", report.Unbucketed, ""})
	}
	corr := any("undefined")
	if report.CorrelationDefined {
		corr = round3(report.Correlation)
	}
	rows = append(rows,
		[]any{},
		[]any{"Price-Rating Correlation", corr, report.Verdict},
	)
	return writeSheet(f, sheetPriceRanges, rows)
}

func (x *Exporter) writeInsights(f *excelize.File) error {
	report, err := x.engine.Insights()
	if err != nil {
		return fmt.Errorf("insights sheet: %w", err)
	}
	rows := [][]any{
		{"Insight", "Value"},
		{"Expensive products (> $50)", report.PriceQuality.Expensive.Count},
		{"Mean rating of expensive products", meanCell(report.PriceQuality.Expensive)},
		{"Affordable products (<= $30)", report.PriceQuality.Affordable.Count},
		{"Mean rating of affordable products", meanCell(report.PriceQuality.Affordable)},
		{"Mean skincare price", meanCell(report.CategoryPricing.Skincare)},
		{"Mean makeup price", meanCell(report.CategoryPricing.Makeup)},
		{"Sweet spot products ($20-$40)", report.SweetSpot.Rating.Count},
		{"Sweet spot share %", round2(report.SweetSpot.Percent)},
		{"Sweet spot mean rating", meanCell(report.SweetSpot.Rating)},
		{"High-rated products (>= 4.5 stars)", report.TopPerformers.Price.Count},
		{"High-rated mean price", meanCell(report.TopPerformers.Price)},
		{"Most common category", string(report.TopPerformers.ModalCategory)},
	}
	return writeSheet(f, sheetInsights, rows)
}

func writeSheet(f *excelize.File, name string, rows [][]any) error {
	if name != sheetProducts {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	target := name
	if name == sheetProducts {
		// Products data lands on the default sheet before it is renamed.
		target = "Sheet1"
	}
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+1, err)
		}
		if err := f.SetSheetRow(target, cell, &row); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", name, i+1, err)
		}
	}
	return nil
}

func meanCell(s metrics.SubsetMean) any {
	if !s.HasData() {
		return "no data"
	}
	return round2(s.Mean)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
