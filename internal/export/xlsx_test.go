package export

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/lumastat/lumastat-cli/internal/catalog"
	"github.com/lumastat/lumastat-cli/internal/metrics"
)

func TestWriteWorkbook(t *testing.T) {
	cat, err := catalog.LoadEmbedded()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	dir := t.TempDir()
	path, err := New(metrics.New(cat), dir).Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if filepath.Base(path) != FileWorkbook {
		t.Fatalf("got workbook name %s, want %s", filepath.Base(path), FileWorkbook)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	want := []string{"Products", "Categories", "Price Ranges", "Insights"}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("got sheets %v, want %v", got, want)
	}
	for _, name := range want {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			t.Errorf("missing sheet %q", name)
		}
	}

	rows, err := f.GetRows("Products")
	if err != nil {
		t.Fatalf("read Products: %v", err)
	}
	if len(rows) != 41 { // header + 40 products
		t.Fatalf("got %d product rows, want 41", len(rows))
	}
	if rows[1][0] != "Fenty Beauty Foundation" {
		t.Errorf("first product = %q, want Fenty Beauty Foundation", rows[1][0])
	}

	cell, err := f.GetCellValue("Categories", "A2")
	if err != nil {
		t.Fatalf("read Categories!A2: %v", err)
	}
	if cell != "Face" {
		t.Errorf("Categories!A2 = %q, want Face", cell)
	}
	count, err := f.GetCellValue("Categories", "B2")
	if err != nil {
		t.Fatalf("read Categories!B2: %v", err)
	}
	if count != "17" {
		t.Errorf("Categories!B2 = %q, want 17", count)
	}
}

func TestWriteEmptyCatalogFails(t *testing.T) {
	if _, err := New(metrics.New(catalog.New(nil)), t.TempDir()).Write(); err == nil {
		t.Fatal("expected error for empty catalog")
	}
}
