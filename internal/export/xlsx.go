package export

import (
	"fmt"
	"io"

	"github.com/andresuchdata/eoq-calculator/internal/domain"
	"github.com/andresuchdata/eoq-calculator/internal/inventory"
	"github.com/xuri/excelize/v2"
)

// SheetName is the name of the single worksheet in the report.
const SheetName = "Laporan"

// Fixed row layout of the report sheet.
const (
	titleRow        = 1
	inputHeaderRow  = 3
	metricHeaderRow = 10
	statusRow       = 16
	seriesHeaderRow = 18
)

var bandFills = map[inventory.Band]string{
	inventory.BandCritical: "#FF9999",
	inventory.BandCaution:  "#FFFF99",
	inventory.BandSafe:     "#99CC99",
}

// WriteReport writes the report as a one-sheet workbook with inputs, metrics,
// the safety verdict and the 10-day stock series.
func WriteReport(w io.Writer, report *domain.CalculationReport) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	styles, err := newStyles(f)
	if err != nil {
		return err
	}

	sw := &sheetWriter{f: f}
	sw.set("A", titleRow, "Kalkulator EOQ dan ROP untuk Produk Cepat Rusak", styles.bold)

	sw.set("A", inputHeaderRow, "Input", styles.bold)
	for i, field := range domain.InputFields {
		row := inputHeaderRow + 1 + i
		sw.set("A", row, field.Label, 0)
		sw.set("B", row, report.Inputs.Values()[i], styles.number)
		sw.set("C", row, field.Unit, 0)
	}

	sw.set("A", metricHeaderRow, "Hasil Perhitungan", styles.bold)
	for i, field := range domain.MetricFields {
		row := metricHeaderRow + 1 + i
		sw.set("A", row, field.Label, 0)
		sw.set("B", row, inventory.RoundFixed(report.Metrics.Values()[i]), styles.number)
		sw.set("C", row, field.Unit, 0)
	}

	sw.set("A", statusRow, "Status", styles.bold)
	sw.set("B", statusRow, report.Message, 0)

	sw.set("A", seriesHeaderRow, "Hari", styles.bold)
	sw.set("B", seriesHeaderRow, "Level Stok (unit)", styles.bold)
	sw.set("C", seriesHeaderRow, "Band", styles.bold)
	for i, day := range report.Chart.Days {
		row := seriesHeaderRow + 1 + i
		band := report.Chart.Bands[i]
		sw.set("A", row, day, 0)
		sw.set("B", row, report.Chart.Levels[i], styles.bandNumbers[band])
		sw.set("C", row, domain.BandLabel(band), styles.bandLabels[band])
	}

	if sw.err != nil {
		return sw.err
	}

	if err := f.SetColWidth(SheetName, "A", "A", 38); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.SetColWidth(SheetName, "B", "C", 20); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type reportStyles struct {
	bold        int
	number      int
	bandNumbers map[inventory.Band]int
	bandLabels  map[inventory.Band]int
}

func newStyles(f *excelize.File) (reportStyles, error) {
	var (
		s   reportStyles
		err error
	)

	if s.bold, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, fmt.Errorf("failed to create style: %w", err)
	}
	// built-in number format 2 is "0.00"
	if s.number, err = f.NewStyle(&excelize.Style{NumFmt: 2}); err != nil {
		return s, fmt.Errorf("failed to create style: %w", err)
	}

	s.bandNumbers = make(map[inventory.Band]int, len(bandFills))
	s.bandLabels = make(map[inventory.Band]int, len(bandFills))
	for band, color := range bandFills {
		fill := excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1}

		id, err := f.NewStyle(&excelize.Style{NumFmt: 2, Fill: fill})
		if err != nil {
			return s, fmt.Errorf("failed to create %s style: %w", band, err)
		}
		s.bandNumbers[band] = id

		if id, err = f.NewStyle(&excelize.Style{Fill: fill}); err != nil {
			return s, fmt.Errorf("failed to create %s style: %w", band, err)
		}
		s.bandLabels[band] = id
	}
	return s, nil
}

// sheetWriter keeps the first error so cell writes can be chained.
type sheetWriter struct {
	f   *excelize.File
	err error
}

func (sw *sheetWriter) set(col string, row int, value interface{}, style int) {
	if sw.err != nil {
		return
	}
	cell := fmt.Sprintf("%s%d", col, row)
	if err := sw.f.SetCellValue(SheetName, cell, value); err != nil {
		sw.err = fmt.Errorf("failed to write %s: %w", cell, err)
		return
	}
	if style == 0 {
		return
	}
	if err := sw.f.SetCellStyle(SheetName, cell, cell, style); err != nil {
		sw.err = fmt.Errorf("failed to style %s: %w", cell, err)
	}
}
