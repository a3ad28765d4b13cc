package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"govn/internal/envelope"
)

const (
	dataSheet   = "Data"
	chartSheet  = "Chart"
	vertexSheet = "Vertices"
)

// WriteWorkbook writes the result to an xlsx workbook: one column pair
// per polyline on the data sheet, the labeled vertices on their own
// sheet, and a scatter chart of both envelopes.
func WriteWorkbook(path string, res *envelope.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(dataSheet); err != nil {
		return fmt.Errorf("failed to create data sheet: %w", err)
	}
	if _, err := f.NewSheet(vertexSheet); err != nil {
		return fmt.Errorf("failed to create vertex sheet: %w", err)
	}
	chartIdx, err := f.NewSheet(chartSheet)
	if err != nil {
		return fmt.Errorf("failed to create chart sheet: %w", err)
	}

	var series []excelize.ChartSeries
	col := 1
	appendCurves := func(set string, curves []envelope.Curve) error {
		for _, curve := range curves {
			s, next, err := writeCurveColumns(f, col, set, curve)
			if err != nil {
				return err
			}
			series = append(series, s)
			col = next
		}
		return nil
	}
	if err := appendCurves("basic", res.Basic); err != nil {
		return err
	}
	if err := appendCurves("gust", res.Gust); err != nil {
		return err
	}

	if err := writeVertices(f, res.Vertices); err != nil {
		return err
	}

	chart := &excelize.Chart{
		Type:   excelize.Scatter,
		Series: series,
		Title: []excelize.RichTextRun{
			{Text: "V-n envelope"},
		},
		Legend: excelize.ChartLegend{
			Position: "right",
		},
		Dimension: excelize.ChartDimension{
			Width:  960,
			Height: 600,
		},
	}
	if err := f.AddChart(chartSheet, "A1", chart); err != nil {
		return fmt.Errorf("failed to add envelope chart: %w", err)
	}

	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}
	f.SetActiveSheet(chartIdx)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

// writeCurveColumns writes one polyline as a (speed, load) column pair
// starting at the given column and returns the chart series referencing
// it plus the next free column.
func writeCurveColumns(f *excelize.File, col int, set string, curve envelope.Curve) (excelize.ChartSeries, int, error) {
	vCol, err := excelize.ColumnNumberToName(col)
	if err != nil {
		return excelize.ChartSeries{}, 0, fmt.Errorf("bad column index %d: %w", col, err)
	}
	nCol, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return excelize.ChartSeries{}, 0, fmt.Errorf("bad column index %d: %w", col+1, err)
	}

	name := fmt.Sprintf("%s: %s", set, curve.Name)
	cells := map[string]interface{}{
		vCol + "1": name,
		vCol + "2": "speed_ms",
		nCol + "2": "load_factor",
	}
	for cell, value := range cells {
		if err := f.SetCellValue(dataSheet, cell, value); err != nil {
			return excelize.ChartSeries{}, 0, fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}

	for i, pt := range curve.Points {
		row := i + 3
		if err := f.SetCellValue(dataSheet, fmt.Sprintf("%s%d", vCol, row), pt.V); err != nil {
			return excelize.ChartSeries{}, 0, fmt.Errorf("failed to write speed cell: %w", err)
		}
		if err := f.SetCellValue(dataSheet, fmt.Sprintf("%s%d", nCol, row), pt.N); err != nil {
			return excelize.ChartSeries{}, 0, fmt.Errorf("failed to write load cell: %w", err)
		}
	}

	lastRow := len(curve.Points) + 2
	s := excelize.ChartSeries{
		Name:       fmt.Sprintf("%s!$%s$1", dataSheet, vCol),
		Categories: fmt.Sprintf("%s!$%s$3:$%s$%d", dataSheet, vCol, vCol, lastRow),
		Values:     fmt.Sprintf("%s!$%s$3:$%s$%d", dataSheet, nCol, nCol, lastRow),
	}
	return s, col + 2, nil
}

func writeVertices(f *excelize.File, vertices []envelope.Vertex) error {
	headers := []string{"label", "speed_ms", "load_factor"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("bad header coordinates: %w", err)
		}
		if err := f.SetCellValue(vertexSheet, cell, h); err != nil {
			return fmt.Errorf("failed to write vertex header: %w", err)
		}
	}

	for i, v := range vertices {
		row := i + 2
		values := []interface{}{v.Label, v.V, v.N}
		for j, value := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return fmt.Errorf("bad vertex coordinates: %w", err)
			}
			if err := f.SetCellValue(vertexSheet, cell, value); err != nil {
				return fmt.Errorf("failed to write vertex row: %w", err)
			}
		}
	}
	return nil
}
