// Package export renders computed envelope results into the formats
// consumed downstream: CSV, an xlsx workbook with a native chart, and
// a PNG diagram. No computation happens here; curves arrive fully
// ordered.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"govn/internal/envelope"
)

// WriteCSV writes every polyline of both envelopes plus the labeled
// vertices as flat CSV rows.
func WriteCSV(w io.Writer, res *envelope.Result) error {
	writer := csv.NewWriter(w)

	header := []string{"envelope", "curve", "speed_ms", "load_factor"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	writeCurves := func(set string, curves []envelope.Curve) error {
		for _, curve := range curves {
			for _, pt := range curve.Points {
				row := []string{
					set,
					curve.Name,
					fmt.Sprintf("%.4f", pt.V),
					fmt.Sprintf("%.6f", pt.N),
				}
				if err := writer.Write(row); err != nil {
					return fmt.Errorf("failed to write CSV row: %w", err)
				}
			}
		}
		return nil
	}

	if err := writeCurves("basic", res.Basic); err != nil {
		return err
	}
	if err := writeCurves("gust", res.Gust); err != nil {
		return err
	}

	for _, v := range res.Vertices {
		row := []string{
			"vertex",
			v.Label,
			fmt.Sprintf("%.4f", v.V),
			fmt.Sprintf("%.6f", v.N),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}
