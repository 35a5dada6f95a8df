// Package export renders a calculation result to the formats the
// recipe leaves the application in: CSV for spreadsheets, XLSX
// workbooks, and a printable PDF recipe sheet with a QR-coded snapshot.
// The engine's result is the sole input; nothing here recomputes.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/latherlab/saponify/internal/model"
)

// WriteCSV writes the recipe and its calculation result as CSV
// sections: oils, lye & water, additives, quality, warnings.
func WriteCSV(w io.Writer, r model.Recipe, res model.Result) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Recipe", r.Name},
		{},
		{"Oil", "Weight (g)", "Percent", "SAP (mg KOH/g)", "Iodine"},
	}
	for _, o := range r.Oils {
		rows = append(rows, []string{
			o.Name,
			fmt.Sprintf("%.2f", o.WeightG),
			fmt.Sprintf("%.2f", o.Percent),
			numOrBlank(o.SAPKoh),
			numOrBlank(o.IodineValue),
		})
	}
	rows = append(rows,
		[]string{"Total oils", fmt.Sprintf("%.2f", res.TotalOilG)},
		{},
	)

	if res.CannotComputeLye {
		rows = append(rows, []string{"Lye", "cannot compute (no SAP data)"})
	} else {
		rows = append(rows,
			[]string{"Lye (pure)", fmt.Sprintf("%.2f", res.Lye.PureG)},
			[]string{"Lye (after superfat)", fmt.Sprintf("%.2f", res.Lye.AfterSuperfatG)},
			[]string{"Lye (adjusted)", fmt.Sprintf("%.2f", res.Lye.AdjustedG)},
		)
		if res.Additives.ExtraLyeG > 0 {
			rows = append(rows, []string{"Lye (with citric compensation) *", fmt.Sprintf("%.2f", res.LyeWithCitricG)})
		}
		rows = append(rows,
			[]string{"Water", fmt.Sprintf("%.2f", res.WaterG)},
			[]string{"Batch yield", fmt.Sprintf("%.2f", res.BatchYieldG)},
		)
	}
	rows = append(rows, []string{})

	if res.Additives.TotalG > 0 {
		rows = append(rows,
			[]string{"Additive", "Weight (g)"},
			[]string{"Fragrance", fmt.Sprintf("%.2f", res.Additives.FragranceG)},
			[]string{"Sodium lactate", fmt.Sprintf("%.2f", res.Additives.LactateG)},
			[]string{"Sugar", fmt.Sprintf("%.2f", res.Additives.SugarG)},
			[]string{"Salt", fmt.Sprintf("%.2f", res.Additives.SaltG)},
			[]string{"Citric acid", fmt.Sprintf("%.2f", res.Additives.CitricG)},
			[]string{},
		)
	}

	if res.Quality.HasData {
		rows = append(rows, []string{"Quality index", "Value"})
		for _, idx := range model.QualityIndices {
			rows = append(rows, []string{string(idx), fmt.Sprintf("%.1f", res.Quality.Indices[idx])})
		}
		rows = append(rows, []string{"coverage %", fmt.Sprintf("%.1f", res.Quality.CoveragePct)})
		if res.Quality.HasIodine {
			rows = append(rows, []string{"iodine", fmt.Sprintf("%.1f", res.Quality.IodineValue)})
		}
		if res.Quality.HasINS {
			rows = append(rows, []string{"INS", fmt.Sprintf("%.1f", res.Quality.INS)})
		}
		rows = append(rows, []string{})
	} else {
		rows = append(rows, []string{"Quality", "no data"}, []string{})
	}

	for _, warning := range res.Warnings {
		rows = append(rows, []string{"Warning", warning})
	}

	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the CSV rendition to a file.
func ExportCSV(path string, r model.Recipe, res model.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer f.Close()
	return WriteCSV(f, r, res)
}

func numOrBlank(v float64) string {
	if v <= 0 {
		return ""
	}
	return fmt.Sprintf("%.1f", v)
}
