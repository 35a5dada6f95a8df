package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/latherlab/saponify/internal/model"
)

const recipeSheet = "Recipe"

// ExportXLSX writes the recipe and its calculation result as an Excel
// workbook with an oils table followed by the lye/water, additive and
// quality summaries.
func ExportXLSX(path string, r model.Recipe, res model.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recipeSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	row := 1
	setRow := func(values ...any) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(recipeSheet, cell, v); err != nil {
				return err
			}
		}
		row++
		return nil
	}

	if err := setRow("Recipe", r.Name); err != nil {
		return fmt.Errorf("write workbook header: %w", err)
	}
	row++
	if err := setRow("Oil", "Weight (g)", "Percent", "SAP", "Iodine"); err != nil {
		return fmt.Errorf("write workbook header: %w", err)
	}

	for _, o := range r.Oils {
		if err := setRow(o.Name, o.WeightG, o.Percent, o.SAPKoh, o.IodineValue); err != nil {
			return fmt.Errorf("write oil row: %w", err)
		}
	}
	if err := setRow("Total oils", res.TotalOilG); err != nil {
		return err
	}
	row++

	if res.CannotComputeLye {
		if err := setRow("Lye", "cannot compute (no SAP data)"); err != nil {
			return err
		}
	} else {
		summary := [][2]any{
			{"Lye (pure, g)", res.Lye.PureG},
			{"Lye (after superfat, g)", res.Lye.AfterSuperfatG},
			{"Lye (adjusted, g)", res.Lye.AdjustedG},
			{"Water (g)", res.WaterG},
			{"Batch yield (g)", res.BatchYieldG},
		}
		if res.Additives.ExtraLyeG > 0 {
			summary = append(summary, [2]any{"Lye with citric compensation (g) *", res.LyeWithCitricG})
		}
		for _, item := range summary {
			if err := setRow(item[0], item[1]); err != nil {
				return err
			}
		}
	}
	row++

	if res.Quality.HasData {
		if err := setRow("Quality index", "Value"); err != nil {
			return err
		}
		for _, idx := range model.QualityIndices {
			if err := setRow(string(idx), res.Quality.Indices[idx]); err != nil {
				return err
			}
		}
		if err := setRow("coverage %", res.Quality.CoveragePct); err != nil {
			return err
		}
	} else {
		if err := setRow("Quality", "no data"); err != nil {
			return err
		}
	}
	row++

	for _, warning := range res.Warnings {
		if err := setRow("Warning", warning); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
