package main

import (
	"fmt"
	"os"

	"github.com/latherlab/saponify/internal/export"
	"github.com/latherlab/saponify/internal/model"
	"github.com/latherlab/saponify/internal/project"
)

func runCalc(args []string) error {
	fs, opts := baseFlags("calc")
	var csvOut, pdfOut, xlsxOut string
	fs.StringVar(&csvOut, "csv", "", "write the result as CSV to this path")
	fs.StringVar(&pdfOut, "pdf", "", "write a printable recipe sheet to this path")
	fs.StringVar(&xlsxOut, "xlsx", "", "write an Excel workbook to this path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.file == "" {
		return fmt.Errorf("calc requires -f recipe.json")
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	pol, err := loadPolicy(opts, cfg)
	if err != nil {
		return err
	}
	recipe, err := project.LoadRecipe(opts.file)
	if err != nil {
		return err
	}

	// Bring the ledger to a computable state before calculating; a
	// loaded snapshot carries no pending edit.
	model.Reconcile(&recipe, model.EditEvent{})
	res := model.Calculate(&recipe, pol)

	unit := recipe.DisplayUnit
	if opts.unit != "" {
		unit = model.Unit(opts.unit)
	}
	printResult(os.Stdout, recipe, res, unit)

	if res.CannotComputeLye {
		return fmt.Errorf("cannot compute lye: no oil has a known SAP value")
	}

	if csvOut != "" {
		if err := export.ExportCSV(csvOut, recipe, res); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", csvOut)
	}
	if pdfOut != "" {
		if err := export.ExportPDF(pdfOut, recipe, res); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", pdfOut)
	}
	if xlsxOut != "" {
		if err := export.ExportXLSX(xlsxOut, recipe, res); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", xlsxOut)
	}

	cfg.AddRecentRecipe(opts.file)
	if err := project.SaveAppConfig(project.DefaultConfigPath(), cfg); err != nil && opts.verbose {
		fmt.Fprintf(os.Stderr, "warning: could not update recent recipes: %v\n", err)
	}
	return nil
}

func printResult(w *os.File, r model.Recipe, res model.Result, unit model.Unit) {
	fmt.Fprintf(w, "Recipe: %s\n\n", r.Name)

	fmt.Fprintf(w, "%-28s %12s %9s\n", "Oil", "Weight ("+string(unit)+")", "Percent")
	for _, o := range res.Oils {
		fmt.Fprintf(w, "%-28s %12.2f %8.1f%%\n", o.Name, model.FromGrams(o.WeightG, unit), o.Percent)
	}
	fmt.Fprintf(w, "%-28s %12.2f\n\n", "Total oils", model.FromGrams(res.TotalOilG, unit))

	if res.CannotComputeLye {
		fmt.Fprintln(w, "Lye: cannot compute (no SAP data)")
	} else {
		fmt.Fprintf(w, "Lye (pure):        %9.2f %s\n", model.FromGrams(res.Lye.PureG, unit), unit)
		fmt.Fprintf(w, "Lye (adjusted):    %9.2f %s\n", model.FromGrams(res.Lye.AdjustedG, unit), unit)
		if res.Additives.ExtraLyeG > 0 {
			fmt.Fprintf(w, "Lye incl. citric*: %9.2f %s\n", model.FromGrams(res.LyeWithCitricG, unit), unit)
		}
		fmt.Fprintf(w, "Water:             %9.2f %s\n", model.FromGrams(res.WaterG, unit), unit)
		fmt.Fprintf(w, "Batch yield:       %9.2f %s\n", model.FromGrams(res.BatchYieldG, unit), unit)
	}

	fmt.Fprintln(w)
	if res.Quality.HasData {
		fmt.Fprintf(w, "Quality (coverage %.0f%%):\n", res.Quality.CoveragePct)
		for _, idx := range model.QualityIndices {
			fmt.Fprintf(w, "  %-14s %6.1f\n", idx, res.Quality.Indices[idx])
		}
		if res.Quality.HasIodine {
			fmt.Fprintf(w, "  %-14s %6.1f\n", "iodine", res.Quality.IodineValue)
		}
		if res.Quality.HasINS {
			fmt.Fprintf(w, "  %-14s %6.1f\n", "INS", res.Quality.INS)
		}
	} else {
		fmt.Fprintln(w, "Quality: no data")
	}

	for _, warning := range res.Warnings {
		fmt.Fprintf(w, "\n! %s", warning)
	}
	if len(res.Warnings) > 0 {
		fmt.Fprintln(w)
	}
}
