package main

import (
	"fmt"
	"os"

	"github.com/latherlab/saponify/internal/importer"
	"github.com/latherlab/saponify/internal/model"
	"github.com/latherlab/saponify/internal/project"
)

func runImport(args []string) error {
	fs, opts := baseFlags("import")
	var legacyPath, name string
	fs.StringVar(&legacyPath, "legacy", "", "path to a legacy web calculator JSON dump")
	fs.StringVar(&name, "name", "", "name for the imported recipe")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.out == "" {
		return fmt.Errorf("import requires -o recipe.json")
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}

	var recipe model.Recipe
	if legacyPath != "" {
		recipe, err = importer.ImportWebSnapshotFile(legacyPath)
		if err != nil {
			return err
		}
	} else {
		if opts.file == "" {
			return fmt.Errorf("import requires -f oils.csv or -legacy dump.json")
		}
		res, err := importer.Import(opts.file)
		if err != nil {
			return err
		}
		for _, msg := range res.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
		}
		for _, msg := range res.Errors {
			fmt.Fprintf(os.Stderr, "error: %s\n", msg)
		}
		if len(res.Oils) == 0 {
			return fmt.Errorf("no usable oil rows in %s", opts.file)
		}
		recipe = model.NewRecipe()
		cfg.ApplyToRecipe(&recipe)
		recipe.Oils = res.Oils
		fmt.Printf("Imported %d oils (%d rows skipped)\n", len(res.Oils), len(res.Errors))
	}
	if name != "" {
		recipe.Name = name
	}

	model.Reconcile(&recipe, model.EditEvent{})
	if err := project.SaveRecipe(opts.out, recipe); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", opts.out)
	return nil
}
