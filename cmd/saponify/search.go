package main

import (
	"fmt"
	"os"

	"github.com/latherlab/saponify/internal/catalog"
	"github.com/latherlab/saponify/internal/project"
)

func runSearch(args []string) error {
	fs, opts := baseFlags("search")
	var query string
	var limit int
	fs.StringVar(&query, "q", "", "search query")
	fs.IntVar(&limit, "limit", 10, "maximum number of results")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(query, limit)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("No ingredients match %q.\n", query)
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s %-12s %8s %8s\n", "Name", "Category", "SAP", "Iodine")
	for _, ing := range results {
		fmt.Fprintf(os.Stdout, "%-24s %-12s %8.0f %8.0f\n", ing.Name, ing.Category, ing.SAPKoh, ing.IodineValue)
		if opts.verbose && len(ing.FattyAcids) > 0 {
			fmt.Fprintf(os.Stdout, "    fatty acids: %v\n", ing.FattyAcids)
		}
	}
	return nil
}
