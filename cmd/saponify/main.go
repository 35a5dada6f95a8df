// saponify - soap formulation calculator
//
// Computes lye and water requirements, quality indices and additive
// amounts for a blend of fats and oils, with catalog search, recipe
// import/export and a quality-target nudge.
//
// Build:
//   go build -o saponify ./cmd/saponify
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/latherlab/saponify/internal/policy"
	"github.com/latherlab/saponify/internal/project"
)

const version = "0.1.0"

type commandOptions struct {
	file       string
	out        string
	policyFile string
	unit       string
	verbose    bool
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "calc":
		if err := runCalc(os.Args[2:]); err != nil {
			fail(err)
		}
	case "search":
		if err := runSearch(os.Args[2:]); err != nil {
			fail(err)
		}
	case "import":
		if err := runImport(os.Args[2:]); err != nil {
			fail(err)
		}
	case "nudge":
		if err := runNudge(os.Args[2:]); err != nil {
			fail(err)
		}
	case "backup":
		if err := runBackup(os.Args[2:]); err != nil {
			fail(err)
		}
	case "version":
		fmt.Println(version)
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "saponify - soap formulation calculator")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  saponify calc   -f recipe.json [-csv out.csv] [-pdf out.pdf] [-xlsx out.xlsx] [-unit g|oz|lb]")
	fmt.Fprintln(os.Stderr, "  saponify search -q olive")
	fmt.Fprintln(os.Stderr, "  saponify import -f oils.csv -o recipe.json")
	fmt.Fprintln(os.Stderr, "  saponify import -legacy dump.json -o recipe.json")
	fmt.Fprintln(os.Stderr, "  saponify nudge  -f recipe.json -preset bubbly [-o nudged.json]")
	fmt.Fprintln(os.Stderr, "  saponify backup -o backup.json")
}

func baseFlags(cmd string) (*flag.FlagSet, *commandOptions) {
	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	opts := &commandOptions{}
	fs.StringVar(&opts.file, "f", "", "path to recipe snapshot")
	fs.StringVar(&opts.out, "o", "", "output path")
	fs.StringVar(&opts.policyFile, "policy", "", "path to a YAML policy override file")
	fs.StringVar(&opts.unit, "unit", "", "display unit: g, oz or lb")
	fs.BoolVar(&opts.verbose, "verbose", false, "verbose output")
	return fs, opts
}

// loadPolicy resolves the policy tables: an explicit -policy flag wins,
// then the app config's policy path, then the built-in defaults.
func loadPolicy(opts *commandOptions, cfg project.AppConfig) (*policy.Tables, error) {
	path := opts.policyFile
	if path == "" {
		path = cfg.PolicyPath
	}
	if path == "" {
		return policy.Default(), nil
	}
	return policy.Load(path)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
