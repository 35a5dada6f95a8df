package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/latherlab/saponify/internal/project"
)

func runBackup(args []string) error {
	fs, opts := baseFlags("backup")
	var restore bool
	fs.BoolVar(&restore, "restore", false, "restore from a backup file instead of creating one")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if restore {
		if opts.file == "" {
			return fmt.Errorf("backup -restore requires -f backup.json")
		}
		return restoreBackup(opts.file)
	}

	if opts.out == "" {
		return fmt.Errorf("backup requires -o backup.json")
	}
	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		return err
	}
	recipes, err := collectSnapshots(project.DefaultRecipesDir())
	if err != nil {
		return err
	}
	if err := project.ExportAllData(opts.out, cfg, recipes); err != nil {
		return err
	}
	fmt.Printf("Backed up config and %d recipes to %s\n", len(recipes), opts.out)
	return nil
}

// collectSnapshots loads every recipe snapshot under dir. Unreadable
// files are skipped with a note rather than failing the whole backup.
func collectSnapshots(dir string) ([]project.Snapshot, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var snaps []project.Snapshot
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".json") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		r, err := project.LoadRecipe(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		snaps = append(snaps, project.Snapshot{
			Version: project.SnapshotVersion,
			SavedAt: time.Now().UTC().Format(time.RFC3339),
			Recipe:  r,
		})
	}
	return snaps, nil
}

func restoreBackup(path string) error {
	backup, err := project.ImportAllData(path)
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(project.DefaultConfigPath(), backup.Config); err != nil {
		return err
	}
	for _, snap := range backup.Recipes {
		name := sanitizeFilename(snap.Recipe.Name) + "-" + snap.Recipe.ID + ".json"
		dest := filepath.Join(project.DefaultRecipesDir(), name)
		if err := project.SaveRecipe(dest, snap.Recipe); err != nil {
			return err
		}
	}
	fmt.Printf("Restored config and %d recipes from %s\n", len(backup.Recipes), path)
	return nil
}

// sanitizeFilename reduces a recipe name to a safe file stem.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "recipe"
	}
	return b.String()
}
