package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/latherlab/saponify/internal/engine"
	"github.com/latherlab/saponify/internal/model"
	"github.com/latherlab/saponify/internal/project"
	"github.com/latherlab/saponify/internal/session"
)

func runNudge(args []string) error {
	fs, opts := baseFlags("nudge")
	var preset, focusSpec string
	fs.StringVar(&preset, "preset", "", "quality preset: balanced, bubbly, gentle or hard")
	fs.StringVar(&focusSpec, "focus", "", "per-index focus, e.g. hardness=high,conditioning=low")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if opts.file == "" {
		return fmt.Errorf("nudge requires -f recipe.json")
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
	model.Reconcile(&recipe, model.EditEvent{})

	focus, err := parseFocus(focusSpec)
	if err != nil {
		return err
	}
	targets, err := engine.ResolveTargets(preset, focus, pol)
	if err != nil {
		return err
	}

	prop, err := engine.Nudge(recipe.Oils, targets, pol)
	if err != nil {
		return err
	}
	printProposal(os.Stdout, recipe, targets, prop)

	if opts.out != "" {
		sess := session.New(&recipe)
		sess.ApplyWeights(prop.Weights, "Nudge toward quality targets")
		model.Reconcile(&recipe, model.EditEvent{})
		recipe.Targets = targets
		if err := project.SaveRecipe(opts.out, recipe); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", opts.out)
	}
	return nil
}

// parseFocus parses "hardness=high,conditioning=low" into a focus map.
func parseFocus(spec string) (map[model.QualityIndex]string, error) {
	focus := map[model.QualityIndex]string{}
	if spec == "" {
		return focus, nil
	}
	for _, part := range strings.Split(spec, ",") {
		key, dir, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("focus entry %q must be index=low or index=high", part)
		}
		focus[model.QualityIndex(strings.ToLower(key))] = dir
	}
	return focus, nil
}

func printProposal(w *os.File, r model.Recipe, targets model.QualityTarget, prop engine.Proposal) {
	fmt.Fprintf(w, "Nudge proposal for %s\n\n", r.Name)

	fmt.Fprintf(w, "%-28s %10s %10s %8s\n", "Oil", "Before (g)", "After (g)", "Factor")
	for _, o := range r.Oils {
		after := prop.Weights[o.ID]
		factor, nudged := prop.Factors[o.ID]
		factorStr := "-"
		if nudged {
			factorStr = fmt.Sprintf("%.2f", factor)
		}
		fmt.Fprintf(w, "%-28s %10.2f %10.2f %8s\n", o.Name, o.WeightG, after, factorStr)
	}

	indices := make([]model.QualityIndex, 0, len(targets))
	for idx := range targets {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	fmt.Fprintf(w, "\n%-14s %8s %8s %8s\n", "Index", "Target", "Before", "After")
	for _, idx := range indices {
		fmt.Fprintf(w, "%-14s %8.0f %8.1f %8.1f\n", idx, targets[idx], prop.Before.Indices[idx], prop.After.Indices[idx])
	}
}
