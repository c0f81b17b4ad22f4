package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tickgen/internal/config"
	"tickgen/internal/remix"
	"tickgen/internal/tickflow"
	"tickgen/internal/ticks"
)

// generationFlags are the per-invocation overrides shared by convert and plan.
type generationFlags struct {
	style  string
	split  bool
	slots  int
	strict bool
}

func (f *generationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.style, "style", "", "Tick literal style (int, hex, note)")
	cmd.Flags().BoolVar(&f.split, "split", false, "Split rests into note-sized chunks")
	cmd.Flags().IntVar(&f.slots, "slots", 0, "Engine slot count")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Reject unrecognized special cue categories")
}

// apply returns a copy of cfg with the flags the user set.
func (f *generationFlags) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	local := *cfg
	flags := cmd.Flags()
	if flags.Changed("style") {
		style, err := ticks.ParseStyle(f.style)
		if err != nil {
			return nil, fmt.Errorf("--style: %w", err)
		}
		local.Ticks.Style = style.String()
	}
	if flags.Changed("split") {
		local.Ticks.SplitRests = f.split
	}
	if flags.Changed("slots") {
		local.Engine.Slots = f.slots
	}
	if flags.Changed("strict") {
		local.Validation.Strict = f.strict
	}
	if err := local.Validate(); err != nil {
		return nil, err
	}
	return &local, nil
}

// generateProject loads the project at path and runs the generator.
func generateProject(cfg *config.Config, path string) (*tickflow.Result, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("project path is required")
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("resolve project path: %w", err)
	}
	cues, err := remix.Load(expanded)
	if err != nil {
		return nil, err
	}
	tl, err := remix.NewTimeline(cues)
	if err != nil {
		return nil, fmt.Errorf("build timeline: %w", err)
	}
	opts, err := tickflow.FromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return tickflow.Generate(tl, opts)
}
