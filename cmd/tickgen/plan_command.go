package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tickgen/internal/slots"
	"tickgen/internal/tickflow"
)

type planStepView struct {
	Boundary  int      `json:"boundary" yaml:"boundary"`
	Beat      float64  `json:"beat" yaml:"beat"`
	Game      string   `json:"game" yaml:"game"`
	Resident  bool     `json:"resident" yaml:"resident"`
	Preload   string   `json:"preload,omitempty" yaml:"preload,omitempty"`
	Evicted   string   `json:"evicted,omitempty" yaml:"evicted,omitempty"`
	Slot      *int     `json:"slot,omitempty" yaml:"slot,omitempty"`
	RestTicks int      `json:"rest_ticks" yaml:"rest_ticks"`
	Slots     []string `json:"slots" yaml:"slots"`
}

type planView struct {
	SlotCount int            `json:"slot_count" yaml:"slot_count"`
	Stats     tickflow.Stats `json:"stats" yaml:"stats"`
	Steps     []planStepView `json:"steps" yaml:"steps"`
}

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var flags generationFlags
	var format string

	cmd := &cobra.Command{
		Use:   "plan <project>",
		Short: "Show the slot schedule without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg, err := flags.apply(cmd, base)
			if err != nil {
				return err
			}
			result, err := generateProject(cfg, args[0])
			if err != nil {
				return err
			}

			view := buildPlanView(result)
			if handled, err := writeStructured(cmd, format, view); handled || err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderPlanTable(result.Plan))
			fmt.Fprintf(out, "%d boundaries, %d preloads, %d evictions, %d stalls\n",
				view.Stats.Boundaries, view.Stats.Preloads, view.Stats.Evictions, view.Stats.Stalls)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func buildPlanView(result *tickflow.Result) planView {
	view := planView{
		SlotCount: result.Plan.SlotCount,
		Stats:     result.Stats,
		Steps:     make([]planStepView, 0, len(result.Plan.Steps)),
	}
	for _, step := range result.Plan.Steps {
		sv := planStepView{
			Boundary:  step.Boundary,
			Beat:      step.Beat,
			Game:      step.Label,
			Resident:  step.Resident,
			Preload:   step.Preload,
			RestTicks: step.RestTicks,
			Slots:     step.Slots,
		}
		if step.Preload != "" {
			slot := step.PreloadSlot
			sv.Slot = &slot
		}
		if step.Eviction != nil {
			sv.Evicted = step.Eviction.Evicted
		}
		view.Steps = append(view.Steps, sv)
	}
	return view
}

func renderPlanTable(plan *slots.Plan) string {
	headers := []string{"#", "Beat", "Game", "Preload", "Evicted", "Rest", "Slots"}
	aligns := []columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
	rows := make([][]string, 0, len(plan.Steps))
	for _, step := range plan.Steps {
		game := step.Label
		if !step.Resident {
			game += " (stall)"
		}
		preload, evicted := "", ""
		if step.Preload != "" {
			preload = fmt.Sprintf("%s -> %d", step.Preload, step.PreloadSlot)
		}
		if step.Eviction != nil {
			evicted = step.Eviction.Evicted
		}
		rows = append(rows, []string{
			strconv.Itoa(step.Boundary),
			strconv.FormatFloat(step.Beat, 'g', -1, 64),
			game,
			preload,
			evicted,
			strconv.Itoa(step.RestTicks),
			formatSlots(step.Slots),
		})
	}
	return renderTable(headers, rows, aligns)
}

func formatSlots(contents []string) string {
	parts := make([]string, len(contents))
	for i, label := range contents {
		if label == "" {
			label = "-"
		}
		parts[i] = fmt.Sprintf("%d:%s", i, label)
	}
	return strings.Join(parts, " ")
}
