package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"tickgen/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded conversion runs",
	}
	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent conversion runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if handled, err := writeStructured(cmd, format, runs); handled || err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}
			fmt.Fprintln(out, renderRunTable(runs))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one conversion run (ID prefixes are accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openHistory()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if handled, err := writeStructured(cmd, format, run); handled || err != nil {
				return err
			}
			printRun(cmd.OutOrStdout(), run)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	return cmd
}

func renderRunTable(runs []*history.Run) string {
	headers := []string{"ID", "Started", "Status", "Input", "Games", "Evictions", "Duration"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			string(run.Status),
			filepath.Base(run.InputPath),
			strconv.Itoa(run.Boundaries),
			strconv.Itoa(run.Evictions),
			run.Duration().Round(time.Millisecond).String(),
		})
	}
	return renderTable(headers, rows, aligns)
}

func printRun(out io.Writer, run *history.Run) {
	fmt.Fprintf(out, "Run:        %s\n", run.ID)
	fmt.Fprintf(out, "Status:     %s\n", run.Status)
	fmt.Fprintf(out, "Input:      %s\n", run.InputPath)
	fmt.Fprintf(out, "Started:    %s\n", run.StartedAt.Local().Format(time.RFC3339))
	fmt.Fprintf(out, "Duration:   %s\n", run.Duration().Round(time.Millisecond))
	if run.Style != "" {
		fmt.Fprintf(out, "Style:      %s\n", run.Style)
	}
	fmt.Fprintf(out, "Slots:      %d\n", run.Slots)
	fmt.Fprintf(out, "Boundaries: %d\n", run.Boundaries)
	fmt.Fprintf(out, "Cues:       %d\n", run.Cues)
	fmt.Fprintf(out, "Preloads:   %d\n", run.Preloads)
	fmt.Fprintf(out, "Evictions:  %d\n", run.Evictions)
	fmt.Fprintf(out, "Stalls:     %d\n", run.Stalls)
	fmt.Fprintf(out, "Ticks:      %d\n", run.TotalTicks)
	if run.SwapsPath != "" {
		fmt.Fprintf(out, "Swaps:      %s\n", run.SwapsPath)
	}
	if run.SectionsPath != "" {
		fmt.Fprintf(out, "Sections:   %s\n", run.SectionsPath)
	}
	if run.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:      %s\n", run.ErrorMessage)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
