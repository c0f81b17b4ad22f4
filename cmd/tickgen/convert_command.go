package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tickgen/internal/config"
	"tickgen/internal/history"
	"tickgen/internal/logging"
	"tickgen/internal/output"
	"tickgen/internal/tickflow"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	var flags generationFlags
	var outDir string

	cmd := &cobra.Command{
		Use:   "convert <project>",
		Short: "Generate swaps and sections tickflow from a remix project",
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
			if strings.TrimSpace(outDir) != "" {
				expanded, err := config.ExpandPath(outDir)
				if err != nil {
					return fmt.Errorf("resolve --out: %w", err)
				}
				cfg.Paths.OutputDir = expanded
			}
			return runConvert(cmd, ctx, cfg, args[0])
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (overrides paths.output_dir)")
	return cmd
}

func runConvert(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, projectPath string) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	runID := history.NewRunID()
	cmd.SetContext(logging.WithRunID(cmd.Context(), runID))
	logger := logging.WithContext(cmd.Context(), logging.NewComponentLogger(ctx.loggerFor(cmd), "convert"))

	run := &history.Run{
		ID:        runID,
		InputPath: projectPath,
		Style:     cfg.Ticks.Style,
		Slots:     cfg.Engine.Slots,
		StartedAt: time.Now().UTC(),
	}

	fmt.Fprintln(out, renderBanner("TickGen", colorize))
	fmt.Fprintln(out, renderStatusLine("Input", statusInfo, projectPath, colorize))
	logger.Info("conversion started",
		logging.String("input", projectPath),
		logging.String("style", cfg.Ticks.Style),
		logging.Int("slots", cfg.Engine.Slots),
	)

	paths, result, err := convertAndWrite(cfg, projectPath)
	if result != nil {
		applyStats(run, result.Stats)
		logPlan(logger, result)
	}
	if err != nil {
		run.Status = history.StatusFailed
		run.ErrorMessage = err.Error()
		recordRun(cmd, ctx, cfg, run)
		fmt.Fprintln(out, renderStatusLine("Result", statusError, err.Error(), colorize))
		logger.Error("conversion failed", logging.Error(err))
		return err
	}

	run.Status = history.StatusSucceeded
	run.SwapsPath = paths[0]
	run.SectionsPath = paths[1]
	recordRun(cmd, ctx, cfg, run)

	printConvertSummary(out, run, result.Stats, colorize)
	fmt.Fprintln(out, renderBanner("Done :)", colorize))
	logger.Info("conversion finished",
		logging.String("swaps", run.SwapsPath),
		logging.String("sections", run.SectionsPath),
		logging.Int("boundaries", result.Stats.Boundaries),
		logging.Int("evictions", result.Stats.Evictions),
	)
	return nil
}

// convertAndWrite generates both documents and writes them only when
// generation succeeded.
func convertAndWrite(cfg *config.Config, projectPath string) ([]string, *tickflow.Result, error) {
	result, err := generateProject(cfg, projectPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, result, fmt.Errorf("create output directory: %w", err)
	}
	paths, err := output.NewWriter(cfg.Paths.OutputDir).Write(
		output.File{Name: cfg.Output.SwapsFile, Data: []byte(result.Swaps)},
		output.File{Name: cfg.Output.SectionsFile, Data: []byte(result.Sections)},
	)
	if err != nil {
		return nil, result, fmt.Errorf("write output: %w", err)
	}
	return paths, result, nil
}

func applyStats(run *history.Run, stats tickflow.Stats) {
	run.Boundaries = stats.Boundaries
	run.Cues = stats.Cues
	run.Evictions = stats.Evictions
	run.Preloads = stats.Preloads
	run.Stalls = stats.Stalls
	run.TotalTicks = stats.TotalTicks
}

func logPlan(logger *slog.Logger, result *tickflow.Result) {
	for _, step := range result.Plan.Steps {
		if ev := step.Eviction; ev != nil {
			logger.Debug("slot evicted",
				logging.Int("boundary", step.Boundary),
				logging.Int("slot", ev.Slot),
				logging.String("evicted", ev.Evicted),
				logging.String("loaded", ev.Loaded),
			)
		}
		if !step.Resident {
			logger.Warn("game not resident when its segment starts",
				logging.Int("boundary", step.Boundary),
				logging.String("game", step.Label),
			)
		}
	}
}

func recordRun(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, run *history.Run) {
	if !cfg.History.Enabled {
		return
	}
	logger := logging.WithContext(cmd.Context(), logging.NewComponentLogger(ctx.loggerFor(cmd), "history"))
	store, err := ctx.openHistory()
	if err != nil {
		logger.Warn("run not recorded", logging.Error(err))
		return
	}
	defer store.Close()
	run.FinishedAt = time.Now().UTC()
	if err := store.Record(cmd.Context(), run); err != nil {
		logger.Warn("run not recorded", logging.Error(err))
		return
	}
	logger.Debug("run recorded", logging.String("status", string(run.Status)))
}

func printConvertSummary(out io.Writer, run *history.Run, stats tickflow.Stats, colorize bool) {
	fmt.Fprintln(out, renderStatusLine("Swaps", statusOK, run.SwapsPath, colorize))
	fmt.Fprintln(out, renderStatusLine("Sections", statusOK, run.SectionsPath, colorize))
	fmt.Fprintln(out, renderStatusLine("Games", statusInfo,
		fmt.Sprintf("%d boundaries, %d cues, %d ticks", stats.Boundaries, stats.Cues, stats.TotalTicks), colorize))
	fmt.Fprintln(out, renderStatusLine("Slots", statusInfo,
		fmt.Sprintf("%d slots, %d preloads, %d evictions", run.Slots, stats.Preloads, stats.Evictions), colorize))
	if stats.Stalls > 0 {
		fmt.Fprintln(out, renderStatusLine("Stalls", statusWarn,
			fmt.Sprintf("%d games were not preloaded in time", stats.Stalls), colorize))
	}
	fmt.Fprintln(out, renderStatusLine("Run", statusInfo, run.ID, colorize))
}
