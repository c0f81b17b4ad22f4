package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tickgen/internal/history"
	"tickgen/internal/testsupport"
)

func TestConvertWritesOutputAndRecordsRun(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"convert", env.project}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	requireContains(t, out, "======== TickGen ========")
	requireContains(t, out, "6 boundaries, 2 cues")
	requireContains(t, out, "Done :)")

	swaps, err := os.ReadFile(filepath.Join(env.cfg.Paths.OutputDir, "swaps.txt"))
	if err != nil {
		t.Fatalf("read swaps: %v", err)
	}
	requireContains(t, string(swaps), "async_call startingGame\n")
	requireContains(t, string(swaps), "async_call E_slot1\n")

	cues, err := os.ReadFile(filepath.Join(env.cfg.Paths.OutputDir, "cues.txt"))
	if err != nil {
		t.Fatalf("read cues: %v", err)
	}
	requireContains(t, string(cues), "section06:\n")

	store := testsupport.MustOpenHistory(t, env.cfg)
	runs, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected one recorded run, got %d", len(runs))
	}
	if runs[0].Status != history.StatusSucceeded || runs[0].Evictions != 1 || runs[0].Boundaries != 6 {
		t.Fatalf("unexpected run %#v", runs[0])
	}
}

func TestConvertFlagsOverrideConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	outDir := filepath.Join(env.baseDir, "custom")

	_, _, err := runCLI(t, []string{"convert", env.project, "--out", outDir, "--style", "hex"}, env.configPath)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	swaps, err := os.ReadFile(filepath.Join(outDir, "swaps.txt"))
	if err != nil {
		t.Fatalf("read swaps: %v", err)
	}
	requireContains(t, string(swaps), "rest 0x60\n")
}

func TestConvertFailureWritesNothing(t *testing.T) {
	env := setupCLITestEnv(t)
	broken := testsupport.WriteProject(t, env.baseDir, "broken.rhre3",
		testsupport.ProjectJSON(t, testsupport.Boundary(0, "A"), testsupport.Boundary(4, "B")))

	_, _, err := runCLI(t, []string{"convert", broken}, env.configPath)
	if err == nil {
		t.Fatal("expected convert to fail without an end marker")
	}
	if _, statErr := os.Stat(filepath.Join(env.cfg.Paths.OutputDir, "swaps.txt")); !os.IsNotExist(statErr) {
		t.Fatal("expected no swaps output after failure")
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	runs, err := store.List(context.Background(), 0)
	if err != nil {
		t.Fatalf("list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Status != history.StatusFailed || runs[0].ErrorMessage == "" {
		t.Fatalf("expected failed run to be recorded, got %#v", runs)
	}
}

func TestConvertRejectsInvalidStyleFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"convert", env.project, "--style", "roman"}, env.configPath); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestConvertWithHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithHistoryDisabled())
	if _, _, err := runCLI(t, []string{"convert", env.project}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if _, err := os.Stat(env.cfg.Paths.HistoryDB); !os.IsNotExist(err) {
		t.Fatal("expected no history database when history is disabled")
	}
}

func TestConvertLogsCarryRunID(t *testing.T) {
	env := setupCLITestEnv(t)
	env.cfg.Logging.File = true
	env.cfg.Logging.Level = "debug"
	writeTestConfig(t, env.configPath, env.cfg)

	if _, _, err := runCLI(t, []string{"convert", env.project}, env.configPath); err != nil {
		t.Fatalf("convert: %v", err)
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	runs, err := store.List(context.Background(), 0)
	if err != nil || len(runs) != 1 {
		t.Fatalf("list runs: %v (%d runs)", err, len(runs))
	}

	content, err := os.ReadFile(filepath.Join(env.cfg.Paths.LogDir, "tickgen.log"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := strings.Split(string(content), "\n")
	for _, prefix := range []string{"convert: conversion finished", "history: run recorded"} {
		found := false
		for _, line := range lines {
			if strings.Contains(line, prefix) {
				found = true
				requireContains(t, line, "run_id="+runs[0].ID)
			}
		}
		if !found {
			t.Fatalf("expected a %q log line in %q", prefix, content)
		}
	}
}
