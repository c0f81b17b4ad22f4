package tickflow_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"tickgen/internal/remix"
	"tickgen/internal/routine"
	"tickgen/internal/sections"
	"tickgen/internal/testsupport"
	"tickgen/internal/tickflow"
	"tickgen/internal/ticks"
)

func sampleTimeline(t *testing.T) *remix.Timeline {
	t.Helper()
	return testsupport.Timeline(t,
		testsupport.Boundary(0, "karate"),
		testsupport.Gameplay(1, "karateman_pot"),
		testsupport.Gameplay(2, "karateman_pot"),
		testsupport.Boundary(4, "tap"),
		testsupport.Gameplay(5, "tapTrial_tap"),
		testsupport.End(8),
	)
}

func TestGenerateEndToEnd(t *testing.T) {
	result, err := tickflow.Generate(sampleTimeline(t), tickflow.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	wantSwaps := "rest quarter\n" +
		"async_call startingGame\n" +
		"rest 192\n" +
		"\n" +
		"call swapEngine\n" +
		"engine engID_tap\n" +
		"sub 4\n" +
		"0x29<2>\n" +
		"async_call section02\n" +
		"rest 192\n" +
		"\n"
	if result.Swaps != wantSwaps {
		t.Fatalf("unexpected swaps:\n%q\nwant:\n%q", result.Swaps, wantSwaps)
	}

	wantSections := "startingGame:\n" +
		"0x8F 3\n" +
		"fade<1> 7, 1, quarter\n" +
		"rest half\n" +
		"input 1\n" +
		"async_sub 0x53\n" +
		"rest half\n" +
		"\n" +
		"play_sfx 0x1000291\n" +
		"rest 48\n" +
		"\n" +
		"play_sfx 0x1000291\n" +
		"stop\n" +
		"\n\n" +
		"section02:\n" +
		"call defaultGameSetup\n" +
		"// async_call metronome\n" +
		"play_sfx 0x1000291\n" +
		"stop\n" +
		"\n\n"
	if result.Sections != wantSections {
		t.Fatalf("unexpected sections:\n%q\nwant:\n%q", result.Sections, wantSections)
	}

	want := tickflow.Stats{Boundaries: 2, Cues: 3, TotalTicks: 384}
	if result.Stats != want {
		t.Fatalf("unexpected stats %+v", result.Stats)
	}
}

func TestGenerateHexStyle(t *testing.T) {
	opts := tickflow.DefaultOptions()
	opts.Style = ticks.StyleHex
	result, err := tickflow.Generate(sampleTimeline(t), opts)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(result.Swaps, "rest 0xC0\n") {
		t.Fatalf("expected hex rest in swaps:\n%s", result.Swaps)
	}
	if !strings.Contains(result.Sections, "rest 0x30\n") {
		t.Fatalf("expected hex rest in sections:\n%s", result.Sections)
	}
}

func TestGenerateStrictRejectsUnknownSpecials(t *testing.T) {
	tl := testsupport.Timeline(t,
		testsupport.Boundary(0, "karate"),
		testsupport.Gameplay(1, "special_mystery"),
		testsupport.End(4),
	)
	opts := tickflow.DefaultOptions()
	if _, err := tickflow.Generate(tl, opts); err != nil {
		t.Fatalf("lenient mode should accept unknown specials: %v", err)
	}

	opts.Strict = true
	opts.KnownSpecials = []string{"special_tempoChange"}
	result, err := tickflow.Generate(tl, opts)
	if !errors.Is(err, remix.ErrUnrecognizedCategory) {
		t.Fatalf("expected ErrUnrecognizedCategory, got %v", err)
	}
	if result != nil {
		t.Fatal("expected no partial result on error")
	}
}

func TestGenerateFailsWithoutPartialResult(t *testing.T) {
	tl := testsupport.Timeline(t, testsupport.Boundary(0, "karate"), testsupport.Boundary(4, "tap"))
	result, err := tickflow.Generate(tl, tickflow.DefaultOptions())
	if !errors.Is(err, remix.ErrMissingEndMarker) {
		t.Fatalf("expected ErrMissingEndMarker, got %v", err)
	}
	if result != nil {
		t.Fatal("expected nil result")
	}
}

func TestFromConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithStyle("note"), testsupport.WithSplitRests(true), testsupport.WithSlots(6))
	cfg.Emitter.Placeholder = "sub"
	cfg.Emitter.Metronome = true
	cfg.Validation.Strict = true

	opts, err := tickflow.FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig returned error: %v", err)
	}
	if opts.Slots != 6 || opts.Style != ticks.StyleNote || !opts.Split {
		t.Fatalf("unexpected tick options %+v", opts)
	}
	if opts.Placeholder != sections.PlaceholderSub || !opts.Metronome || !opts.Strict {
		t.Fatalf("unexpected emitter options %+v", opts)
	}
	if !reflect.DeepEqual(opts.Names, routine.Default()) {
		t.Fatalf("unexpected names %+v", opts.Names)
	}
	if !reflect.DeepEqual(opts.KnownSpecials, cfg.Validation.KnownSpecials) {
		t.Fatalf("unexpected known specials %v", opts.KnownSpecials)
	}

	cfg.Ticks.Style = "roman"
	if _, err := tickflow.FromConfig(cfg); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

func TestDefaultOptionsMatchDefaultConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	opts, err := tickflow.FromConfig(cfg)
	if err != nil {
		t.Fatalf("FromConfig returned error: %v", err)
	}
	opts.KnownSpecials = nil
	if !reflect.DeepEqual(opts, tickflow.DefaultOptions()) {
		t.Fatalf("default config options %+v differ from DefaultOptions %+v", opts, tickflow.DefaultOptions())
	}
}
