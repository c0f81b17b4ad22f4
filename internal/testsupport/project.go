package testsupport

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"tickgen/internal/remix"
)

// Entity is one raw remix.json entity.
type Entity map[string]any

// Boundary returns a subtitle entity starting the named game at beat.
func Boundary(beat float64, label string) Entity {
	return Entity{"datamodel": remix.CategoryBoundary, "beat": beat, "subtitle": label, "track": 0, "width": 1.0}
}

// End returns the end-of-remix marker.
func End(beat float64) Entity {
	return Entity{"datamodel": remix.CategoryEnd, "beat": beat}
}

// Gameplay returns an ordinary gameplay cue.
func Gameplay(beat float64, datamodel string) Entity {
	return Entity{"datamodel": datamodel, "beat": beat, "track": 1}
}

// Boundaries builds one boundary per label, spaced step beats apart from
// start, followed by an end marker step beats after the last one.
func Boundaries(start, step float64, labels ...string) []Entity {
	out := make([]Entity, 0, len(labels)+1)
	beat := start
	for _, label := range labels {
		out = append(out, Boundary(beat, label))
		beat += step
	}
	return append(out, End(beat))
}

// ProjectJSON encodes entities as a remix.json document.
func ProjectJSON(t testing.TB, entities ...Entity) []byte {
	t.Helper()
	data, err := json.Marshal(map[string]any{"version": "v3.17.0", "entities": entities})
	if err != nil {
		t.Fatalf("marshal project: %v", err)
	}
	return data
}

// ProjectZip wraps the remix.json document in a .rhre3 zip container.
func ProjectZip(t testing.TB, entities ...Entity) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("music.bin"); err != nil {
		t.Fatalf("create music entry: %v", err)
	}
	w, err := zw.Create(remix.ProjectEntry)
	if err != nil {
		t.Fatalf("create project entry: %v", err)
	}
	if _, err := w.Write(ProjectJSON(t, entities...)); err != nil {
		t.Fatalf("write project entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

// WriteProject writes data under dir and returns the path.
func WriteProject(t testing.TB, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// Timeline decodes entities through the real decoder and builds a timeline.
func Timeline(t testing.TB, entities ...Entity) *remix.Timeline {
	t.Helper()
	cues, err := remix.Decode(ProjectJSON(t, entities...))
	if err != nil {
		t.Fatalf("decode project: %v", err)
	}
	tl, err := remix.NewTimeline(cues)
	if err != nil {
		t.Fatalf("build timeline: %v", err)
	}
	return tl
}
