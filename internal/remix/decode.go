package remix

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ProjectEntry is the name of the timeline document inside a .rhre3 container.
const ProjectEntry = "remix.json"

type rawProject struct {
	Entities []map[string]any `json:"entities"`
}

// Load reads and decodes a project file from disk.
func Load(path string) ([]Cue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project: %w", err)
	}
	return Decode(data)
}

// Decode accepts either a zip container or a bare JSON document and returns
// the cues in entity order.
func Decode(data []byte) ([]Cue, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	switch {
	case bytes.HasPrefix(data, []byte("PK")):
		doc, err := extractProject(data)
		if err != nil {
			return nil, err
		}
		return decodeJSON(doc)
	case bytes.HasPrefix(trimmed, []byte("{")):
		return decodeJSON(trimmed)
	default:
		return nil, fmt.Errorf("%w: not a zip container or JSON document", ErrInvalidProject)
	}
}

func extractProject(data []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: open container: %w", ErrInvalidProject, err)
	}
	for _, file := range zr.File {
		if !strings.EqualFold(file.Name, ProjectEntry) {
			continue
		}
		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", ProjectEntry, err)
		}
		doc, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", ProjectEntry, err)
		}
		return doc, nil
	}
	return nil, fmt.Errorf("%w: container missing %s", ErrInvalidProject, ProjectEntry)
}

func decodeJSON(doc []byte) ([]Cue, error) {
	var raw rawProject
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrInvalidProject, err)
	}
	if raw.Entities == nil {
		return nil, fmt.Errorf("%w: missing entities", ErrInvalidProject)
	}
	cues := make([]Cue, 0, len(raw.Entities))
	for i, entity := range raw.Entities {
		cue, err := decodeCue(i, entity)
		if err != nil {
			return nil, err
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func decodeCue(index int, entity map[string]any) (Cue, error) {
	beat, ok := entity["beat"].(float64)
	if !ok {
		return Cue{}, AtCue(ErrInvalidProject, index, 0, errors.New("beat is missing or not a number"))
	}
	category, _ := entity["datamodel"].(string)
	fields := make(map[string]any, len(entity))
	for key, value := range entity {
		if key == "beat" || key == "datamodel" {
			continue
		}
		fields[key] = value
	}
	return Cue{Index: index, Beat: beat, Category: category, Fields: fields}, nil
}
