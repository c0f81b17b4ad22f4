// Package output writes generated tickflow documents into the output
// directory. Writes are serialized across processes with an advisory lock
// file and a set of documents is staged in full before any is replaced.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"tickgen/internal/fileutil"
	"tickgen/internal/preflight"
)

// LockFileName is the advisory lock file created in the output directory.
const LockFileName = ".tickgen.lock"

// ErrLocked reports that another conversion holds the output directory.
var ErrLocked = errors.New("output directory is locked by another tickgen run")

// File is one document to write.
type File struct {
	Name string
	Data []byte
}

// Writer writes documents into a single directory.
type Writer struct {
	dir  string
	lock *flock.Flock
}

// NewWriter returns a writer for dir. The directory must already exist.
func NewWriter(dir string) *Writer {
	return &Writer{
		dir:  dir,
		lock: flock.New(filepath.Join(dir, LockFileName)),
	}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.dir }

// Write stores every file under the directory lock and returns their paths.
// Nothing is replaced when the directory fails its access check, is locked,
// or any document cannot be staged.
func (w *Writer) Write(files ...File) ([]string, error) {
	if check := preflight.CheckDirectoryAccess("output directory", w.dir); !check.Passed {
		return nil, fmt.Errorf("preflight: %s", check.Detail)
	}

	ok, err := w.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	defer func() {
		_ = w.lock.Unlock()
	}()

	paths := make([]string, 0, len(files))
	for _, f := range files {
		if f.Name == "" || filepath.Base(f.Name) != f.Name {
			return nil, fmt.Errorf("invalid output file name %q", f.Name)
		}
		path := filepath.Join(w.dir, f.Name)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return nil, fmt.Errorf("write %s: target is a directory", f.Name)
		}
		paths = append(paths, path)
	}

	// Stage every document before replacing any, so a failed write leaves the
	// previous set intact.
	temps := make([]string, 0, len(files))
	removeTemps := func() {
		for _, tmp := range temps {
			_ = os.Remove(tmp)
		}
	}
	for i, f := range files {
		tmp, err := fileutil.WriteTemp(paths[i], f.Data, 0o644)
		if err != nil {
			removeTemps()
			return nil, fmt.Errorf("write %s: %w", f.Name, err)
		}
		temps = append(temps, tmp)
	}
	for i, tmp := range temps {
		if err := os.Rename(tmp, paths[i]); err != nil {
			removeTemps()
			return paths[:i], fmt.Errorf("replace %s: %w", files[i].Name, err)
		}
	}
	return paths, nil
}
