package resource

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Logger is the subset of *log.Logger the engine writes to.
type Logger interface {
	Printf(format string, v ...any)
}

var discard Logger = log.New(io.Discard, "", 0)

// Engine installs and uninstalls a Tree. It keeps no state between calls.
type Engine struct {
	tree  *Tree
	debug Logger
	warn  Logger
}

// NewEngine returns an engine over t. Nil loggers are silenced.
func NewEngine(t *Tree, debug, warn Logger) *Engine {
	if debug == nil {
		debug = discard
	}
	if warn == nil {
		warn = discard
	}
	return &Engine{tree: t, debug: debug, warn: warn}
}

func (e *Engine) Tree() *Tree { return e.tree }

// Install writes every file of the tree below root, creating parent
// directories as needed and overwriting whatever is already there. It stops
// at the first error; files written so far are left in place.
func (e *Engine) Install(root string) error {
	for _, entry := range e.tree.Files() {
		e.debug.Printf("Found %s", entry.Path)

		data, err := e.tree.Read(entry)
		if err != nil {
			return err
		}

		dest := filepath.Join(root, filepath.FromSlash(entry.Path))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return errors.Wrapf(err, "creating parents of %s", dest)
		}
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return errors.Wrapf(err, "writing %s", dest)
		}
	}
	return nil
}

// Uninstall removes the tree's files from root and then every tree directory
// that ended up empty. Entries are handled deepest first, so a directory is
// only looked at once everything below it has been processed. Missing paths
// are skipped; directories holding anything else are kept.
func (e *Engine) Uninstall(root string) error {
	entries := e.tree.Entries()
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	for _, entry := range entries {
		full := filepath.Join(root, filepath.FromSlash(entry.Path))
		var err error
		if entry.IsDir() {
			err = e.removeDir(full)
		} else {
			err = e.removeFile(full)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) removeFile(full string) error {
	ok, err := Exists(full)
	if err != nil || !ok {
		return err
	}
	e.debug.Printf("Deleting file: %s", full)
	return errors.Wrapf(os.Remove(full), "removing %s", full)
}

func (e *Engine) removeDir(full string) error {
	ok, err := Exists(full)
	if err != nil || !ok {
		return err
	}
	empty, err := IsEmptyDir(full)
	if err != nil {
		return err
	}
	if !empty {
		e.warn.Printf("Keeping %s, it holds files that were not installed by us", full)
		return nil
	}
	e.debug.Printf("Deleting directory: %s", full)
	return errors.Wrapf(os.Remove(full), "removing %s", full)
}

// Exists reports whether p is present. A missing path is not an error;
// any other stat failure is.
func Exists(p string) (bool, error) {
	_, err := os.Lstat(p)
	switch {
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, errors.Wrapf(err, "stat %s", p)
	}
}

// IsEmptyDir reports whether the directory p has no children at all.
func IsEmptyDir(p string) (bool, error) {
	f, err := os.Open(p)
	if err != nil {
		return false, errors.Wrapf(err, "opening %s", p)
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", p)
	}
	return false, nil
}
