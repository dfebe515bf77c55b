// Package resource holds the bundled resource tree and the engine that
// installs it into, or removes it from, a target directory.
package resource

import (
	"io/fs"
	"path"
	"strings"

	"github.com/pkg/errors"
)

type Kind int

const (
	KindFile Kind = iota
	KindDir
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is one path of the tree. Path is slash separated and relative to
// the tree root.
type Entry struct {
	Path string
	Kind Kind
	Size int64
}

func (e Entry) IsDir() bool { return e.Kind == KindDir }

// Tree is a read-only view of a set of files. It is built once by Load and
// never changes afterwards.
type Tree struct {
	fsys    fs.FS
	entries []Entry
	index   map[string]int
}

// Load walks fsys and records every file, plus every directory that has at
// least one file below it. Entries come out depth first, parents before
// children, siblings in lexical order.
func Load(fsys fs.FS) (*Tree, error) {
	t := &Tree{fsys: fsys, index: make(map[string]int)}

	var walked []Entry
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == "." {
			return nil
		}
		if d.IsDir() {
			walked = append(walked, Entry{Path: p, Kind: KindDir})
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		walked = append(walked, Entry{Path: p, Kind: KindFile, Size: info.Size()})
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "walking resource tree")
	}

	populated := make(map[string]bool)
	for _, e := range walked {
		if e.IsDir() {
			continue
		}
		for dir := path.Dir(e.Path); dir != "."; dir = path.Dir(dir) {
			populated[dir] = true
		}
	}

	for _, e := range walked {
		if e.IsDir() && !populated[e.Path] {
			continue
		}
		t.index[e.Path] = len(t.entries)
		t.entries = append(t.entries, e)
	}
	return t, nil
}

// Entries returns the pre-order sequence. The slice is a copy, callers may
// reorder it freely.
func (t *Tree) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Files returns the file entries only, in pre-order.
func (t *Tree) Files() []Entry {
	var out []Entry
	for _, e := range t.entries {
		if !e.IsDir() {
			out = append(out, e)
		}
	}
	return out
}

// Lookup finds the entry stored under p.
func (t *Tree) Lookup(p string) (Entry, bool) {
	i, ok := t.index[strings.TrimPrefix(p, "./")]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Read returns the contents of a file entry.
func (t *Tree) Read(e Entry) ([]byte, error) {
	stored, ok := t.Lookup(e.Path)
	if !ok || stored.IsDir() {
		return nil, errors.Wrapf(fs.ErrNotExist, "reading %s", e.Path)
	}
	data, err := fs.ReadFile(t.fsys, stored.Path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", e.Path)
	}
	return data, nil
}

func (t *Tree) Len() int { return len(t.entries) }

// Size is the total byte count of all files.
func (t *Tree) Size() int64 {
	var total int64
	for _, e := range t.entries {
		total += e.Size
	}
	return total
}
