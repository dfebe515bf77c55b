// Package libs copies the game's managed assemblies out of an installation,
// leaving out the ones that ship with Unity itself. Plugin builds reference
// the copies instead of the live game files.
package libs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	cp "github.com/otiai10/copy"
	"github.com/pkg/errors"
)

// ManagedDir is where the game keeps its .NET assemblies.
var ManagedDir = filepath.Join("Hearthstone_Data", "Managed")

// Options controls Export. Exclude is a directory whose file names are not
// copied; it may be missing.
type Options struct {
	GameDir string
	OutDir  string
	Exclude string
}

// Export copies every *.dll directly inside the game's managed directory to
// OutDir, overwriting older copies, and returns the copied names sorted.
func Export(opts Options) ([]string, error) {
	src := filepath.Join(opts.GameDir, ManagedDir)
	info, err := os.Stat(src)
	if err != nil {
		return nil, errors.Wrap(err, "locating managed assemblies")
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%s is not a directory", src)
	}

	excluded, err := names(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var copied []string
	err = cp.Copy(src, opts.OutDir, cp.Options{
		Skip: func(srcinfo os.FileInfo, path, _ string) (bool, error) {
			if srcinfo.IsDir() {
				return path != src, nil
			}
			name := srcinfo.Name()
			if !strings.EqualFold(filepath.Ext(name), ".dll") || excluded[name] {
				return true, nil
			}
			copied = append(copied, name)
			return false, nil
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "copying assemblies to %s", opts.OutDir)
	}
	sort.Strings(copied)
	return copied, nil
}

func names(dir string) (map[string]bool, error) {
	out := make(map[string]bool)
	if dir == "" {
		return out, nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return out, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", dir)
	}
	for _, e := range entries {
		out[e.Name()] = true
	}
	return out, nil
}
