package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hsmod/hsmod-installer/cmd/internal/logs"
)

const (
	DefaultMarker   = "Hearthstone.exe"
	DefaultMaxDepth = 3
)

var ErrGameDirNotFound = errors.New("game directory not found")

// where the game usually lives on each platform
func DefaultSearchPaths() []string {
	if runtime.GOOS == "windows" {
		return []string{
			`C:\Program Files (x86)`,
			`C:\Program Files`,
			`D:\`,
			`E:\`,
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return []string{
		filepath.Join(home, ".wine", "drive_c", "Program Files (x86)"),
		filepath.Join(home, ".wine", "drive_c", "Program Files"),
		filepath.Join(home, "Games", "battlenet", "drive_c", "Program Files (x86)"),
		filepath.Join(home, "Games"),
	}
}

// IsGameDir reports whether dir holds the marker executable.
func IsGameDir(dir, marker string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, marker))
	return err == nil && !info.IsDir()
}

// NormalizeGameDir accepts either the game directory or the path of the
// marker executable itself and returns the directory.
func NormalizeGameDir(input, marker string) string {
	p := strings.Trim(strings.TrimSpace(input), `"'`)
	if strings.EqualFold(filepath.Base(p), marker) {
		return filepath.Dir(p)
	}
	return p
}

// FindMarkerDir searches every root, at most maxDepth levels deep, for a
// regular file named marker (case-insensitive) and returns its directory.
// Roots are tried in order and the first hit wins. Unreadable directories
// are skipped.
func FindMarkerDir(marker string, roots []string, maxDepth int) (string, bool) {
	for _, root := range roots {
		root = filepath.Clean(root)
		found := ""
		_ = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logs.Debug.Println("Skipping", p, err)
				return nil
			}
			level := depth(root, p)
			if d.IsDir() {
				if level >= maxDepth {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() && strings.EqualFold(d.Name(), marker) {
				found = filepath.Dir(p)
				return filepath.SkipAll
			}
			return nil
		})
		if found != "" {
			return found, true
		}
	}
	return "", false
}

// depth counts the path elements between root and p.
func depth(root, p string) int {
	rel, err := filepath.Rel(root, p)
	if err != nil || rel == "." {
		return 0
	}
	return strings.Count(filepath.ToSlash(rel), "/") + 1
}

// try the configured directory first, then search the disk
func GetGameDir(configured, marker string, roots []string, maxDepth int) (string, error) {
	if configured != "" {
		dir := NormalizeGameDir(configured, marker)
		if IsGameDir(dir, marker) {
			return dir, nil
		}
		logs.Warn.Printf("Configured directory %s has no %s, searching instead\n", dir, marker)
	}

	if dir, ok := FindMarkerDir(marker, roots, maxDepth); ok {
		return dir, nil
	}
	return "", ErrGameDirNotFound
}
