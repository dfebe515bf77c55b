package resource

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordLogger struct {
	lines []string
}

func (r *recordLogger) Printf(format string, v ...any) {
	r.lines = append(r.lines, format)
}

func scenarioEngine(t *testing.T) *Engine {
	tree, err := Load(fstest.MapFS{
		"a/b.txt": {Data: []byte("hi")},
		"a/c.txt": {Data: []byte("yo")},
	})
	require.NoError(t, err)
	return NewEngine(tree, nil, nil)
}

func deepEngine(t *testing.T) *Engine {
	tree, err := Load(sampleFS())
	require.NoError(t, err)
	return NewEngine(tree, nil, nil)
}

func readFile(t *testing.T, p string) string {
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	return string(data)
}

func listTree(t *testing.T, root string) []string {
	var out []string
	err := filepath.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, p)
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return out
}

func Test_InstallScenario(t *testing.T) {
	root := t.TempDir()
	e := scenarioEngine(t)

	require.NoError(t, e.Install(root))
	assert.Equal(t, "hi", readFile(t, filepath.Join(root, "a", "b.txt")))
	assert.Equal(t, "yo", readFile(t, filepath.Join(root, "a", "c.txt")))

	require.NoError(t, e.Uninstall(root))
	assert.NoDirExists(t, filepath.Join(root, "a"))
	assert.DirExists(t, root)
}

func Test_UninstallKeepsForeignContent(t *testing.T) {
	root := t.TempDir()
	e := scenarioEngine(t)

	require.NoError(t, e.Install(root))
	userFile := filepath.Join(root, "a", "user.txt")
	require.NoError(t, os.WriteFile(userFile, []byte("mine"), 0o644))

	warn := &recordLogger{}
	e.warn = warn
	require.NoError(t, e.Uninstall(root))

	assert.NoFileExists(t, filepath.Join(root, "a", "b.txt"))
	assert.NoFileExists(t, filepath.Join(root, "a", "c.txt"))
	assert.DirExists(t, filepath.Join(root, "a"))
	assert.Equal(t, "mine", readFile(t, userFile))
	assert.Len(t, warn.lines, 1)
}

func Test_InstallOverwrites(t *testing.T) {
	root := t.TempDir()
	e := scenarioEngine(t)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "a"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "b.txt"), []byte("something much longer"), 0o644))

	require.NoError(t, e.Install(root))
	assert.Equal(t, "hi", readFile(t, filepath.Join(root, "a", "b.txt")))
}

func Test_InstallIntoExistingTree(t *testing.T) {
	root := t.TempDir()
	e := deepEngine(t)

	require.NoError(t, os.MkdirAll(filepath.Join(root, "BepInEx", "core"), 0o755))
	require.NoError(t, e.Install(root))
	require.NoError(t, e.Install(root))

	assert.Equal(t, "harmony", readFile(t, filepath.Join(root, "BepInEx", "core", "0Harmony.dll")))
	assert.Equal(t, "[General]\n", readFile(t, filepath.Join(root, "doorstop_config.ini")))
	assert.NoDirExists(t, filepath.Join(root, "BepInEx", "patchers"))
}

func Test_RoundTripRestoresTarget(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Hearthstone.exe"), []byte("MZ"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Hearthstone_Data"), 0o755))
	before := listTree(t, root)

	e := deepEngine(t)
	require.NoError(t, e.Install(root))
	assert.NotEqual(t, before, listTree(t, root))

	require.NoError(t, e.Uninstall(root))
	assert.Equal(t, before, listTree(t, root))
}

func Test_UninstallIdempotent(t *testing.T) {
	root := t.TempDir()
	e := deepEngine(t)

	require.NoError(t, e.Install(root))
	require.NoError(t, os.WriteFile(filepath.Join(root, "BepInEx", "LogOutput.log"), []byte("log"), 0o644))

	require.NoError(t, e.Uninstall(root))
	once := listTree(t, root)
	require.NoError(t, e.Uninstall(root))
	assert.Equal(t, once, listTree(t, root))

	assert.Equal(t, []string{".", "BepInEx", "BepInEx/LogOutput.log"}, once)
}

func Test_UninstallNothingInstalled(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "keep.txt"), []byte("x"), 0o644))
	before := listTree(t, root)

	require.NoError(t, deepEngine(t).Uninstall(root))
	assert.Equal(t, before, listTree(t, root))
}

func Test_UninstallPartialInstall(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "BepInEx", "core"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "BepInEx", "core", "BepInEx.dll"), []byte("core"), 0o644))

	require.NoError(t, deepEngine(t).Uninstall(root))
	assert.NoDirExists(t, filepath.Join(root, "BepInEx"))
}

// writeBlocker puts a file where the scenario tree needs the directory "a".
func writeBlocker(root string) error {
	return os.WriteFile(filepath.Join(root, "a"), []byte("block"), 0o644)
}

func Test_InstallFailsOnBlockedParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeBlocker(root))

	err := scenarioEngine(t).Install(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating parents of")
}

func Test_UninstallFailsOnReadOnlyDir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Getuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := t.TempDir()
	e := scenarioEngine(t)
	require.NoError(t, e.Install(root))

	dir := filepath.Join(root, "a")
	require.NoError(t, os.Chmod(dir, 0o555))
	defer os.Chmod(dir, 0o755)

	err := e.Uninstall(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "removing")
}

func Test_DebugTrace(t *testing.T) {
	root := t.TempDir()
	debug := &recordLogger{}
	e := scenarioEngine(t)
	e.debug = debug

	require.NoError(t, e.Install(root))
	assert.Equal(t, []string{"Found %s", "Found %s"}, debug.lines)

	debug.lines = nil
	require.NoError(t, e.Uninstall(root))
	assert.Equal(t, []string{"Deleting file: %s", "Deleting file: %s", "Deleting directory: %s"}, debug.lines)
}

func Test_Exists(t *testing.T) {
	root := t.TempDir()

	ok, err := Exists(root)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(filepath.Join(root, "nope"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_IsEmptyDir(t *testing.T) {
	root := t.TempDir()

	empty, err := IsEmptyDir(root)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, os.Mkdir(filepath.Join(root, "sub"), 0o755))
	empty, err = IsEmptyDir(root)
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = IsEmptyDir(filepath.Join(root, "missing"))
	assert.Error(t, err)
}
