package watcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_WatchDirsCallsBackOnRemove(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "BepInEx")
	require.NoError(t, os.Mkdir(sub, 0o755))
	owned := filepath.Join(sub, "owned.dll")
	foreign := filepath.Join(sub, "foreign.txt")
	require.NoError(t, os.WriteFile(owned, []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(foreign, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls int32
	done := make(chan error, 1)
	go func() {
		done <- WatchDirs(ctx, []string{root, sub},
			func(name string) bool { return strings.HasSuffix(name, ".dll") },
			20*time.Millisecond,
			func() { atomic.AddInt32(&calls, 1) })
	}()

	// give the watcher time to register
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.Remove(foreign))
	time.Sleep(200 * time.Millisecond)
	assert.EqualValues(t, 0, atomic.LoadInt32(&calls))

	require.NoError(t, os.Remove(owned))
	assert.Eventually(t, func() bool { return atomic.LoadInt32(&calls) == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func Test_WatchDirsSkipsMissing(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := WatchDirs(ctx, []string{filepath.Join(t.TempDir(), "missing")},
		func(string) bool { return true }, time.Millisecond, func() {})
	assert.NoError(t, err)
}
