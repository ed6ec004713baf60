package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{
		filepath.Join(dir, "rules.yaml"),
		filepath.Join(dir, "board.yaml"),
	}, WithDebounce(10*time.Millisecond), WithDebounce(0))
	require.NoError(t, err)

	assert.Len(t, w.files, 2)
	assert.Equal(t, []string{dir}, w.dirs)
	assert.Equal(t, 10*time.Millisecond, w.debounce)
}

func TestRelevant(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "board.yaml")

	w, err := New([]string{target})
	require.NoError(t, err)

	assert.True(t, w.relevant(fsnotify.Event{Name: target, Op: fsnotify.Write}))
	assert.True(t, w.relevant(fsnotify.Event{Name: target, Op: fsnotify.Create}))
	assert.False(t, w.relevant(fsnotify.Event{Name: target, Op: fsnotify.Chmod}))
	assert.False(t, w.relevant(fsnotify.Event{Name: filepath.Join(dir, "other.yaml"), Op: fsnotify.Write}))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "board.yaml")
	require.NoError(t, os.WriteFile(target, []byte("a: 1\n"), 0o644))

	w, err := New([]string{target}, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- w.Watch(ctx, func() error {
			calls.Add(1)

			return nil
		})
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "unrelated.yaml"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("a: 2\n"), 0o644))
	require.NoError(t, os.WriteFile(target, []byte("a: 3\n"), 0o644))

	assert.Eventually(t, func() bool {
		return calls.Load() >= 1
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
