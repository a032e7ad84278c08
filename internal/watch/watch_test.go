package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func writeFile(t *testing.T, path, data string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
}

func TestWatcher_CallsBackOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "title: one\n")

	var calls atomic.Int32
	w, err := New(path, func(string) { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeFile(t, path, "title: two\n")

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "title: zero\n")

	var calls atomic.Int32
	w, err := New(path, func(string) { calls.Add(1) }, WithDebounce(300*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	for i := 0; i < 5; i++ {
		writeFile(t, path, "title: burst\n")
	}

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	writeFile(t, path, "title: one\n")

	var calls atomic.Int32
	w, err := New(path, func(string) { calls.Add(1) }, WithDebounce(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "other.yaml"), "x: y\n")
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "site.yaml")
	writeFile(t, path, "title: one\n")

	w, err := New(path, func(string) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))
	cancel()

	select {
	case <-w.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	w.Stop()
}

func TestWatcher_StopWithoutStart(t *testing.T) {
	defer goleak.VerifyNone(t)

	w, err := New(filepath.Join(t.TempDir(), "site.yaml"), func(string) {})
	require.NoError(t, err)
	w.Stop()
	w.Stop()
}

func TestNew_Validates(t *testing.T) {
	_, err := New("", func(string) {})
	assert.Error(t, err)
	_, err = New("site.yaml", nil)
	assert.Error(t, err)
}
