package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) record(_ context.Context, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.paths...)
}

func TestWatcher_ReportsSettledWrites(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "tpl.json")
	other := filepath.Join(dir, "other.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))

	rec := &recorder{}
	w, err := New([]string{target}, 50*time.Millisecond, rec.record)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w.Start(ctx)
	defer w.Stop()

	// A burst of writes is reported once.
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(target, []byte(`{"prompt_sections": []}`), 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("{}"), 0o644))

	abs, err := filepath.Abs(target)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(rec.get()) == 1 }, 2*time.Second, 10*time.Millisecond)

	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, []string{abs}, rec.get())
}

func TestWatcher_StopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	target := filepath.Join(dir, "tpl.json")
	require.NoError(t, os.WriteFile(target, []byte("{}"), 0o644))

	w, err := New([]string{target}, 0, func(context.Context, string) {})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	w.Start(ctx)
	cancel()

	select {
	case <-w.doneCh:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
	w.Stop()
}

func TestNew_MissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "tpl.json")}, 0, func(context.Context, string) {})
	assert.Error(t, err)
}
