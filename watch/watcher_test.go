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

	"github.com/teranos/ffigen/errors"
)

func startWatcher(t *testing.T, paths []string, onChange ChangeFunc) context.CancelFunc {
	t.Helper()

	w, err := New(paths, onChange, nil)
	require.NoError(t, err)
	w.SetDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		<-done
		w.Close()
	})
	return cancel
}

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "CXString.h")
	require.NoError(t, os.WriteFile(header, []byte("struct A;\n"), 0644))

	var mu sync.Mutex
	var calls [][]string
	startWatcher(t, []string{header}, func(ctx context.Context, changed []string) error {
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, changed)
		return nil
	})

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(header, []byte("struct B;\n"), 0644))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(calls) >= 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	abs, _ := filepath.Abs(header)
	assert.Equal(t, []string{abs}, calls[0])
}

func TestWatcherIgnoresUntrackedFiles(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "tracked.h")
	require.NoError(t, os.WriteFile(header, nil, 0644))

	called := make(chan struct{}, 1)
	startWatcher(t, []string{header}, func(ctx context.Context, changed []string) error {
		called <- struct{}{}
		return nil
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.h"), []byte("x"), 0644))

	select {
	case <-called:
		t.Fatal("untracked file triggered regeneration")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherSurvivesCallbackErrors(t *testing.T) {
	dir := t.TempDir()
	header := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(header, nil, 0644))

	calls := make(chan struct{}, 10)
	startWatcher(t, []string{header}, func(ctx context.Context, changed []string) error {
		calls <- struct{}{}
		return errors.New("parse failed")
	})

	for round := 0; round < 2; round++ {
		require.NoError(t, os.WriteFile(header, []byte{byte(round)}, 0644))
		select {
		case <-calls:
		case <-time.After(2 * time.Second):
			t.Fatalf("no regeneration in round %d", round)
		}
	}
}

func TestNewRequiresPaths(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.Error(t, err)
}
