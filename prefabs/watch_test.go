package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsChangedPrefab(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "scripts"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	w, err := NewWatcher(root)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "enemy.yaml"), []byte("name: enemy\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	expectEvent(t, w, "enemy.yaml")

	if err := os.WriteFile(filepath.Join(root, "scripts", "drift.tengo"), []byte("vx := 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	expectEvent(t, w, "scripts/drift.tengo")
}

func expectEvent(t *testing.T, w *Watcher, want string) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case got := <-w.Events:
			if got == want {
				return
			}
		case err := <-w.Errors:
			t.Fatalf("watch error: %v", err)
		case <-timeout:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestWatcherCloseIsIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
	if _, ok := <-w.Events; ok {
		t.Fatalf("expected events channel to be closed")
	}
}

func TestFileFilters(t *testing.T) {
	tests := []struct {
		path         string
		spec, script bool
	}{
		{"enemy.yaml", true, false},
		{"game.YML", true, false},
		{"scripts/drift.tengo", false, true},
		{"notes.txt", false, false},
	}
	for _, tc := range tests {
		if isSpecFile(tc.path) != tc.spec || isScriptFile(tc.path) != tc.script {
			t.Fatalf("%s: spec=%v script=%v", tc.path, isSpecFile(tc.path), isScriptFile(tc.path))
		}
	}
}
