package filesystem

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/youruser/newscard/internal/core"
)

func TestNewStore_CreatesDirectory(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "outputs")
	if _, err := NewStore(base); err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	info, err := os.Stat(base)
	if err != nil || !info.IsDir() {
		t.Fatalf("base directory not created: %v", err)
	}
}

func TestSaveAndGet(t *testing.T) {
	base := t.TempDir()
	store, err := NewStore(base)
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}
	ctx := context.Background()

	id, err := store.Save(ctx, []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(base, id+".png")); err != nil {
		t.Errorf("output file missing: %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if !bytes.Equal(got, []byte("png-bytes")) {
		t.Errorf("Get() = %q", got)
	}
}

func TestGet_NotFound(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore() failed: %v", err)
	}

	tests := []string{
		"01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"../../etc/passwd",
		"",
	}
	for _, id := range tests {
		if _, err := store.Get(context.Background(), id); !errors.Is(err, core.ErrOutputNotFound) {
			t.Errorf("Get(%q) error = %v, want ErrOutputNotFound", id, err)
		}
	}
}
