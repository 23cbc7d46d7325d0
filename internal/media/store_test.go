package media

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStore(t *testing.T, files ...string) *Store {
	t.Helper()

	dir := t.TempDir()
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("img"), 0o644); err != nil {
			t.Fatalf("seed file %s: %v", name, err)
		}
	}

	s, err := NewStore(dir, "default.jpeg")
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestStore_Exists(t *testing.T) {
	s := newTestStore(t, "a.jpg")

	if !s.Exists("a.jpg") {
		t.Fatalf("expected a.jpg to exist")
	}
	if s.Exists("b.jpg") {
		t.Fatalf("expected b.jpg to not exist")
	}
}

func TestStore_Exists_RejectsPathTraversal(t *testing.T) {
	s := newTestStore(t)

	// sembrar un archivo fuera del directorio de imágenes
	outside := filepath.Join(filepath.Dir(s.Dir()), "secret.txt")
	if err := os.WriteFile(outside, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed outside file: %v", err)
	}

	for _, name := range []string{"", ".", "..", "../secret.txt", "sub/секрет.jpg", "/etc/passwd"} {
		if s.Exists(name) {
			t.Fatalf("expected Exists(%q) to be false", name)
		}
	}
}

func TestStore_Remove_AbsentIsNoop(t *testing.T) {
	s := newTestStore(t, "a.jpg")

	if err := s.Remove("a.jpg"); err != nil {
		t.Fatalf("Remove existing: %v", err)
	}
	if s.Exists("a.jpg") {
		t.Fatalf("expected a.jpg gone after Remove")
	}
	if err := s.Remove("a.jpg"); err != nil {
		t.Fatalf("expected absent file to be a no-op, got %v", err)
	}
}

func TestStore_Remove_RejectsInvalidName(t *testing.T) {
	s := newTestStore(t)

	if err := s.Remove("../x.jpg"); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestStore_Save_GeneratesNameAndStoresContent(t *testing.T) {
	s := newTestStore(t)

	name, err := s.Save(strings.NewReader("picture-bytes"), "original.PNG")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(name, ".PNG") {
		t.Fatalf("expected generated name to keep the extension, got %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		t.Fatalf("expected a bare filename, got %q", name)
	}
	if !s.Exists(name) {
		t.Fatalf("expected saved file to exist")
	}

	b, err := os.ReadFile(filepath.Join(s.Dir(), name))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(b) != "picture-bytes" {
		t.Fatalf("expected content preserved, got %q", string(b))
	}
}

func TestStore_DefaultName(t *testing.T) {
	s := newTestStore(t)

	if s.DefaultName() != "default.jpeg" {
		t.Fatalf("expected configured default, got %q", s.DefaultName())
	}
}
