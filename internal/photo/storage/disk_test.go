package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unimarket-dev/unimarket/internal/photo/domain"
)

func newTestStore(t *testing.T) *DiskStore {
	t.Helper()
	store, err := NewDiskStore(t.TempDir(), "/uploads")
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	return store
}

func TestSaveAndRemove(t *testing.T) {
	store := newTestStore(t)

	url, filename, err := store.Save(strings.NewReader("fake image bytes"), "image/png", "photo.png")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Fatalf("url = %q, want /uploads/ prefix", url)
	}
	if !strings.HasSuffix(filename, ".png") {
		t.Fatalf("filename = %q, want .png suffix", filename)
	}

	path := filepath.Join(store.dir, filename)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "fake image bytes" {
		t.Fatal("stored content differs")
	}

	if err := store.Remove(url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("file still present after remove")
	}
}

func TestSaveRejectsUnknownMIME(t *testing.T) {
	store := newTestStore(t)

	_, _, err := store.Save(strings.NewReader("#!/bin/sh"), "application/x-sh", "evil.sh")
	if !errors.Is(err, domain.ErrInvalidType) {
		t.Fatalf("err = %v, want ErrInvalidType", err)
	}

	entries, err := os.ReadDir(store.dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatal("rejected upload left a file behind")
	}
}

func TestRemoveMissingFileIgnored(t *testing.T) {
	store := newTestStore(t)

	if err := store.Remove("/uploads/never-existed.png"); err != nil {
		t.Fatalf("remove missing: %v", err)
	}
}

func TestFilenamesAreUnique(t *testing.T) {
	store := newTestStore(t)

	_, first, err := store.Save(strings.NewReader("a"), "image/jpeg", "same.jpg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	_, second, err := store.Save(strings.NewReader("b"), "image/jpeg", "same.jpg")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first == second {
		t.Fatal("two uploads of the same name collided")
	}
}
