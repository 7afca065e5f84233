package validate

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
)

func TestHgtDirectory(t *testing.T) {
	dir := t.TempDir()

	if err := HgtDirectory(dir); err == nil {
		t.Error("expected an error for a directory without tiles")
	}

	if err := ioutil.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := HgtDirectory(dir); err == nil {
		t.Error("expected non-tile files to be ignored")
	}

	if err := ioutil.WriteFile(filepath.Join(dir, "N45E007.hgt"), make([]byte, 8), 0644); err != nil {
		t.Fatal(err)
	}
	if err := HgtDirectory(dir); err != nil {
		t.Errorf("expected a directory with one tile to validate, got %v", err)
	}
}

func TestHgtDirectoryInvalidName(t *testing.T) {
	dir := t.TempDir()

	if err := ioutil.WriteFile(filepath.Join(dir, "X45E007.hgt"), make([]byte, 8), 0644); err != nil {
		t.Fatal(err)
	}

	err := HgtDirectory(dir)
	if err == nil {
		t.Fatal("expected an error for an invalid tile name")
	}
	if !strings.Contains(err.Error(), "X45E007.hgt") {
		t.Errorf("expected the error to name the offending file, got %v", err)
	}
}

func TestHgtDirectoryMissing(t *testing.T) {
	if err := HgtDirectory(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
