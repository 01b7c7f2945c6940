package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveStringList("history", []string{"1+2 = 3", "6×7 = 42"}); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveFloat("memory", 2.5); err != nil {
		t.Fatal(err)
	}

	// A fresh store over the same file sees the saved values.
	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s2.LoadStringList("history")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"1+2 = 3", "6×7 = 42"}; !reflect.DeepEqual(got, want) {
		t.Errorf("LoadStringList = %q, want %q", got, want)
	}
	v, ok, err := s2.LoadFloat("memory")
	if err != nil {
		t.Fatal(err)
	}
	if !ok || v != 2.5 {
		t.Errorf("LoadFloat = %v, %v, want 2.5, true", v, ok)
	}
}

func TestFileStoreMissing(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatal(err)
	}
	if got, err := s.LoadStringList("history"); err != nil || got != nil {
		t.Errorf("LoadStringList on empty store = %q, %v", got, err)
	}
	if _, ok, err := s.LoadFloat("memory"); err != nil || ok {
		t.Errorf("LoadFloat on empty store reported a value (%v)", err)
	}
}

func TestFileStoreDeleteList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveStringList("history", []string{"1+1 = 2"}); err != nil {
		t.Fatal(err)
	}
	// Saving nil removes the key.
	if err := s.SaveStringList("history", nil); err != nil {
		t.Fatal(err)
	}
	s2, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := s2.LoadStringList("history"); got != nil {
		t.Errorf("list survived deletion: %q", got)
	}
}

func TestFileStoreBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calc.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Open accepted a corrupt file")
	}
}
