package casedef

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	orig := cardiacCase()
	orig.ID = "roundtrip-001"

	path, err := SaveFile(dir, orig)
	if err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	if filepath.Base(path) != "roundtrip-001.json" {
		t.Errorf("unexpected file name: %s", path)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if loaded.Title != orig.Title || loaded.Credits != orig.Credits {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
	if len(loaded.Stages) != len(orig.Stages) {
		t.Fatalf("expected %d stages, got %d", len(orig.Stages), len(loaded.Stages))
	}
	if !loaded.TerminalStage().IsTerminal {
		t.Error("terminal flag lost in round trip")
	}
	if loaded.Stages[0].Options != orig.Stages[0].Options {
		t.Error("options lost in round trip")
	}
}

func TestSaveFile_RejectsInvalid(t *testing.T) {
	c := cardiacCase()
	c.Title = ""
	if _, err := SaveFile(t.TempDir(), c); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadDir_MissingDirIsNoop(t *testing.T) {
	if err := LoadDir(filepath.Join(t.TempDir(), "absent")); err != nil {
		t.Fatalf("missing dir should not error: %v", err)
	}
}

func TestLoadDir_RegistersCases(t *testing.T) {
	dir := t.TempDir()
	c := cardiacCase()
	c.ID = "loaded-dir-001"
	if _, err := SaveFile(dir, c); err != nil {
		t.Fatal(err)
	}

	if err := LoadDir(dir); err != nil {
		t.Fatalf("LoadDir: %v", err)
	}

	got, err := Get("loaded-dir-001")
	if err != nil {
		t.Fatalf("loaded case not registered: %v", err)
	}
	if got.Title != c.Title {
		t.Errorf("unexpected title: %q", got.Title)
	}
}
