package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chazu/dovetail/pkg/joint"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.json"))
	p, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != joint.DefaultParams() {
		t.Errorf("first load = %+v, want defaults %+v", p, joint.DefaultParams())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "nested", "dir", "prefs.json"))

	want := joint.Params{
		Width:    250.5,
		Height:   18,
		Division: "coarse",
		Ratio:    2.5,
		Variant:  "angled",
		Depth:    22,
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip = %+v, want %+v", got, want)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileStore(path).Load(); err == nil {
		t.Error("expected error for corrupt prefs file")
	}
}
