package engine

import "testing"

func TestPreprocessKeywords(t *testing.T) {
	got := preprocessSource(`(dovetail :width 100 :tail-ratio 2)`)
	want := `(dovetail "__kw_width" 100 "__kw_tail-ratio" 2)`
	if got != want {
		t.Errorf("preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessComments(t *testing.T) {
	got := preprocessSource(";; a drawer side\n(dovetail :width 100)")
	want := "// a drawer side\n(dovetail \"__kw_width\" 100)"
	if got != want {
		t.Errorf("preprocess = %q, want %q", got, want)
	}
}

func TestPreprocessKebabIdentifiers(t *testing.T) {
	got := preprocessSource(`(def board-width 100)`)
	want := `(def board_width 100)`
	if got != want {
		t.Errorf("preprocess = %q, want %q", got, want)
	}
	// A genuine subtraction keeps its minus.
	got = preprocessSource(`(- width 10)`)
	if got != `(- width 10)` {
		t.Errorf("subtraction mangled: %q", got)
	}
}

func TestPreprocessStringsUntouched(t *testing.T) {
	src := `(dovetail :division "semi-coarse; not really")`
	got := preprocessSource(src)
	want := `(dovetail "__kw_division" "semi-coarse; not really")`
	if got != want {
		t.Errorf("preprocess = %q, want %q", got, want)
	}
}

func TestIsKW(t *testing.T) {
	got := preprocessSource(":medium plain")
	// The preprocessed keyword should round-trip through isKW.
	if got != `"__kw_medium" plain` {
		t.Fatalf("preprocess = %q", got)
	}
}
