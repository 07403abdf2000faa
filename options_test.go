package pathiter

import (
	"errors"
	"testing"
)

func TestOptions_ResolveDefaultsAdmitEverything(t *testing.T) {
	admitDir, admitFile, err := Options{}.resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if !admitDir(named("anything")) {
		t.Error("expected default admitDir to admit everything")
	}
	if !admitFile(named("anything")) {
		t.Error("expected default admitFile to admit everything")
	}
}

func TestOptions_ResolveConflicts(t *testing.T) {
	sel := Names("x")
	cases := []struct {
		name string
		opts Options
	}{
		{"Filter+FilterDirs", Options{Filter: sel, FilterDirs: sel}},
		{"Filter+FilterFiles", Options{Filter: sel, FilterFiles: sel}},
		{"Exclude+ExcludeDirs", Options{Exclude: sel, ExcludeDirs: sel}},
		{"Exclude+ExcludeFiles", Options{Exclude: sel, ExcludeFiles: sel}},
	}

	for _, tc := range cases {
		if _, _, err := tc.opts.resolve(); !errors.Is(err, ErrOptionConflict) {
			t.Errorf("%s: expected ErrOptionConflict, got %v", tc.name, err)
		}
	}
}

func TestOptions_GenericFilterAppliesToBothKinds(t *testing.T) {
	admitDir, admitFile, err := Options{Filter: Names("yes")}.resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if !admitDir(named("yes")) || !admitFile(named("yes")) {
		t.Error("expected yes to be admitted by both predicates")
	}
	if admitDir(named("no")) || admitFile(named("no")) {
		t.Error("expected no to be rejected by both predicates")
	}
}

func TestOptions_SpecificFiltersAreIndependent(t *testing.T) {
	admitDir, admitFile, err := Options{FilterDirs: Names("onlydir")}.resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if !admitDir(named("onlydir")) {
		t.Error("expected onlydir to be admitted as a directory")
	}
	if admitDir(named("other")) {
		t.Error("expected other to be rejected as a directory")
	}
	// no file filter given: files are unaffected
	if !admitFile(named("other")) {
		t.Error("expected files to be unaffected by FilterDirs")
	}
}

func TestOptions_ExcludeTakesPriorityOverFilter(t *testing.T) {
	everything := SelectorFunc(func(*Entry) bool { return true })
	admitDir, admitFile, err := Options{Filter: everything, Exclude: Names("skip")}.resolve()
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if admitDir(named("skip")) || admitFile(named("skip")) {
		t.Error("expected skip to be rejected even though the filter admits it")
	}
	if !admitDir(named("keep")) || !admitFile(named("keep")) {
		t.Error("expected keep to be admitted")
	}
}
