package pathiter

import (
	"errors"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func named(name string) *Entry {
	return &Entry{name: name}
}

func TestNames_CaseSensitive(t *testing.T) {
	sel := Names("Makefile", "LICENSE")

	if !sel.Match(named("Makefile")) {
		t.Error("expected Makefile to match")
	}
	if sel.Match(named("makefile")) {
		t.Error("expected makefile not to match case-sensitively")
	}
	if sel.Match(named("README")) {
		t.Error("expected README not to match")
	}
}

func TestNamesFold_CaseInsensitive(t *testing.T) {
	sel := NamesFold("Makefile")

	if !sel.Match(named("makefile")) {
		t.Error("expected makefile to match case-insensitively")
	}
	if !sel.Match(named("MAKEFILE")) {
		t.Error("expected MAKEFILE to match case-insensitively")
	}
	if sel.Match(named("Makefile.in")) {
		t.Error("expected Makefile.in not to match")
	}
}

func TestGlob_MatchesWholeName(t *testing.T) {
	sel, err := Glob("*.txt")
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}

	if !sel.Match(named("notes.txt")) {
		t.Error("expected notes.txt to match *.txt")
	}
	if sel.Match(named("notes.txt.bak")) {
		t.Error("expected notes.txt.bak not to match *.txt")
	}
}

func TestGlob_InvalidPattern(t *testing.T) {
	_, err := Glob("[")
	if !errors.Is(err, doublestar.ErrBadPattern) {
		t.Fatalf("expected ErrBadPattern, got %v", err)
	}
}

func TestRegex_SearchSemantics(t *testing.T) {
	sel, err := Regex(`\d+`)
	if err != nil {
		t.Fatalf("regex failed: %v", err)
	}

	// search semantics: a match anywhere in the name counts
	if !sel.Match(named("report2024.csv")) {
		t.Error("expected report2024.csv to match")
	}
	if sel.Match(named("report.csv")) {
		t.Error("expected report.csv not to match")
	}
}

func TestRegex_InvalidPattern(t *testing.T) {
	if _, err := Regex("("); err == nil {
		t.Fatal("expected compile error for invalid pattern")
	}
}

func TestAny_ShortCircuits(t *testing.T) {
	evaluated := false
	sel := Any(
		Names("a"),
		SelectorFunc(func(*Entry) bool {
			evaluated = true
			return true
		}),
	)

	if !sel.Match(named("a")) {
		t.Fatal("expected a to match")
	}
	if evaluated {
		t.Error("expected second selector not to be evaluated after a match")
	}
	if sel.Match(named("b")) != true || !evaluated {
		t.Error("expected second selector to be consulted for a non-matching first")
	}
}

func TestAny_FlattensNestedCombinators(t *testing.T) {
	a, b, c, d := Names("a"), Names("b"), Names("c"), Names("d")

	combined := Any(Any(a, b), c, Any(d))
	flat, ok := combined.(anySelector)
	if !ok {
		t.Fatalf("expected anySelector, got %T", combined)
	}
	if len(flat) != 4 {
		t.Errorf("expected 4 flattened selectors, got %d", len(flat))
	}

	for _, name := range []string{"a", "b", "c", "d"} {
		if !combined.Match(named(name)) {
			t.Errorf("expected %q to match the combined selector", name)
		}
	}
	if combined.Match(named("e")) {
		t.Error("expected e not to match")
	}
}

func TestDotfiles(t *testing.T) {
	if !Dotfiles.Match(named(".hidden")) {
		t.Error("expected .hidden to match Dotfiles")
	}
	if Dotfiles.Match(named("visible")) {
		t.Error("expected visible not to match Dotfiles")
	}
}

func TestVCSSelectors(t *testing.T) {
	for _, name := range []string{".git", ".hg", "_darcs", ".bzr", ".svn", "_svn", "CVS", "RCS"} {
		if !VCSDirs.Match(named(name)) {
			t.Errorf("expected %q to match VCSDirs", name)
		}
	}
	if VCSDirs.Match(named("src")) {
		t.Error("expected src not to match VCSDirs")
	}

	for _, name := range []string{".gitignore", ".gitattributes", ".hgtags", ".bzrignore", "main.go,v"} {
		if !VCSFiles.Match(named(name)) {
			t.Errorf("expected %q to match VCSFiles", name)
		}
	}
	// the ,v rule needs at least one leading character
	if VCSFiles.Match(named(",v")) {
		t.Error("expected bare ,v not to match VCSFiles")
	}
	if VCSFiles.Match(named("main.go")) {
		t.Error("expected main.go not to match VCSFiles")
	}

	if !VCS.Match(named(".git")) || !VCS.Match(named(".gitignore")) {
		t.Error("expected VCS to cover both dirs and files")
	}
	if VCS.Match(named("main.go")) {
		t.Error("expected main.go not to match VCS")
	}
}
