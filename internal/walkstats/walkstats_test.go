package walkstats

import (
	"strings"
	"testing"
)

func TestCollector_Counts(t *testing.T) {
	c := NewCollector()
	c.Dir()
	c.Dir()
	c.File()
	c.File()
	c.File()
	c.Skip()

	s := c.Snapshot()
	if s.Dirs != 2 {
		t.Errorf("expected 2 dirs, got %d", s.Dirs)
	}
	if s.Files != 3 {
		t.Errorf("expected 3 files, got %d", s.Files)
	}
	if s.Skipped != 1 {
		t.Errorf("expected 1 skipped, got %d", s.Skipped)
	}
	if s.Elapsed < 0 {
		t.Errorf("expected non-negative elapsed time, got %v", s.Elapsed)
	}
}

func TestSummary_String(t *testing.T) {
	s := Summary{Files: 3, Dirs: 2}
	out := s.String()
	if !strings.Contains(out, "2 dirs, 3 files") {
		t.Errorf("unexpected summary: %q", out)
	}
	if strings.Contains(out, "skipped") {
		t.Errorf("expected no skip note without skips: %q", out)
	}

	s.Skipped = 1
	out = s.String()
	if !strings.Contains(out, "1 unreadable, skipped") {
		t.Errorf("expected skip note, got %q", out)
	}
}
