package walkstats

import (
	"fmt"
	"sync"
	"time"
)

// Collector accumulates counters for one traversal. It is safe for
// concurrent use, although the walker itself only ever reports from one
// goroutine.
type Collector struct {
	mu      sync.Mutex
	files   int
	dirs    int
	skipped int
	start   time.Time
}

// NewCollector creates a collector with the clock started
func NewCollector() *Collector {
	return &Collector{start: time.Now()}
}

// File records one yielded file path
func (c *Collector) File() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.files++
}

// Dir records one yielded directory path
func (c *Collector) Dir() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dirs++
}

// Skip records one subtree skipped because its listing failed
func (c *Collector) Skip() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.skipped++
}

// Summary is a point-in-time snapshot of the counters
type Summary struct {
	Files   int
	Dirs    int
	Skipped int
	Elapsed time.Duration
}

// Snapshot returns the current counters and the elapsed wall time
func (c *Collector) Snapshot() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Summary{
		Files:   c.files,
		Dirs:    c.dirs,
		Skipped: c.skipped,
		Elapsed: time.Since(c.start),
	}
}

// String formats the summary for the CLI footer
func (s Summary) String() string {
	out := fmt.Sprintf("%d dirs, %d files in %s", s.Dirs, s.Files, s.Elapsed.Round(time.Millisecond))
	if s.Skipped > 0 {
		out += fmt.Sprintf(" (%d unreadable, skipped)", s.Skipped)
	}
	return out
}
