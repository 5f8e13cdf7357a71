// Package progress implements the walk's optional status reporter: a set
// of atomic counters updated concurrently by the walker and hardlink
// engine, and a background goroutine that polls them on an interval and
// rewrites a single status line on stderr.
package progress

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sadopc/dutree/internal/fswalk"
)

// tickInterval is how often the reporter goroutine rewrites the status
// line.
const tickInterval = 100 * time.Millisecond

// Reporter accumulates scan counters and, once started, periodically
// renders them to an io.Writer (stderr in normal use) as a single
// \r-terminated line. It implements fswalk.Reporter, so a walk can report
// through it directly.
type Reporter struct {
	out io.Writer

	scanned  atomic.Int64
	bytes    atomic.Int64
	errors   atomic.Int64
	hardlink atomic.Int64
	shared   atomic.Int64
	stopped  atomic.Bool

	wg   sync.WaitGroup
	done chan struct{}
}

// New returns a Reporter that, once Start is called, writes its status
// line to out.
func New(out io.Writer) *Reporter {
	return &Reporter{out: out, done: make(chan struct{})}
}

// Start launches the background ticking goroutine. Calling Start more
// than once, or after Stop, has no effect.
func (r *Reporter) Start() {
	if r.stopped.Load() {
		return
	}
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.render()
			case <-r.done:
				return
			}
		}
	}()
}

// Stop signals the reporter goroutine to exit, waits for it, renders one
// final line reflecting the last counter values, and then clears the
// line.
func (r *Reporter) Stop() {
	if r.stopped.Swap(true) {
		return
	}
	close(r.done)
	r.wg.Wait()
	r.render()
	fmt.Fprint(r.out, "\r\033[K")
}

func (r *Reporter) render() {
	scanned := r.scanned.Load()
	bytes := r.bytes.Load()
	errs := r.errors.Load()
	if errs > 0 {
		fmt.Fprintf(r.out, "\r(scanned %d, total %d, erred %d)", scanned, bytes, errs)
	} else {
		fmt.Fprintf(r.out, "\r(scanned %d, total %d)", scanned, bytes)
	}
}

// ObserveEntry implements fswalk.Reporter: every visited entry (file or
// directory) increments the scanned counter and adds its size to the
// running byte total.
func (r *Reporter) ObserveEntry(isDir bool, sz uint64) {
	r.scanned.Add(1)
	r.bytes.Add(int64(sz))
}

// ReportError implements fswalk.Reporter by counting the error; the
// report's detail is not printed live, only tallied, matching the status
// line's format in §6.4.
func (r *Reporter) ReportError(_ fswalk.ErrorReport) {
	r.errors.Add(1)
}

// ObserveHardlink adds one to the hardlink counter and sz to the shared
// byte total. The CLI calls it once, after deduplication, with the
// summary's total shared size.
func (r *Reporter) ObserveHardlink(sz uint64) {
	r.hardlink.Add(1)
	r.shared.Add(int64(sz))
}

var _ fswalk.Reporter = (*Reporter)(nil)
