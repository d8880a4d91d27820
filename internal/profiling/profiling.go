package profiling

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Recorder accumulates wall time per named stage of one generation pass.
// Each pass owns its Recorder, so concurrent passes never share totals.
type Recorder struct {
	mu     sync.Mutex
	order  []string
	totals map[string]time.Duration
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer rec.Track("river")()
func (r *Recorder) Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		r.mu.Lock()
		if _, ok := r.totals[name]; !ok {
			r.order = append(r.order, name)
		}
		r.totals[name] += d
		r.mu.Unlock()
	}
}

// Reset clears all totals.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.order = r.order[:0]
	clear(r.totals)
	r.mu.Unlock()
}

// Stage is one named total.
type Stage struct {
	Name     string
	Duration time.Duration
}

// Stages returns the totals in the order stages first finished.
func (r *Recorder) Stages() []Stage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Stage, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, Stage{Name: name, Duration: r.totals[name]})
	}
	return out
}

// Snapshot returns a copy of current totals.
func (r *Recorder) Snapshot() map[string]time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]time.Duration, len(r.totals))
	for k, v := range r.totals {
		out[k] = v
	}
	return out
}

// Total returns the sum of all stages.
func (r *Recorder) Total() time.Duration {
	var total time.Duration
	for _, d := range r.Snapshot() {
		total += d
	}
	return total
}

// TopN formats the n slowest stages.
// Example: "river:4.2ms, ground:2.1ms"
func (r *Recorder) TopN(n int) string {
	list := r.Stages()
	sort.SliceStable(list, func(i, j int) bool { return list[i].Duration > list[j].Duration })
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ms := float64(list[i].Duration.Microseconds()) / 1000.0
		parts = append(parts, list[i].Name+":"+formatMs(ms))
	}
	return strings.Join(parts, ", ")
}

func formatMs(ms float64) string {
	return trimTrailingZerosF(ms) + "ms"
}

// trimTrailingZerosF keeps one decimal place and drops ".0".
func trimTrailingZerosF(f float64) string {
	whole := int64(f)
	frac := int64((f-float64(whole))*10.0 + 0.0001)
	if frac <= 0 {
		return itoa(whole)
	}
	return itoa(whole) + "." + itoa(frac)
}

func itoa(i int64) string {
	if i == 0 {
		return "0"
	}
	neg := false
	if i < 0 {
		neg = true
		i = -i
	}
	buf := make([]byte, 0, 20)
	for i > 0 {
		buf = append(buf, byte('0'+i%10))
		i /= 10
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	if neg {
		return "-" + string(buf)
	}
	return string(buf)
}
