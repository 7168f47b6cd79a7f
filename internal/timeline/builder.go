package timeline

import (
	"fmt"
	"log/slog"
	"time"
)

// CountFunc decides how many messages a generated conversation gets.
type CountFunc func() int

// Builder turns an absolute time window plus a message count into absolute
// send instants. Offsets come from the sampler; the result is not sorted —
// callers order the final message list once full records are assembled.
type Builder struct {
	sampler *Sampler
	count   CountFunc
	logger  *slog.Logger
}

func NewBuilder(sampler *Sampler, count CountFunc, logger *slog.Logger) *Builder {
	return &Builder{sampler: sampler, count: count, logger: logger}
}

// Build returns count instants inside [start, end]. A count of zero or less
// means "pick one for me" via the configured count policy.
func (b *Builder) Build(start, end time.Time, count int) ([]time.Time, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("window end %s precedes start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	if count <= 0 {
		count = b.count()
	}

	duration := end.Sub(start).Seconds()
	b.logger.Info("generating message timeline", "count", count, "start", start, "end", end)

	offsets, err := b.sampler.Offsets(duration, count)
	if err != nil {
		return nil, fmt.Errorf("sample offsets: %w", err)
	}

	instants := make([]time.Time, len(offsets))
	seen := make(map[time.Time]bool, len(offsets))
	for i, off := range offsets {
		t := start.Add(time.Duration(off * float64(time.Second)))
		if t.After(end) {
			t = end
		}
		// Clamping can land several offsets on the exact window end, and
		// exported documents key messages by send instant, so instants
		// must be unique.
		t = nextFree(t, start, seen)
		seen[t] = true
		instants[i] = t
	}
	return instants, nil
}

// nextFree steps t back a nanosecond at a time while it is already taken,
// stopping at the window start.
func nextFree(t, start time.Time, seen map[time.Time]bool) time.Time {
	for seen[t] && t.After(start) {
		t = t.Add(-time.Nanosecond)
	}
	return t
}
