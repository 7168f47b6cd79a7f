package timeline

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBuilder(seed int64, count CountFunc) *Builder {
	rng := rand.New(rand.NewSource(seed))
	if count == nil {
		count = WeightedCount(rng)
	}
	return NewBuilder(NewSampler(rng, 0), count, testLogger())
}

func TestBuild_DayWindow(t *testing.T) {
	b := newTestBuilder(1, nil)
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)

	instants, err := b.Build(start, end, 4)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(instants) != 4 {
		t.Fatalf("expected 4 instants, got %d", len(instants))
	}
	for i, ts := range instants {
		if ts.Before(start) || ts.After(end) {
			t.Errorf("instant[%d] = %s outside [%s, %s]", i, ts, start, end)
		}
	}
}

func TestBuild_Containment(t *testing.T) {
	b := newTestBuilder(2, nil)

	windows := []struct {
		start time.Time
		dur   time.Duration
		count int
	}{
		{time.Date(2023, 3, 15, 9, 0, 0, 0, time.UTC), 24 * time.Hour, 25},
		{time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), 7 * 24 * time.Hour, 50},
		{time.Date(2023, 11, 30, 18, 30, 0, 0, time.UTC), time.Hour, 2},
	}

	for _, w := range windows {
		end := w.start.Add(w.dur)
		instants, err := b.Build(w.start, end, w.count)
		if err != nil {
			t.Fatalf("Build(%s, %s, %d) failed: %v", w.start, end, w.count, err)
		}
		if len(instants) != w.count {
			t.Errorf("got %d instants, want %d", len(instants), w.count)
		}
		for i, ts := range instants {
			if ts.Before(w.start) || ts.After(end) {
				t.Errorf("instant[%d] = %s outside window ending %s", i, ts, end)
			}
		}
	}
}

func TestBuild_ZeroCountUsesPolicy(t *testing.T) {
	fixed := func() int { return 7 }
	b := newTestBuilder(3, fixed)

	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	instants, err := b.Build(start, start.Add(48*time.Hour), 0)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(instants) != 7 {
		t.Errorf("expected policy count 7, got %d", len(instants))
	}
}

func TestBuild_RejectsInvertedWindow(t *testing.T) {
	b := newTestBuilder(4, nil)
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	if _, err := b.Build(start, start.Add(-time.Hour), 3); err == nil {
		t.Error("expected error for end before start")
	}
}

func TestBuild_InfeasiblePropagates(t *testing.T) {
	b := newTestBuilder(5, nil)
	start := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := b.Build(start, start.Add(5*time.Second), 50)
	if err == nil {
		t.Fatal("expected infeasibility error for 50 messages in 5 seconds")
	}
}

func TestNextFree_StepsPastTakenInstants(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	seen := map[time.Time]bool{
		end:                           true,
		end.Add(-time.Nanosecond):     true,
		end.Add(-2 * time.Nanosecond): true,
	}

	got := nextFree(end, start, seen)
	want := end.Add(-3 * time.Nanosecond)
	if !got.Equal(want) {
		t.Errorf("nextFree = %s, want %s", got.Format(time.RFC3339Nano), want.Format(time.RFC3339Nano))
	}
	if got.Before(start) || got.After(end) {
		t.Errorf("nextFree %s left the window", got)
	}

	free := start.Add(time.Hour)
	if got := nextFree(free, start, seen); !got.Equal(free) {
		t.Errorf("untaken instant moved: got %s, want %s", got, free)
	}
}

func TestBuild_InstantsAreUnique(t *testing.T) {
	// Offsets clamped to the window end would otherwise collide and later
	// collapse under send-time keying.
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	for seed := int64(1); seed <= 100; seed++ {
		b := newTestBuilder(seed, nil)
		instants, err := b.Build(start, end, 4)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		seen := map[time.Time]bool{}
		for _, ts := range instants {
			if seen[ts] {
				t.Fatalf("seed %d: duplicate instant %s", seed, ts.Format(time.RFC3339Nano))
			}
			seen[ts] = true
			if ts.Before(start) || ts.After(end) {
				t.Fatalf("seed %d: instant %s outside window", seed, ts)
			}
		}
	}
}

func TestWeightedCount_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	policy := WeightedCount(rng)

	sawShort := false
	sawLong := false
	for i := 0; i < 1000; i++ {
		n := policy()
		if n < 1 || n > 50 {
			t.Fatalf("draw %d: count %d outside [1, 50]", i, n)
		}
		if n <= 4 {
			sawShort = true
		} else {
			sawLong = true
		}
	}
	if !sawShort || !sawLong {
		t.Errorf("expected both short and long conversations over 1000 draws (short=%v long=%v)", sawShort, sawLong)
	}
}
