package timeline

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	// overrunMargin is how many extra candidate offsets are generated beyond
	// the requested count, so truncation has slack to work with.
	overrunMargin = 10

	fuzzMin = 1.0

	defaultMaxRetries = 1000
)

// InfeasibleError reports that the requested number of offsets could not be
// placed in the window within the retry ceiling.
type InfeasibleError struct {
	Count    int
	Duration float64
	Attempts int
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("cannot fit %d points in window of %.0fs (gave up after %d attempts)", e.Count, e.Duration, e.Attempts)
}

// Sampler produces seconds-offsets inside a time window by fuzzing an
// expected mean spacing and retrying whole candidate sets until one is
// accepted.
type Sampler struct {
	rng        *rand.Rand
	maxRetries int
}

// NewSampler creates a sampler drawing from rng. maxRetries bounds the
// rejection loop; pass 0 for the default ceiling.
func NewSampler(rng *rand.Rand, maxRetries int) *Sampler {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &Sampler{rng: rng, maxRetries: maxRetries}
}

// Offsets returns exactly count offsets in seconds, each in [1, duration].
// It retries whole candidate sets until one passes the acceptance check,
// and returns InfeasibleError once the retry ceiling is reached.
func (s *Sampler) Offsets(duration float64, count int) ([]float64, error) {
	if count <= 0 {
		return nil, fmt.Errorf("offset count must be positive, got %d", count)
	}
	if duration < 0 {
		return nil, fmt.Errorf("duration must be non-negative, got %g", duration)
	}
	// Every offset is at least one second, so a window shorter than count
	// seconds can never hold count messages. Fail up front instead of
	// burning the retry budget.
	if float64(count) > duration {
		return nil, &InfeasibleError{Count: count, Duration: duration}
	}

	for attempt := 0; attempt < s.maxRetries; attempt++ {
		points, ok := s.attempt(duration, count)
		if !ok {
			continue
		}
		// Raw candidates can overshoot the window end; clamp so every
		// returned offset stays inside it.
		for i, p := range points {
			if p > duration {
				points[i] = duration
			}
		}
		return points, nil
	}

	return nil, &InfeasibleError{Count: count, Duration: duration, Attempts: s.maxRetries}
}

// attempt generates one candidate set and reports whether it is accepted.
// The acceptance check keeps the historical polarity: a truncated set is
// accepted when its sum EXCEEDS the duration and rejected when it fits
// under it. That reads inverted, but it is the behaviour downstream data
// was produced with; window containment is enforced by clamping, not here.
func (s *Sampler) attempt(duration float64, count int) ([]float64, bool) {
	fuzzMax := duration - float64(count+2*overrunMargin)
	if fuzzMax < fuzzMin {
		fuzzMax = fuzzMin
	}

	// The denominator is count+2*margin rather than count+margin, biasing
	// the mean spacing downward so candidate sets overshoot less often.
	mean := duration / float64(count+2*overrunMargin)

	points := make([]float64, 0, count+2*overrunMargin)
	for i := 0; i < count+2*overrunMargin; i++ {
		fuzz := fuzzMin + s.rng.Float64()*(fuzzMax-fuzzMin)
		if s.rng.Intn(2) == 0 {
			points = append(points, mean+fuzz)
		} else {
			points = append(points, math.Max(mean-fuzz, 1))
		}
	}

	points = points[:count]

	var sum float64
	for _, p := range points {
		sum += p
	}
	return points, sum > duration
}
