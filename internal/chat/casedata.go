package chat

import (
	"fmt"
	"math/rand"
	"time"
)

var (
	windowRangeStart = time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	windowRangeEnd   = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
)

// randomInstant returns a uniformly random instant in [start, end].
func randomInstant(rng *rand.Rand, start, end time.Time) time.Time {
	span := int64(end.Sub(start).Seconds())
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(rng.Int63n(span+1)) * time.Second)
}

// randomWindow draws a start/end pair inside the 2023-2024 range, with the
// end somewhere after the start.
func randomWindow(rng *rand.Rand) (time.Time, time.Time) {
	start := randomInstant(rng, windowRangeStart, windowRangeEnd)
	end := randomInstant(rng, start, windowRangeEnd)
	return start, end
}

// NewCaseData generates case metadata with a fresh chat window.
func NewCaseData(rng *rand.Rand) CaseData {
	start, end := randomWindow(rng)
	return CaseData{
		FileNumber:    fmt.Sprintf("%d/%d", 230000+rng.Intn(10001), 1000+rng.Intn(9000)),
		CaseNumber:    fmt.Sprintf("HTCG%d", 24000+rng.Intn(401)),
		OperationName: operationNames[rng.Intn(len(operationNames))],
		StartDate:     start,
		EndDate:       end,
		ExhibitsUsed:  []string{},
	}
}
