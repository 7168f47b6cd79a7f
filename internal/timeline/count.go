package timeline

import "math/rand"

const (
	countMin = 1
	countMax = 50

	burstMean   = 25.0
	burstStddev = 10.0
)

// WeightedCount returns the default count policy: half the time a short
// exchange of 1-4 messages (weighted 0.3/0.3/0.2/0.2), otherwise a longer
// conversation drawn from a normal distribution clamped to [1, 50].
func WeightedCount(rng *rand.Rand) CountFunc {
	return func() int {
		if rng.Intn(2) == 0 {
			r := rng.Float64()
			switch {
			case r < 0.3:
				return 1
			case r < 0.6:
				return 2
			case r < 0.8:
				return 3
			default:
				return 4
			}
		}

		n := int(rng.NormFloat64()*burstStddev + burstMean)
		if n < countMin {
			n = countMin
		}
		if n > countMax {
			n = countMax
		}
		return n
	}
}
