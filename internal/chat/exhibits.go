package chat

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// policeNumberChars excludes glyphs that read ambiguously on printed
// exhibit labels (I, l, O, 0).
const policeNumberChars = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz123456789"

const policeNumberLen = 6

// NewExhibit generates an exhibit tied to the given case. The extraction
// date lands one to five days before now, with sub-day jitter, and is
// normalized to loc so rendered dates carry an explicit zone.
func NewExhibit(rng *rand.Rand, cd CaseData, now time.Time, loc *time.Location) Exhibit {
	policeNumber := PoliceNumber(rng)
	number := 1 + rng.Intn(20)

	extracted := now.Add(-(time.Duration(1+rng.Intn(5))*24*time.Hour +
		time.Duration(1+rng.Intn(24))*time.Hour +
		time.Duration(1+rng.Intn(61))*time.Minute +
		time.Duration(1+rng.Intn(61))*time.Second +
		time.Duration(1+rng.Intn(1001))*time.Millisecond)).In(loc)

	return Exhibit{
		UUID:           uuid.New(),
		CaseID:         cd.CaseNumber,
		ExhibitNumber:  number,
		PoliceNumber:   policeNumber,
		ExtractionDate: extracted,
		Name:           fmt.Sprintf("%s_%d (%s)", cd.CaseNumber, number, policeNumber),
	}
}

// PoliceNumber returns a 6-character exhibit identifier.
func PoliceNumber(rng *rand.Rand) string {
	b := make([]byte, policeNumberLen)
	for i := range b {
		b[i] = policeNumberChars[rng.Intn(len(policeNumberChars))]
	}
	return string(b)
}
