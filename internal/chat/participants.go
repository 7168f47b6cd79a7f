package chat

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// DistantStyleIDs picks n style identifiers spread evenly across the
// available pool, so adjacent participants don't end up with near-identical
// colours. Requesting more styles than exist is a configuration error.
func DistantStyleIDs(n int) ([]int, error) {
	available := make([]int, 0, len(styleColors))
	for id := range styleColors {
		available = append(available, id)
	}
	sort.Ints(available)

	if n > len(available) {
		return nil, &ConfigurationError{
			Msg: fmt.Sprintf("cannot generate %d unique style IDs - only %d available", n, len(available)),
		}
	}

	step := len(available) / n
	ids := make([]int, 0, n)
	for i := 0; i < len(available) && len(ids) < n; i += step {
		ids = append(ids, available[i])
	}
	return ids, nil
}

// NewParticipant generates a participant using the given style identifier.
// An unknown style falls back to a random valid one.
func NewParticipant(rng *rand.Rand, styleID int) Participant {
	name, alias := participantName(rng)

	if _, ok := styleColors[styleID]; !ok {
		ids := make([]int, 0, len(styleColors))
		for id := range styleColors {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		styleID = ids[rng.Intn(len(ids))]
	}

	base := styleAvatars[styleID]
	avatars := map[string]string{
		"left":   strings.Replace(base, ".png", "_l.png", 1),
		"right":  strings.Replace(base, ".png", "_r.png", 1),
		"center": strings.Replace(base, ".png", "_c.png", 1),
	}

	return Participant{
		Name:     name,
		Alias:    alias,
		Platform: platforms[rng.Intn(len(platforms))],
		Avatars:  avatars,
		UUID:     uuid.New(),
		Color:    styleColors[styleID],
		StyleID:  styleID,
	}
}

// participantName returns a real name plus a decorated platform alias.
func participantName(rng *rand.Rand) (string, string) {
	name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
	alias := aliasSeeds[rng.Intn(len(aliasSeeds))]

	if rng.Intn(2) == 0 {
		switch {
		case rng.Intn(2) == 0:
			alias = fmt.Sprintf("%s_%d", alias, rng.Intn(1000)+1)
		case rng.Intn(2) == 0:
			alias = "__" + alias + "__"
		case rng.Intn(2) == 0:
			alias += aliasSuffixes[rng.Intn(len(aliasSuffixes))]
		}
	}

	return name, alias
}
