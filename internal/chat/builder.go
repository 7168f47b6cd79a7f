package chat

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/JG4N6/Random-Chat-Generator/internal/timeline"
	"github.com/google/uuid"
)

const maxParticipants = 6

// Config tunes dataset generation.
type Config struct {
	Likelihoods Likelihoods
	Timing      Timing
	MaxRetries  int            // timeline retry ceiling; 0 means default
	Location    *time.Location // zone for exhibit extraction dates; nil means UTC
}

func DefaultConfig() Config {
	return Config{
		Likelihoods: DefaultLikelihoods(),
		Timing:      DefaultTiming(),
	}
}

// Params narrows a single generation run. Zero values mean "pick randomly".
type Params struct {
	Platform     string
	Participants int
	MessageCount int
}

// Generator assembles complete synthetic chat datasets.
type Generator struct {
	mu       sync.Mutex
	rng      *rand.Rand
	timeline *timeline.Builder
	cfg      Config
	logger   *slog.Logger
}

func NewGenerator(rng *rand.Rand, cfg Config, logger *slog.Logger) *Generator {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	sampler := timeline.NewSampler(rng, cfg.MaxRetries)
	return &Generator{
		rng:      rng,
		timeline: timeline.NewBuilder(sampler, timeline.WeightedCount(rng), logger),
		cfg:      cfg,
		logger:   logger,
	}
}

// Generate produces one dataset. Safe for concurrent use; the shared
// random source is guarded.
func (g *Generator) Generate(p Params) (*Dataset, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	platform := p.Platform
	if platform == "" {
		platform = platforms[g.rng.Intn(len(platforms))]
	}
	g.logger.Info("chat platform selected", "platform", platform)

	participants, err := g.generateParticipants(p.Participants)
	if err != nil {
		return nil, err
	}
	g.logger.Info("participants generated", "count", len(participants), "aliases", aliasList(participants))

	caseData := NewCaseData(g.rng)

	exhibits := make(map[uuid.UUID]Exhibit, len(participants))
	now := time.Now()
	for range participants {
		ex := NewExhibit(g.rng, caseData, now, g.cfg.Location)
		exhibits[ex.UUID] = ex
		caseData.ExhibitsUsed = append(caseData.ExhibitsUsed, ex.Name)
	}
	g.logger.Info("exhibits generated", "count", len(exhibits))

	instants, err := g.timeline.Build(caseData.StartDate, caseData.EndDate, p.MessageCount)
	if err != nil {
		return nil, fmt.Errorf("build timeline: %w", err)
	}

	participantIDs := sortedKeys(participants)
	exhibitIDs := sortedExhibitKeys(exhibits)

	ds := &Dataset{
		Platform:     platform,
		Participants: participants,
		Exhibits:     exhibits,
		CaseData:     caseData,
	}

	for _, ref := range instants {
		sender := participantIDs[g.rng.Intn(len(participantIDs))]
		exhibit := exhibitIDs[g.rng.Intn(len(exhibitIDs))]

		msg, attachments := NewMessage(g.rng, ref, sender, exhibit, platform, g.cfg.Likelihoods, g.cfg.Timing)
		ds.Messages = append(ds.Messages, msg)
		ds.Attachments = append(ds.Attachments, attachments...)
	}

	sort.Slice(ds.Messages, func(i, j int) bool {
		return ds.Messages[i].SendDatetime.Before(ds.Messages[j].SendDatetime)
	})

	g.logger.Info("chat generated", "messages", len(ds.Messages), "attachments", len(ds.Attachments))
	return ds, nil
}

func (g *Generator) generateParticipants(n int) (map[uuid.UUID]Participant, error) {
	if n <= 0 {
		n = 2 + g.rng.Intn(maxParticipants-1)
	}

	styleIDs, err := DistantStyleIDs(n)
	if err != nil {
		return nil, err
	}

	participants := make(map[uuid.UUID]Participant, n)
	for _, id := range styleIDs {
		p := NewParticipant(g.rng, id)
		participants[p.UUID] = p
	}
	return participants, nil
}

func aliasList(participants map[uuid.UUID]Participant) string {
	aliases := make([]string, 0, len(participants))
	for _, p := range participants {
		aliases = append(aliases, p.Alias)
	}
	sort.Strings(aliases)
	return strings.Join(aliases, ", ")
}

// sortedKeys gives a stable draw order over the participant map; iterating
// the map directly would make seeded runs non-reproducible.
func sortedKeys(m map[uuid.UUID]Participant) []uuid.UUID {
	keys := make([]uuid.UUID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

func sortedExhibitKeys(m map[uuid.UUID]Exhibit) []uuid.UUID {
	keys := make([]uuid.UUID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}
