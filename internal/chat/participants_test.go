package chat

import (
	"math/rand"
	"strings"
	"testing"
)

func TestDistantStyleIDs_Spread(t *testing.T) {
	ids, err := DistantStyleIDs(3)
	if err != nil {
		t.Fatalf("DistantStyleIDs(3) failed: %v", err)
	}
	if len(ids) != 3 {
		t.Fatalf("expected 3 ids, got %d", len(ids))
	}

	seen := map[int]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate style id %d", id)
		}
		seen[id] = true
		if _, ok := styleColors[id]; !ok {
			t.Errorf("style id %d has no colour", id)
		}
	}
}

func TestDistantStyleIDs_FullPool(t *testing.T) {
	ids, err := DistantStyleIDs(len(styleColors))
	if err != nil {
		t.Fatalf("requesting the whole pool failed: %v", err)
	}
	if len(ids) != len(styleColors) {
		t.Errorf("expected %d ids, got %d", len(styleColors), len(ids))
	}
}

func TestDistantStyleIDs_Exhaustion(t *testing.T) {
	_, err := DistantStyleIDs(len(styleColors) + 1)
	if err == nil {
		t.Fatal("expected configuration error when requesting more styles than exist")
	}
	if _, ok := err.(*ConfigurationError); !ok {
		t.Errorf("expected *ConfigurationError, got %T", err)
	}
}

func TestNewParticipant_Fields(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	p := NewParticipant(rng, 3)

	if p.StyleID != 3 {
		t.Errorf("style id = %d, want 3", p.StyleID)
	}
	if p.Color != styleColors[3] {
		t.Errorf("color = %q, want %q", p.Color, styleColors[3])
	}
	if p.Name == "" || !strings.Contains(p.Name, " ") {
		t.Errorf("name %q should be first + last", p.Name)
	}
	if p.Alias == "" {
		t.Error("alias should not be empty")
	}
	if p.UUID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("participant uuid not set")
	}

	for _, side := range []string{"left", "right", "center"} {
		av, ok := p.Avatars[side]
		if !ok {
			t.Errorf("missing %s avatar", side)
			continue
		}
		want := "_" + side[:1] + ".png"
		if !strings.HasSuffix(av, want) {
			t.Errorf("%s avatar %q should end with %s", side, av, want)
		}
	}
}

func TestNewParticipant_UnknownStyleFallsBack(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	p := NewParticipant(rng, 999)

	if _, ok := styleColors[p.StyleID]; !ok {
		t.Errorf("fallback style id %d is not a valid style", p.StyleID)
	}
}
