//go:build integration

package store

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"testing"

	"github.com/JG4N6/Random-Chat-Generator/internal/chat"
	"github.com/JG4N6/Random-Chat-Generator/internal/export"
	"github.com/google/uuid"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	s, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
	})
	return s
}

func TestIntegration_SaveAndFetchDataset(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gen := chat.NewGenerator(rand.New(rand.NewSource(1)), chat.DefaultConfig(), logger)
	ds, err := gen.Generate(chat.Params{Participants: 2, MessageCount: 5})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	document, err := json.Marshal(export.BuildDocument(ds))
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}

	id := uuid.New()
	if err := s.SaveDataset(ctx, id, ds, document); err != nil {
		t.Fatalf("SaveDataset failed: %v", err)
	}

	fetched, err := s.GetDocument(ctx, id)
	if err != nil {
		t.Fatalf("GetDocument failed: %v", err)
	}
	if len(fetched) == 0 {
		t.Fatal("expected non-empty document")
	}

	summaries, err := s.ListRecent(ctx, 10)
	if err != nil {
		t.Fatalf("ListRecent failed: %v", err)
	}
	found := false
	for _, sum := range summaries {
		if sum.ID == id {
			found = true
			if sum.MessageCount != 5 {
				t.Errorf("message_count = %d, want 5", sum.MessageCount)
			}
			if sum.ParticipantCount != 2 {
				t.Errorf("participant_count = %d, want 2", sum.ParticipantCount)
			}
		}
	}
	if !found {
		t.Error("saved dataset not in recent list")
	}
}
