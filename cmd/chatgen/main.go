package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/JG4N6/Random-Chat-Generator/internal/api"
	"github.com/JG4N6/Random-Chat-Generator/internal/chat"
	"github.com/JG4N6/Random-Chat-Generator/internal/config"
	"github.com/JG4N6/Random-Chat-Generator/internal/events"
	"github.com/JG4N6/Random-Chat-Generator/internal/export"
	"github.com/JG4N6/Random-Chat-Generator/internal/store"
)

func main() {
	serve := flag.Bool("serve", false, "run as a service (HTTP API + NATS request handling) instead of one-shot generation")
	flag.Parse()

	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	slog.Info("chatgen starting", "seed", seed, "serve", *serve)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	chatCfg := chat.DefaultConfig()
	chatCfg.MaxRetries = cfg.MaxRetries
	chatCfg.Likelihoods = chat.Likelihoods{
		Attachment: cfg.AttachmentLikelihood,
		Sent:       cfg.SentLikelihood,
		Delivered:  cfg.DeliveredLikelihood,
		Read:       cfg.ReadLikelihood,
		Deleted:    cfg.DeletedLikelihood,
	}
	gen := chat.NewGenerator(rng, chatCfg, slog.Default())

	// Dataset archive (optional — chatgen works without Postgres, just no history)
	var db *store.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			slog.Error("failed to ensure archive schema", "error", err)
			os.Exit(1)
		}
		slog.Info("dataset archive connected")
	} else {
		slog.Warn("DATABASE_URL not set — running without dataset archive")
	}

	// Event client (optional — announcements and on-demand generation over NATS)
	var bus *events.Client
	if cfg.NatsURL != "" {
		var err error
		bus, err = events.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer bus.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)
	}

	if *serve {
		runServe(cfg, gen, db, bus)
		return
	}

	if err := runOnce(ctx, cfg, gen, db, bus, flag.Arg(0)); err != nil {
		slog.Error("generation failed", "error", err)
		os.Exit(1)
	}
}

// runOnce generates a single dataset and writes it to disk.
func runOnce(ctx context.Context, cfg config.Config, gen *chat.Generator, db *store.Store, bus *events.Client, filename string) error {
	ds, err := gen.Generate(chat.Params{
		Platform:     cfg.Platform,
		Participants: cfg.Participants,
	})
	if err != nil {
		return err
	}

	doc := export.BuildDocument(ds)
	path, err := export.Save(doc, ds, cfg.OutDir, filename, slog.Default())
	if err != nil {
		return err
	}

	id := uuid.New()
	if db != nil {
		document, err := json.Marshal(doc)
		if err != nil {
			return err
		}
		if err := db.SaveDataset(ctx, id, ds, document); err != nil {
			return err
		}
		slog.Info("dataset archived", "id", id)
	}

	if bus != nil {
		announce(bus, id, ds, path)
	}
	return nil
}

// runServe exposes generation over HTTP and, when NATS is configured,
// over chatgen.generate.request.
func runServe(cfg config.Config, gen *chat.Generator, db *store.Store, bus *events.Client) {
	if bus != nil {
		err := bus.Subscribe(events.SubjectGenerateRequest, func(subject string, data []byte) {
			var req events.GenerateRequest
			if err := json.Unmarshal(data, &req); err != nil {
				slog.Warn("invalid generate request", "error", err)
				return
			}
			ds, err := gen.Generate(chat.Params{
				Platform:     req.Platform,
				Participants: req.Participants,
				MessageCount: req.MessageCount,
			})
			if err != nil {
				slog.Error("requested generation failed", "error", err)
				return
			}
			announce(bus, uuid.New(), ds, "")
		})
		if err != nil {
			slog.Error("failed to subscribe to generate requests", "error", err)
			os.Exit(1)
		}
	}

	srv := api.NewServer(cfg.Port, gen, db, slog.Default())
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("chatgen ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	slog.Info("chatgen stopped")
}

func announce(bus *events.Client, id uuid.UUID, ds *chat.Dataset, path string) {
	err := bus.Publish(events.SubjectDatasetGenerated, events.DatasetAnnouncement{
		DatasetID:     id.String(),
		Platform:      ds.Platform,
		Participants:  len(ds.Participants),
		Messages:      len(ds.Messages),
		Attachments:   len(ds.Attachments),
		CaseNumber:    ds.CaseData.CaseNumber,
		OperationName: ds.CaseData.OperationName,
		Path:          path,
		GeneratedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		slog.Warn("failed to publish dataset announcement", "error", err)
	}
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
