// Package export renders generated datasets into the persisted JSON layout:
// messages keyed by their RFC 3339 send time, everything else keyed by UUID.
package export

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/JG4N6/Random-Chat-Generator/internal/chat"
)

// DefaultSaveRoot is where generated files land when no directory is
// configured.
const DefaultSaveRoot = "generated_chats"

// Document is the top-level persisted JSON shape.
type Document struct {
	Messages     map[string]chat.Message     `json:"messages"`
	Attachments  map[string]chat.Attachment  `json:"attachments"`
	Participants map[string]chat.Participant `json:"participants"`
	Exhibits     map[string]chat.Exhibit     `json:"exhibits"`
	CaseData     chat.CaseData               `json:"case_data"`
}

// BuildDocument converts a dataset into its persisted layout.
func BuildDocument(ds *chat.Dataset) Document {
	doc := Document{
		Messages:     make(map[string]chat.Message, len(ds.Messages)),
		Attachments:  make(map[string]chat.Attachment, len(ds.Attachments)),
		Participants: make(map[string]chat.Participant, len(ds.Participants)),
		Exhibits:     make(map[string]chat.Exhibit, len(ds.Exhibits)),
		CaseData:     ds.CaseData,
	}

	for _, msg := range ds.Messages {
		// Two messages can share a send instant (window-end clamping); a
		// duplicate key would silently drop one. Nudge this copy back a
		// nanosecond at a time until its key is free.
		for {
			key := msg.SendDatetime.Format(time.RFC3339Nano)
			if _, taken := doc.Messages[key]; !taken {
				doc.Messages[key] = msg
				break
			}
			msg.SendDatetime = msg.SendDatetime.Add(-time.Nanosecond)
		}
	}
	for _, att := range ds.Attachments {
		doc.Attachments[att.UUID.String()] = att
	}
	for id, p := range ds.Participants {
		doc.Participants[id.String()] = p
	}
	for id, ex := range ds.Exhibits {
		doc.Exhibits[id.String()] = ex
	}
	return doc
}

// Save writes the document under dir, creating it if needed. An empty
// filename gets an automatic one derived from the dataset shape.
func Save(doc Document, ds *chat.Dataset, dir, filename string, logger *slog.Logger) (string, error) {
	if dir == "" {
		dir = DefaultSaveRoot
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create save dir: %w", err)
	}

	if filename == "" {
		filename = AutoFilename(ds, time.Now())
	}
	path := filepath.Join(dir, filename)

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	logger.Info("saved chat dataset", "path", path, "bytes", len(data))
	return path, nil
}

// AutoFilename derives a descriptive file name like
// "3-pax_25-messages_20230101120000.json".
func AutoFilename(ds *chat.Dataset, now time.Time) string {
	return fmt.Sprintf("%d-pax_%d-messages_%s.json", len(ds.Participants), len(ds.Messages), now.Format("20060102150405"))
}
