package store

import (
	"context"
	"fmt"
	"time"

	"github.com/JG4N6/Random-Chat-Generator/internal/chat"
	"github.com/google/uuid"
)

// DatasetSummary is one archived dataset's metadata row.
type DatasetSummary struct {
	ID               uuid.UUID `json:"id"`
	Platform         string    `json:"platform"`
	ParticipantCount int       `json:"participant_count"`
	MessageCount     int       `json:"message_count"`
	AttachmentCount  int       `json:"attachment_count"`
	CaseNumber       string    `json:"case_number"`
	OperationName    string    `json:"operation_name"`
	WindowStart      time.Time `json:"window_start"`
	WindowEnd        time.Time `json:"window_end"`
	CreatedAt        time.Time `json:"created_at"`
}

// SaveDataset archives a generated dataset together with its rendered
// JSON document.
func (s *Store) SaveDataset(ctx context.Context, id uuid.UUID, ds *chat.Dataset, document []byte) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO chat_datasets (id, platform, participant_count, message_count, attachment_count, case_number, operation_name, window_start, window_end, document)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		id, ds.Platform, len(ds.Participants), len(ds.Messages), len(ds.Attachments),
		ds.CaseData.CaseNumber, ds.CaseData.OperationName,
		ds.CaseData.StartDate, ds.CaseData.EndDate, document,
	)
	if err != nil {
		return fmt.Errorf("insert chat_dataset: %w", err)
	}
	return nil
}

// ListRecent returns summaries of the most recently archived datasets.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]DatasetSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, `
		SELECT id, platform, participant_count, message_count, attachment_count, case_number, operation_name, window_start, window_end, created_at
		FROM chat_datasets
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat_datasets: %w", err)
	}
	defer rows.Close()

	var summaries []DatasetSummary
	for rows.Next() {
		var d DatasetSummary
		if err := rows.Scan(&d.ID, &d.Platform, &d.ParticipantCount, &d.MessageCount, &d.AttachmentCount,
			&d.CaseNumber, &d.OperationName, &d.WindowStart, &d.WindowEnd, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat_dataset: %w", err)
		}
		summaries = append(summaries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat_datasets: %w", err)
	}
	return summaries, nil
}

// GetDocument fetches one archived dataset's rendered JSON.
func (s *Store) GetDocument(ctx context.Context, id uuid.UUID) ([]byte, error) {
	var document []byte
	err := s.pool.QueryRow(ctx, `SELECT document FROM chat_datasets WHERE id = $1`, id).Scan(&document)
	if err != nil {
		return nil, fmt.Errorf("get chat_dataset %s: %w", id, err)
	}
	return document, nil
}
