package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// SubjectDatasetGenerated announces a freshly generated dataset.
const SubjectDatasetGenerated = "chatgen.dataset.generated"

// SubjectGenerateRequest asks a running chatgen instance to produce a
// dataset on demand.
const SubjectGenerateRequest = "chatgen.generate.request"

// DatasetAnnouncement is the payload published for each generated dataset.
type DatasetAnnouncement struct {
	DatasetID     string `json:"dataset_id"`
	Platform      string `json:"platform"`
	Participants  int    `json:"participants"`
	Messages      int    `json:"messages"`
	Attachments   int    `json:"attachments"`
	CaseNumber    string `json:"case_number"`
	OperationName string `json:"operation_name"`
	Path          string `json:"path,omitempty"`
	GeneratedAt   string `json:"generated_at"`
}

// GenerateRequest is the payload accepted on SubjectGenerateRequest. Zero
// values mean "pick randomly".
type GenerateRequest struct {
	Platform     string `json:"platform,omitempty"`
	Participants int    `json:"participants,omitempty"`
	MessageCount int    `json:"message_count,omitempty"`
}

type Client struct {
	conn   *nats.Conn
	subs   []*nats.Subscription
	logger *slog.Logger
}

func NewClient(ctx context.Context, url, token string, logger *slog.Logger) (*Client, error) {
	opts := []nats.Option{
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(60),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if token != "" {
		opts = append(opts, nats.Token(token))
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	return &Client{conn: nc, logger: logger}, nil
}

func (c *Client) Publish(subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	return c.conn.Publish(subject, payload)
}

func (c *Client) Subscribe(subject string, handler func(subject string, data []byte)) error {
	sub, err := c.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Subject, msg.Data)
	})
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", subject, err)
	}
	c.subs = append(c.subs, sub)
	c.logger.Info("subscribed", "subject", subject)
	return nil
}

func (c *Client) Close() {
	for _, sub := range c.subs {
		_ = sub.Unsubscribe()
	}
	c.conn.Close()
}
