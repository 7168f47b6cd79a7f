package chat

import (
	"math/rand"
	"path"
	"time"

	"github.com/google/uuid"
)

// DelayRange bounds the random delay, in seconds, between lifecycle
// transitions of a message.
type DelayRange struct {
	Min int
	Max int
}

// Likelihoods are the per-message probabilities of each lifecycle event.
type Likelihoods struct {
	Attachment float64
	Sent       float64
	Delivered  float64
	Read       float64
	Deleted    float64
}

// Timing holds the delay ranges applied after a message's send instant.
type Timing struct {
	DeliveryDelay DelayRange
	ReadDelay     DelayRange
	DeleteDelay   DelayRange
}

func DefaultLikelihoods() Likelihoods {
	return Likelihoods{
		Attachment: 0.3,
		Sent:       0.98,
		Delivered:  0.9,
		Read:       0.75,
		Deleted:    0.05,
	}
}

func DefaultTiming() Timing {
	return Timing{
		DeliveryDelay: DelayRange{Min: 1, Max: 120},
		ReadDelay:     DelayRange{Min: 5, Max: 600},
		DeleteDelay:   DelayRange{Min: 60, Max: 86400},
	}
}

// NewMessage generates a message at the given send instant, together with
// any attachments it carries. Delivery implies sent and read implies
// delivered; deletion is independent of the rest of the lifecycle.
func NewMessage(rng *rand.Rand, ref time.Time, senderUUID, exhibitUUID uuid.UUID, platform string, lk Likelihoods, tm Timing) (Message, []Attachment) {
	messageUUID := uuid.New()

	hasAttachment := rng.Float64() < lk.Attachment
	sent := rng.Float64() < lk.Sent

	delivered := sent && rng.Float64() < lk.Delivered
	var deliveredAt *time.Time
	if delivered {
		deliveredAt = delayed(rng, ref, tm.DeliveryDelay)
	}

	read := delivered && rng.Float64() < lk.Read
	var readAt *time.Time
	if read {
		readAt = delayed(rng, ref, tm.ReadDelay)
	}

	deleted := rng.Float64() < lk.Deleted
	var deletedAt *time.Time
	if deleted {
		deletedAt = delayed(rng, ref, tm.DeleteDelay)
	}

	var attachments []Attachment
	if hasAttachment {
		n := 1 + rng.Intn(4)
		for i := 0; i < n; i++ {
			attachments = append(attachments, NewAttachment(rng, messageUUID, senderUUID))
		}
	}

	msg := Message{
		SenderUUID:        senderUUID,
		UUID:              messageUUID,
		HasAttachment:     hasAttachment,
		SendDatetime:      ref,
		SentStatus:        sent,
		Text:              messageTexts[rng.Intn(len(messageTexts))],
		DeliveredDatetime: deliveredAt,
		DeliveredStatus:   delivered,
		ReadDatetime:      readAt,
		ReadStatus:        read,
		DeletedDatetime:   deletedAt,
		DeletedStatus:     deleted,
		PlatformName:      platform,
		ExhibitUUID:       exhibitUUID,
	}
	return msg, attachments
}

func delayed(rng *rand.Rand, ref time.Time, r DelayRange) *time.Time {
	t := ref.Add(time.Duration(r.Min+rng.Intn(r.Max-r.Min+1)) * time.Second)
	return &t
}

// NewAttachment generates an attachment of a random type for a message.
func NewAttachment(rng *rand.Rand, messageUUID, senderUUID uuid.UUID) Attachment {
	kind := attachmentKinds[rng.Intn(len(attachmentKinds))]
	cfg := attachmentTypes[kind]
	fileName := cfg.Files[rng.Intn(len(cfg.Files))]

	return Attachment{
		UUID:         uuid.New(),
		Type:         kind,
		FileName:     fileName,
		FileLocation: path.Join(cfg.Path, fileName),
		MessageUUID:  messageUUID,
		SenderUUID:   senderUUID,
	}
}
