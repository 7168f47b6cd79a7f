package chat

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one party in a generated conversation.
type Participant struct {
	Name     string            `json:"name"`     // real name
	Alias    string            `json:"alias"`    // platform display name
	Platform string            `json:"platform"` // platform the account belongs to
	Avatars  map[string]string `json:"avatars"`  // left/right/center variants
	UUID     uuid.UUID         `json:"uuid"`
	Color    string            `json:"color"` // hex code
	StyleID  int               `json:"style_id"`
}

// Exhibit is the evidential source a chat extraction is attributed to.
type Exhibit struct {
	UUID           uuid.UUID `json:"uuid"`
	CaseID         string    `json:"case_id"`
	ExhibitNumber  int       `json:"exhibit_number"`
	PoliceNumber   string    `json:"police_number"`
	ExtractionDate time.Time `json:"extraction_date"`
	Name           string    `json:"name"`
}

// Attachment is a file referenced by a message.
type Attachment struct {
	UUID         uuid.UUID `json:"uuid"`
	Type         string    `json:"type"` // image, video, audio, link, file
	FileName     string    `json:"file_name"`
	FileLocation string    `json:"file_location"`
	MessageUUID  uuid.UUID `json:"message_uuid"`
	SenderUUID   uuid.UUID `json:"sender_uuid"`
}

// Message is a single chat message with its delivery lifecycle.
type Message struct {
	SenderUUID        uuid.UUID  `json:"sender_uuid"`
	UUID              uuid.UUID  `json:"uuid"`
	HasAttachment     bool       `json:"has_attachment"`
	SendDatetime      time.Time  `json:"send_datetime"`
	SentStatus        bool       `json:"sent_status"`
	Text              string     `json:"text"`
	DeliveredDatetime *time.Time `json:"delivered_datetime"`
	DeliveredStatus   bool       `json:"delivered_status"`
	ReadDatetime      *time.Time `json:"read_datetime"`
	ReadStatus        bool       `json:"read_status"`
	DeletedDatetime   *time.Time `json:"deleted_datetime"`
	DeletedStatus     bool       `json:"deleted_status"`
	PlatformName      string     `json:"platform_name"`
	ExhibitUUID       uuid.UUID  `json:"exhibit_uuid"`
}

// CaseData is the case metadata a generated chat belongs to.
type CaseData struct {
	FileNumber    string    `json:"file_number"`
	CaseNumber    string    `json:"case_number"`
	OperationName string    `json:"operation_name"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	ExhibitsUsed  []string  `json:"exhibits_used"`
	Notes         string    `json:"notes"`
}

// Dataset is one fully assembled synthetic chat.
type Dataset struct {
	Platform     string
	Participants map[uuid.UUID]Participant
	Exhibits     map[uuid.UUID]Exhibit
	Attachments  []Attachment
	Messages     []Message
	CaseData     CaseData
}

// ConfigurationError reports an invalid generator configuration. It is
// surfaced immediately, never retried.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}
