package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Event types recorded over a thread's lifecycle.
const (
	EventAckSent            = "ack_sent"
	EventDebounceStart      = "debounce_start"
	EventDebounceEnd        = "debounce_end"
	EventAnswerSent         = "answer_sent"
	EventClarifySent        = "clarify_sent"
	EventNeedsReviewCreated = "needs_review_created"
	EventUrgentFlagged      = "urgent_flagged"
)

var eventTypes = map[string]struct{}{
	EventAckSent:            {},
	EventDebounceStart:      {},
	EventDebounceEnd:        {},
	EventAnswerSent:         {},
	EventClarifySent:        {},
	EventNeedsReviewCreated: {},
	EventUrgentFlagged:      {},
}

// ValidEventType reports whether s is a known event type.
func ValidEventType(s string) bool {
	_, ok := eventTypes[s]
	return ok
}

// Event is an append-only audit record of a thread-lifecycle occurrence.
// Rows are written once by the timer/ingestion collaborators and never
// updated, so it carries a single ts instead of created_at/updated_at.
type Event struct {
	ID       uuid.UUID      `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	TenantID uuid.UUID      `json:"tenant_id" gorm:"column:tenant_id;type:uuid;not null;index"`
	ThreadID uuid.UUID      `json:"thread_id" gorm:"column:thread_id;type:uuid;not null;index"`
	Type     string         `json:"type" gorm:"column:type;size:50;not null" validate:"required"`
	Meta     datatypes.JSON `json:"meta,omitempty" gorm:"type:jsonb;column:meta"`
	Ts       time.Time      `json:"ts" gorm:"column:ts;autoCreateTime"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Thread *Thread `json:"-" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Event) TableName() string {
	return "events"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
