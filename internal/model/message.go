package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Message directions.
const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

// ValidDirection reports whether s is a known message direction.
func ValidDirection(s string) bool {
	return s == DirectionInbound || s == DirectionOutbound
}

// Message is a single message within a thread. PlatformMessageID is unique
// per tenant when present; the platform itself is deduced via the thread's
// channel. Note the uniqueness scope omits the channel, so cross-channel ID
// collisions within one tenant are theoretically possible (inherited from the
// upstream schema, deliberately left as-is).
type Message struct {
	ID                uuid.UUID      `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	TenantID          uuid.UUID      `json:"tenant_id" gorm:"column:tenant_id;type:uuid;not null;uniqueIndex:uq_messages_platform_msg,priority:1"`
	ThreadID          uuid.UUID      `json:"thread_id" gorm:"column:thread_id;type:uuid;not null;index"`
	PlatformMessageID *string        `json:"platform_message_id,omitempty" gorm:"column:platform_message_id;size:255;uniqueIndex:uq_messages_platform_msg,priority:2"`
	Direction         string         `json:"direction" gorm:"column:direction;size:10;not null" validate:"required,oneof=inbound outbound"`
	Text              *string        `json:"text,omitempty" gorm:"column:text;type:text"`
	Media             datatypes.JSON `json:"media,omitempty" gorm:"type:jsonb;column:media"`
	Language          *string        `json:"language,omitempty" gorm:"column:language;size:10"`
	CreatedAt         time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Thread *Thread `json:"-" gorm:"foreignKey:ThreadID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
