package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Thread channels (inbound platforms).
const (
	ChannelWhatsApp  = "wa"
	ChannelInstagram = "ig"
	ChannelFacebook  = "fb"
)

// Thread statuses.
const (
	ThreadStatusOpen   = "open"
	ThreadStatusPaused = "paused"
	ThreadStatusClosed = "closed"
)

// ValidChannel reports whether s is a known channel value.
func ValidChannel(s string) bool {
	switch s {
	case ChannelWhatsApp, ChannelInstagram, ChannelFacebook:
		return true
	}
	return false
}

// ValidThreadStatus reports whether s is a known thread status.
func ValidThreadStatus(s string) bool {
	switch s {
	case ThreadStatusOpen, ThreadStatusPaused, ThreadStatusClosed:
		return true
	}
	return false
}

// Thread is a conversation between a tenant and a customer on one channel.
// Labels are stored as a JSONB array of strings for quick filtering; the
// canonical per-tenant vocabulary lives in the labels table.
type Thread struct {
	ID               uuid.UUID      `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	TenantID         uuid.UUID      `json:"tenant_id" gorm:"column:tenant_id;type:uuid;not null;uniqueIndex:uq_threads_platform,priority:1"`
	Channel          string         `json:"channel" gorm:"column:channel;size:10;not null;uniqueIndex:uq_threads_platform,priority:2" validate:"required,oneof=wa ig fb"`
	PlatformThreadID string         `json:"platform_thread_id" gorm:"column:platform_thread_id;size:255;not null;uniqueIndex:uq_threads_platform,priority:3" validate:"required,max=255"`
	CustomerID       *uuid.UUID     `json:"customer_id,omitempty" gorm:"column:customer_id;type:uuid;index"`
	Status           string         `json:"status" gorm:"column:status;size:10;not null;default:open" validate:"omitempty,oneof=open paused closed"`
	Labels           datatypes.JSON `json:"labels,omitempty" gorm:"type:jsonb;column:labels"`
	CreatedAt        time.Time      `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time      `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Tenant   *Tenant   `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Customer *Customer `json:"-" gorm:"foreignKey:CustomerID;constraint:OnDelete:SET NULL"`
}

// TableName specifies the table name for GORM.
func (Thread) TableName() string {
	return "threads"
}

// BeforeCreate assigns a UUID primary key and the default status.
func (t *Thread) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.Status == "" {
		t.Status = ThreadStatusOpen
	}
	return nil
}
