package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Label is a tenant-scoped label name for tagging threads and messages.
// Threads still store their labels inline as a JSONB array; this table holds
// the UI-managed vocabulary and allows joins if ever needed.
type Label struct {
	ID          uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	TenantID    uuid.UUID `json:"tenant_id" gorm:"column:tenant_id;type:uuid;not null;uniqueIndex:uq_labels_name,priority:1"`
	Name        string    `json:"name" gorm:"column:name;size:64;not null;uniqueIndex:uq_labels_name,priority:2" validate:"required,max=64"`
	Description *string   `json:"description,omitempty" gorm:"column:description;size:255"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Label) TableName() string {
	return "labels"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (l *Label) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
