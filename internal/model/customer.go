package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer represents an end user reaching the tenant over one platform.
// (tenant_id, platform, platform_user_id) is semantically unique but carried
// as a plain index: the upstream schema never enforced it as a constraint.
type Customer struct {
	ID             uuid.UUID `json:"id" gorm:"column:id;type:uuid;primaryKey"`
	TenantID       uuid.UUID `json:"tenant_id" gorm:"column:tenant_id;type:uuid;not null;index:idx_customers_identity,priority:1"`
	Platform       string    `json:"platform" gorm:"column:platform;size:50;not null;index:idx_customers_identity,priority:2" validate:"required,max=50"`
	PlatformUserID string    `json:"platform_user_id" gorm:"column:platform_user_id;size:255;not null;index:idx_customers_identity,priority:3" validate:"required,max=255"`
	Phone          *string   `json:"phone,omitempty" gorm:"column:phone;size:20"`
	Email          *string   `json:"email,omitempty" gorm:"column:email;size:255"`
	CreatedAt      time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"column:updated_at;autoUpdateTime"`

	Tenant *Tenant `json:"-" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (Customer) TableName() string {
	return "customers"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
