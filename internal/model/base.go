package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditModel carries the audit trail every domain record embeds:
// timestamps, the acting users, and an active flag.
// CreatedBy/UpdatedBy are hard references; a user cannot be deleted
// while any record still points at them (ON DELETE RESTRICT).
type AuditModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CreatedByID uuid.UUID `gorm:"type:uuid;not null" json:"created_by_id" validate:"uuid_required"`
	CreatedBy   *User     `gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT" json:"created_by,omitempty"`
	UpdatedByID uuid.UUID `gorm:"type:uuid;not null" json:"updated_by_id" validate:"uuid_required"`
	UpdatedBy   *User     `gorm:"foreignKey:UpdatedByID;constraint:OnDelete:RESTRICT" json:"updated_by,omitempty"`

	Active bool `gorm:"default:true;index" json:"active"`
}

// Hook Before Create to generate the UUID automatically
func (base *AuditModel) BeforeCreate(tx *gorm.DB) (err error) {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return
}
