package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ParentModel adalah role-profile (one-to-one) untuk user dengan role parent.
type ParentModel struct {
	ParentID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`
	ParentUserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex;column:parent_user_id" json:"parent_user_id"`
	ParentOccupation *string   `gorm:"size:120;column:parent_occupation" json:"parent_occupation,omitempty"`
	ParentAddress    *string   `gorm:"type:text;column:parent_address" json:"parent_address,omitempty"`

	ParentCreatedAt time.Time      `gorm:"autoCreateTime;column:parent_created_at" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:parent_updated_at" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at;index" json:"parent_deleted_at,omitempty"`
}

func (ParentModel) TableName() string { return "parents" }
