package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentModel merepresentasikan tabel departments.
// HeadUserID menunjuk user ber-role hod yang memimpin department ini.
type DepartmentModel struct {
	DepartmentID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:department_id" json:"department_id"`
	DepartmentName       string     `gorm:"size:120;not null;uniqueIndex;column:department_name" json:"department_name"`
	DepartmentHeadUserID *uuid.UUID `gorm:"type:uuid;column:department_head_user_id" json:"department_head_user_id,omitempty"`
	DepartmentDesc       *string    `gorm:"type:text;column:department_desc" json:"department_desc,omitempty"`

	DepartmentCreatedAt time.Time      `gorm:"autoCreateTime;column:department_created_at" json:"department_created_at"`
	DepartmentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:department_updated_at" json:"department_updated_at"`
	DepartmentDeletedAt gorm.DeletedAt `gorm:"column:department_deleted_at;index" json:"department_deleted_at,omitempty"`
}

func (DepartmentModel) TableName() string { return "departments" }
