package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentParentModel adalah junction (student × parent).
// Insert menolak duplikat (409); delete idempotent — asimetri disengaja.
type StudentParentModel struct {
	StudentParentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_parent_id" json:"student_parent_id"`
	StudentParentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_parents;column:student_parent_student_id" json:"student_parent_student_id"`
	StudentParentParentID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_parents;column:student_parent_parent_id" json:"student_parent_parent_id"`

	StudentParentCreatedAt time.Time `gorm:"autoCreateTime;column:student_parent_created_at" json:"student_parent_created_at"`
}

func (StudentParentModel) TableName() string { return "student_parents" }
