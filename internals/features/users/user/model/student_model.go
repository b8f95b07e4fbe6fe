package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel adalah role-profile (one-to-one) untuk user dengan role student.
type StudentModel struct {
	StudentID              uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentUserID          uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex;column:student_user_id" json:"student_user_id"`
	StudentAdmissionNo     string     `gorm:"size:40;not null;uniqueIndex;column:student_admission_no" json:"student_admission_no"`
	StudentClassID         *uuid.UUID `gorm:"type:uuid;column:student_class_id" json:"student_class_id,omitempty"`
	StudentAcademicLevelID *uuid.UUID `gorm:"type:uuid;column:student_academic_level_id" json:"student_academic_level_id,omitempty"`

	StudentCreatedAt time.Time      `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
