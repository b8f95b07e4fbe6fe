package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClassModel merepresentasikan tabel classes (rombongan belajar).
type ClassModel struct {
	ClassID                uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_id" json:"class_id"`
	ClassName              string     `gorm:"size:120;not null;column:class_name" json:"class_name"`
	ClassAcademicLevelID   uuid.UUID  `gorm:"type:uuid;not null;column:class_academic_level_id" json:"class_academic_level_id"`
	ClassHomeroomTeacherID *uuid.UUID `gorm:"type:uuid;column:class_homeroom_teacher_id" json:"class_homeroom_teacher_id,omitempty"`
	ClassCapacity          *int       `gorm:"column:class_capacity" json:"class_capacity,omitempty"`

	ClassCreatedAt time.Time      `gorm:"autoCreateTime;column:class_created_at" json:"class_created_at"`
	ClassUpdatedAt time.Time      `gorm:"autoUpdateTime;column:class_updated_at" json:"class_updated_at"`
	ClassDeletedAt gorm.DeletedAt `gorm:"column:class_deleted_at;index" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string { return "classes" }
