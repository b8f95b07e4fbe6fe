package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassSubjectTeacherModel adalah junction (class × subject × teacher).
// Natural key: kombinasi ketiganya — unique constraint di DB adalah
// otoritas terakhir untuk duplikasi (cek aplikasi hanya fast-path).
// Delete = hard delete: tidak ada update-in-place, ganti penugasan
// dilakukan dengan hapus lalu buat ulang — baris lama tidak boleh
// menyandera unique constraint.
type ClassSubjectTeacherModel struct {
	ClassSubjectTeacherID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_subject_teacher_id" json:"class_subject_teacher_id"`
	ClassSubjectTeacherClassID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_subject_teachers;column:class_subject_teacher_class_id" json:"class_subject_teacher_class_id"`
	ClassSubjectTeacherSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_subject_teachers;column:class_subject_teacher_subject_id" json:"class_subject_teacher_subject_id"`
	ClassSubjectTeacherTeacherID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_subject_teachers;column:class_subject_teacher_teacher_id" json:"class_subject_teacher_teacher_id"`

	ClassSubjectTeacherCreatedAt time.Time `gorm:"autoCreateTime;column:class_subject_teacher_created_at" json:"class_subject_teacher_created_at"`
}

func (ClassSubjectTeacherModel) TableName() string { return "class_subject_teachers" }
