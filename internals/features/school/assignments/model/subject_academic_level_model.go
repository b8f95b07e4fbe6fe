package model

import (
	"time"

	"github.com/google/uuid"
)

// SubjectAcademicLevelModel adalah junction (subject × academic level)
// dengan flag wajib/pilihan kurikulum. Delete = hard delete supaya
// pemasangan yang dilepas bisa dipasang ulang tanpa terganjal
// unique constraint.
type SubjectAcademicLevelModel struct {
	SubjectAcademicLevelID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_academic_level_id" json:"subject_academic_level_id"`
	SubjectAcademicLevelSubjectID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subject_academic_levels;column:subject_academic_level_subject_id" json:"subject_academic_level_subject_id"`
	SubjectAcademicLevelLevelID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subject_academic_levels;column:subject_academic_level_level_id" json:"subject_academic_level_level_id"`
	// Tanpa tag default: GORM harus selalu menulis nilai eksplisit,
	// kalau tidak is_required=false akan di-skip saat insert.
	SubjectAcademicLevelIsRequired bool `gorm:"not null;column:subject_academic_level_is_required" json:"subject_academic_level_is_required"`

	SubjectAcademicLevelCreatedAt time.Time `gorm:"autoCreateTime;column:subject_academic_level_created_at" json:"subject_academic_level_created_at"`
}

func (SubjectAcademicLevelModel) TableName() string { return "subject_academic_levels" }
