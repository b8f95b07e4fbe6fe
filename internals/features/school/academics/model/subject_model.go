package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubjectModel merepresentasikan tabel subjects (mata pelajaran).
// Kode unik per department — index parsial (baris soft-deleted tidak
// ikut), jadi kode subject yang sudah dihapus bisa dipakai ulang.
type SubjectModel struct {
	SubjectID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectCode         string    `gorm:"size:40;not null;uniqueIndex:uq_subjects_code_department,where:subject_deleted_at IS NULL;column:subject_code" json:"subject_code"`
	SubjectName         string    `gorm:"size:120;not null;column:subject_name" json:"subject_name"`
	SubjectDepartmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_subjects_code_department;column:subject_department_id" json:"subject_department_id"`
	SubjectDesc         *string   `gorm:"type:text;column:subject_desc" json:"subject_desc,omitempty"`

	SubjectCreatedAt time.Time      `gorm:"autoCreateTime;column:subject_created_at" json:"subject_created_at"`
	SubjectUpdatedAt time.Time      `gorm:"autoUpdateTime;column:subject_updated_at" json:"subject_updated_at"`
	SubjectDeletedAt gorm.DeletedAt `gorm:"column:subject_deleted_at;index" json:"subject_deleted_at,omitempty"`
}

func (SubjectModel) TableName() string { return "subjects" }
