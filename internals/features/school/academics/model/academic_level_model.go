package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AcademicLevelModel merepresentasikan tabel academic_levels (tingkatan/kelas besar).
type AcademicLevelModel struct {
	AcademicLevelID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:academic_level_id" json:"academic_level_id"`
	AcademicLevelName string    `gorm:"size:80;not null;uniqueIndex;column:academic_level_name" json:"academic_level_name"`
	AcademicLevelRank int       `gorm:"not null;column:academic_level_rank" json:"academic_level_rank"`

	AcademicLevelCreatedAt time.Time      `gorm:"autoCreateTime;column:academic_level_created_at" json:"academic_level_created_at"`
	AcademicLevelUpdatedAt time.Time      `gorm:"autoUpdateTime;column:academic_level_updated_at" json:"academic_level_updated_at"`
	AcademicLevelDeletedAt gorm.DeletedAt `gorm:"column:academic_level_deleted_at;index" json:"academic_level_deleted_at,omitempty"`
}

func (AcademicLevelModel) TableName() string { return "academic_levels" }
