package model

import (
	"time"

	"github.com/google/uuid"
)

// Status absensi yang dikenal
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceLate    = "late"
	AttendanceExcused = "excused"
)

// AttendanceRecordModel merepresentasikan tabel attendance_records.
// Natural key (student_id, date) — penandaan idempotent via upsert.
type AttendanceRecordModel struct {
	AttendanceRecordID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordDate         time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordStatus       string    `gorm:"type:varchar(10);not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordMarkedByID   uuid.UUID `gorm:"type:uuid;not null;column:attendance_record_marked_by_id" json:"attendance_record_marked_by_id"`
	AttendanceRecordNote         *string   `gorm:"type:text;column:attendance_record_note" json:"attendance_record_note,omitempty"`

	AttendanceRecordCreatedAt time.Time `gorm:"autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`
	AttendanceRecordUpdatedAt time.Time `gorm:"autoUpdateTime;column:attendance_record_updated_at" json:"attendance_record_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
