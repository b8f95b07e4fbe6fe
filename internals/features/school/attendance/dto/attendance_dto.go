package dto

import "github.com/google/uuid"

// MarkAttendanceRequest: penandaan absensi harian per student.
// Natural key (student_id, date) — request ulang di hari yang sama
// meng-update status, bukan menggandakan baris.
type MarkAttendanceRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Date      string    `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string    `json:"status" validate:"required,oneof=present absent late excused"`
	Note      *string   `json:"note"`
}
