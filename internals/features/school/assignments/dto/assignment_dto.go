package dto

import (
	"time"

	"github.com/google/uuid"
)

type AssignTeacherRequest struct {
	TeacherID uuid.UUID `json:"teacher_id" validate:"required"`
	SubjectID uuid.UUID `json:"subject_id" validate:"required"`
	ClassID   uuid.UUID `json:"class_id" validate:"required"`
}

// TeacherAssignmentResponse = junction row + display fields hasil join,
// supaya client tidak perlu fetch susulan.
type TeacherAssignmentResponse struct {
	ClassSubjectTeacherID uuid.UUID `json:"class_subject_teacher_id"`
	TeacherID             uuid.UUID `json:"teacher_id"`
	TeacherName           string    `json:"teacher_name"`
	SubjectID             uuid.UUID `json:"subject_id"`
	SubjectCode           string    `json:"subject_code"`
	SubjectName           string    `json:"subject_name"`
	ClassID               uuid.UUID `json:"class_id"`
	ClassName             string    `json:"class_name"`
	CreatedAt             time.Time `json:"created_at"`
}

type LinkParentRequest struct {
	ParentID   uuid.UUID   `json:"parent_id" validate:"required"`
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
}

type AssignSubjectLevelRequest struct {
	SubjectID  uuid.UUID `json:"subject_id" validate:"required"`
	LevelID    uuid.UUID `json:"level_id" validate:"required"`
	IsRequired *bool     `json:"is_required"` // default true
}
