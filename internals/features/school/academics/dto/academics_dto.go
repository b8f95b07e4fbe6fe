package dto

import (
	"strings"

	"github.com/google/uuid"
)

type CreateDepartmentRequest struct {
	Name       string     `json:"department_name" validate:"required,min=1,max=120"`
	HeadUserID *uuid.UUID `json:"department_head_user_id"`
	Desc       *string    `json:"department_desc"`
}

type CreateAcademicLevelRequest struct {
	Name string `json:"academic_level_name" validate:"required,min=1,max=80"`
	Rank int    `json:"academic_level_rank" validate:"required,min=1"`
}

type CreateClassRequest struct {
	Name              string     `json:"class_name" validate:"required,min=1,max=120"`
	AcademicLevelID   uuid.UUID  `json:"class_academic_level_id" validate:"required"`
	HomeroomTeacherID *uuid.UUID `json:"class_homeroom_teacher_id"`
	Capacity          *int       `json:"class_capacity" validate:"omitempty,min=1"`
}

type CreateSubjectRequest struct {
	Code         string    `json:"subject_code" validate:"required,min=1,max=40"`
	Name         string    `json:"subject_name" validate:"required,min=1,max=120"`
	DepartmentID uuid.UUID `json:"subject_department_id" validate:"required"`
	Desc         *string   `json:"subject_desc"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Name = strings.TrimSpace(r.Name)
}

type UpdateSubjectRequest struct {
	Code *string `json:"subject_code" validate:"omitempty,min=1,max=40"`
	Name *string `json:"subject_name" validate:"omitempty,min=1,max=120"`
	Desc *string `json:"subject_desc"`
}
