package dto

import (
	"strings"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterRequest dipakai admin untuk membuat akun baru.
// Field profile hanya dibaca sesuai role yang diminta.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	Role      string  `json:"role" validate:"required,oneof=admin headmaster hod teacher parent student"`
	FirstName string  `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string  `json:"last_name" validate:"required,min=1,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,max=30"`

	// role = teacher
	DepartmentID *uuid.UUID `json:"department_id"`
	EmployeeNo   *string    `json:"employee_no" validate:"omitempty,max=40"`

	// role = student
	AdmissionNo     *string    `json:"admission_no" validate:"omitempty,max=40"`
	ClassID         *uuid.UUID `json:"class_id"`
	AcademicLevelID *uuid.UUID `json:"academic_level_id"`

	// role = parent
	Occupation *string `json:"occupation" validate:"omitempty,max=120"`
	Address    *string `json:"address"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}
