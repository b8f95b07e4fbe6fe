package dto

import "strings"

// UpdateProfileRequest: field yang boleh diubah user untuk dirinya sendiri.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName     *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone" validate:"omitempty,max=30"`
	ProfileImage *string `json:"profile_image"`
}

// AdminUpdateUserRequest: field yang boleh diubah admin untuk user lain.
type AdminUpdateUserRequest struct {
	Role     *string `json:"role" validate:"omitempty,oneof=admin headmaster hod teacher parent student"`
	IsActive *bool   `json:"is_active"`
}

func (r *AdminUpdateUserRequest) Normalize() {
	if r.Role != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Role))
		r.Role = &v
	}
}
