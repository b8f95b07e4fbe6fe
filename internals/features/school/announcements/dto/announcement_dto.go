package dto

import "strings"

type CreateAnnouncementRequest struct {
	Title         string   `json:"announcement_title" validate:"required,min=1,max=200"`
	Body          string   `json:"announcement_body" validate:"required,min=1"`
	AudienceRoles []string `json:"announcement_audience_roles" validate:"omitempty,dive,oneof=admin headmaster hod teacher parent student"`
	Attachments   []string `json:"announcement_attachments" validate:"omitempty,dive,url"`
	Publish       bool     `json:"publish"`
}

func (r *CreateAnnouncementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	for i := range r.AudienceRoles {
		r.AudienceRoles[i] = strings.ToLower(strings.TrimSpace(r.AudienceRoles[i]))
	}
}
