package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AnnouncementModel merepresentasikan tabel announcements.
// AudienceRoles: daftar role tujuan (JSON array, kosong = semua role).
type AnnouncementModel struct {
	AnnouncementID            uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle         string         `gorm:"size:200;not null;column:announcement_title" json:"announcement_title"`
	AnnouncementBody          string         `gorm:"type:text;not null;column:announcement_body" json:"announcement_body"`
	AnnouncementAudienceRoles datatypes.JSON `gorm:"column:announcement_audience_roles" json:"announcement_audience_roles,omitempty"`
	AnnouncementAttachments   datatypes.JSON `gorm:"column:announcement_attachments" json:"announcement_attachments,omitempty"`
	AnnouncementAuthorUserID  uuid.UUID      `gorm:"type:uuid;not null;column:announcement_author_user_id" json:"announcement_author_user_id"`
	AnnouncementPublishedAt   *time.Time     `gorm:"column:announcement_published_at" json:"announcement_published_at,omitempty"`

	AnnouncementCreatedAt time.Time      `gorm:"autoCreateTime;column:announcement_created_at" json:"announcement_created_at"`
	AnnouncementUpdatedAt time.Time      `gorm:"autoUpdateTime;column:announcement_updated_at" json:"announcement_updated_at"`
	AnnouncementDeletedAt gorm.DeletedAt `gorm:"column:announcement_deleted_at;index" json:"announcement_deleted_at,omitempty"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
