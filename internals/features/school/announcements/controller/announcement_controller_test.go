package controller

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"schoolku_backend/internals/constants"
	userModel "schoolku_backend/internals/features/users/user/model"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

const sqliteUUID = `(lower(hex(randomblob(4)) || '-' || hex(randomblob(2)) || '-4' || substr(hex(randomblob(2)),2) || '-a' || substr(hex(randomblob(2)),2) || '-' || hex(randomblob(6))))`

func newAnnouncementDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE announcements (
		announcement_id text PRIMARY KEY DEFAULT `+sqliteUUID+`,
		announcement_title text NOT NULL, announcement_body text NOT NULL,
		announcement_audience_roles text, announcement_attachments text,
		announcement_author_user_id text NOT NULL,
		announcement_published_at datetime,
		announcement_created_at datetime, announcement_updated_at datetime,
		announcement_deleted_at datetime)`).Error)
	return db
}

func newAnnouncementApp(db *gorm.DB, u *userModel.UserModel) *fiber.App {
	app := fiber.New()
	ctl := &AnnouncementController{DB: db}
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(midAuth.LocAuthUser, u)
		c.Locals(midAuth.LocUserRole, u.Role)
		c.Locals(midAuth.LocUserID, u.ID.String())
		return c.Next()
	})
	app.Post("/announcements", ctl.Create)
	app.Delete("/announcements/:id", ctl.Delete)
	return app
}

func stubUser(role string) *userModel.UserModel {
	return &userModel.UserModel{
		ID:        uuid.New(),
		Email:     uuid.NewString() + "@sekolah.sch.id",
		Role:      role,
		FirstName: "Uji",
		LastName:  "Coba",
		IsActive:  true,
	}
}

func createAnnouncement(t *testing.T, db *gorm.DB, author *userModel.UserModel) string {
	t.Helper()
	app := newAnnouncementApp(db, author)
	raw, _ := json.Marshal(fiber.Map{
		"announcement_title": "Libur semester",
		"announcement_body":  "Sekolah libur mulai pekan depan.",
		"publish":            true,
	})
	req := httptest.NewRequest("POST", "/announcements", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	rb, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rb, &body))
	return body["data"].(map[string]interface{})["announcement_id"].(string)
}

// Hanya author atau admin yang boleh menghapus: admin non-author lolos,
// staff lain melihat 404.
func TestAnnouncementDelete_Ownership(t *testing.T) {
	db := newAnnouncementDB(t)
	author := stubUser(constants.RoleHOD)
	id := createAnnouncement(t, db, author)

	// Staff lain (bukan author, bukan admin): tampak tidak ada
	other := stubUser(constants.RoleHeadmaster)
	resp, err := newAnnouncementApp(db, other).
		Test(httptest.NewRequest("DELETE", "/announcements/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Admin non-author: boleh
	admin := stubUser(constants.RoleAdmin)
	resp, err = newAnnouncementApp(db, admin).
		Test(httptest.NewRequest("DELETE", "/announcements/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAnnouncementDelete_Author(t *testing.T) {
	db := newAnnouncementDB(t)
	author := stubUser(constants.RoleHeadmaster)
	id := createAnnouncement(t, db, author)

	resp, err := newAnnouncementApp(db, author).
		Test(httptest.NewRequest("DELETE", "/announcements/"+id, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
