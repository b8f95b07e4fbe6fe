package controller

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	annDTO "schoolku_backend/internals/features/school/announcements/dto"
	annModel "schoolku_backend/internals/features/school/announcements/model"
	helper "schoolku_backend/internals/helpers"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

/*
=========================================================
	CREATE
	POST /api/h/announcements
=========================================================
*/
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	u, ok := midAuth.GetAuthUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req annDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	audience, _ := json.Marshal(req.AudienceRoles)
	attachments, _ := json.Marshal(req.Attachments)

	m := annModel.AnnouncementModel{
		AnnouncementTitle:         req.Title,
		AnnouncementBody:          req.Body,
		AnnouncementAudienceRoles: datatypes.JSON(audience),
		AnnouncementAttachments:   datatypes.JSON(attachments),
		AnnouncementAuthorUserID:  u.ID,
	}
	if req.Publish {
		now := time.Now().UTC()
		m.AnnouncementPublishedAt = &now
	}

	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}
	return helper.JsonCreated(c, "Pengumuman berhasil dibuat", m)
}

/*
=========================================================
	LIST UNTUK CALLER
	GET /api/u/announcements
	Hanya pengumuman published yang audience-nya kosong (semua role)
	atau memuat role caller.
=========================================================
*/
func (h *AnnouncementController) ListForMe(c *fiber.Ctx) error {
	role, _ := c.Locals(midAuth.LocUserRole).(string)
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).
		Model(&annModel.AnnouncementModel{}).
		Where("announcement_published_at IS NOT NULL").
		Where(`announcement_audience_roles IS NULL
			OR announcement_audience_roles::text = '[]'
			OR announcement_audience_roles::jsonb @> ?::jsonb`, `["`+role+`"]`)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}

	var rows []annModel.AnnouncementModel
	if err := q.Order("announcement_published_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}

	return helper.JsonList(c, "OK", rows, helper.BuildPagination(total, paging, len(rows)))
}

/*
=========================================================
	DELETE
	DELETE /api/h/announcements/:id
	Author atau admin saja.
=========================================================
*/
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	u, ok := midAuth.GetAuthUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	q := h.DB.WithContext(c.UserContext()).Where("announcement_id = ?", id)
	if u.Role != constants.RoleAdmin {
		// Ownership check level controller, bukan role gate
		q = q.Where("announcement_author_user_id = ?", u.ID)
	}

	res := q.Delete(&annModel.AnnouncementModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}
	return helper.JsonOK(c, "Pengumuman berhasil dihapus", nil)
}
