package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	acaDTO "schoolku_backend/internals/features/school/academics/dto"
	acaModel "schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
)

// MasterDataController menangani CRUD master data akademik sederhana:
// departments, academic levels, classes (semua admin-only).
type MasterDataController struct {
	DB *gorm.DB
}

/* ================= DEPARTMENTS ================= */

func (h *MasterDataController) CreateDepartment(c *fiber.Ctx) error {
	var req acaDTO.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := acaModel.DepartmentModel{
		DepartmentName:       req.Name,
		DepartmentHeadUserID: req.HeadUserID,
		DepartmentDesc:       req.Desc,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama department sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat department")
	}
	return helper.JsonCreated(c, "Department berhasil dibuat", m)
}

func (h *MasterDataController) ListDepartments(c *fiber.Ctx) error {
	var rows []acaModel.DepartmentModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("department_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil department")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (h *MasterDataController) DeleteDepartment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&acaModel.DepartmentModel{}, "department_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus department")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department tidak ditemukan")
	}
	return helper.JsonOK(c, "Department berhasil dihapus", nil)
}

/* ================= ACADEMIC LEVELS ================= */

func (h *MasterDataController) CreateAcademicLevel(c *fiber.Ctx) error {
	var req acaDTO.CreateAcademicLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := acaModel.AcademicLevelModel{
		AcademicLevelName: req.Name,
		AcademicLevelRank: req.Rank,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Nama level sudah dipakai")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat academic level")
	}
	return helper.JsonCreated(c, "Academic level berhasil dibuat", m)
}

func (h *MasterDataController) ListAcademicLevels(c *fiber.Ctx) error {
	var rows []acaModel.AcademicLevelModel
	if err := h.DB.WithContext(c.UserContext()).
		Order("academic_level_rank ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil academic level")
	}
	return helper.JsonOK(c, "OK", rows)
}

/* ================= CLASSES ================= */

func (h *MasterDataController) CreateClass(c *fiber.Ctx) error {
	var req acaDTO.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// Level harus ada sebelum class menunjuk ke sana
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&acaModel.AcademicLevelModel{}).
		Where("academic_level_id = ?", req.AcademicLevelID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek academic level")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Academic level tidak ditemukan")
	}

	m := acaModel.ClassModel{
		ClassName:              req.Name,
		ClassAcademicLevelID:   req.AcademicLevelID,
		ClassHomeroomTeacherID: req.HomeroomTeacherID,
		ClassCapacity:          req.Capacity,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat class")
	}
	return helper.JsonCreated(c, "Class berhasil dibuat", m)
}

func (h *MasterDataController) ListClasses(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&acaModel.ClassModel{})
	if v := strings.TrimSpace(c.Query("academic_level_id")); v != "" {
		levelID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "academic_level_id tidak valid")
		}
		q = q.Where("class_academic_level_id = ?", levelID)
	}

	var rows []acaModel.ClassModel
	if err := q.Order("class_name ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil class")
	}
	return helper.JsonOK(c, "OK", rows)
}

func (h *MasterDataController) DeleteClass(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&acaModel.ClassModel{}, "class_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class tidak ditemukan")
	}
	return helper.JsonOK(c, "Class berhasil dihapus", nil)
}
