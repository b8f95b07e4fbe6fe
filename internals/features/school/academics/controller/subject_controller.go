package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	acaDTO "schoolku_backend/internals/features/school/academics/dto"
	acaModel "schoolku_backend/internals/features/school/academics/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

// callerDepartmentScope menentukan department yang boleh ditulis caller.
// Admin/headmaster bebas (uuid.Nil = tanpa batas); HOD dikunci ke
// department yang dia kepalai — HOD tanpa department berarti Forbidden.
func (h *SubjectController) callerDepartmentScope(c *fiber.Ctx) (uuid.UUID, error) {
	u, ok := midAuth.GetAuthUser(c)
	if !ok {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	if u.Role != constants.RoleHOD {
		return uuid.Nil, nil
	}
	return helperAuth.ResolveHODDepartmentID(h.DB.WithContext(c.UserContext()), u.ID)
}

/*
=========================================================
	CREATE
	POST /api/h/subjects
=========================================================
*/
func (h *SubjectController) Create(c *fiber.Ctx) error {
	scopeDept, err := h.callerDepartmentScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	var req acaDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	// HOD tidak boleh membuat subject untuk department lain —
	// tolak eksplisit, jangan diam-diam pindahkan ke department sendiri.
	if scopeDept != uuid.Nil && req.DepartmentID != scopeDept {
		return helper.JsonError(c, fiber.StatusForbidden, "Anda hanya boleh mengelola subject department sendiri")
	}

	// Pastikan department ada
	var deptCnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&acaModel.DepartmentModel{}).
		Where("department_id = ?", req.DepartmentID).
		Count(&deptCnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek department")
	}
	if deptCnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Department tidak ditemukan")
	}

	// Cek duplikasi kode per department — fast path sebelum constraint DB
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).
		Model(&acaModel.SubjectModel{}).
		Where("subject_code = ? AND subject_department_id = ?", req.Code, req.DepartmentID).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek duplikasi subject")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kode subject sudah dipakai di department ini")
	}

	m := acaModel.SubjectModel{
		SubjectCode:         req.Code,
		SubjectName:         req.Name,
		SubjectDepartmentID: req.DepartmentID,
		SubjectDesc:         req.Desc,
	}
	if err := h.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode subject sudah dipakai di department ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat subject")
	}

	return helper.JsonCreated(c, "Subject berhasil dibuat", m)
}

/*
=========================================================
	UPDATE (partial)
	PUT /api/h/subjects/:id
	Read dibatasi department scope caller: subject milik
	department lain tampak seperti tidak ada (404).
=========================================================
*/
func (h *SubjectController) Update(c *fiber.Ctx) error {
	scopeDept, err := h.callerDepartmentScope(c)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req acaDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	q := h.DB.WithContext(c.UserContext()).Model(&acaModel.SubjectModel{}).Where("subject_id = ?", id)
	if scopeDept != uuid.Nil {
		q = q.Where("subject_department_id = ?", scopeDept)
	}

	var subject acaModel.SubjectModel
	if err := q.First(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	updates := map[string]interface{}{}
	if req.Code != nil {
		updates["subject_code"] = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.Name != nil {
		updates["subject_name"] = strings.TrimSpace(*req.Name)
	}
	if req.Desc != nil {
		updates["subject_desc"] = *req.Desc
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", subject)
	}

	if err := h.DB.Model(&subject).Updates(updates).Error; err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "Kode subject sudah dipakai di department ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update subject")
	}
	return helper.JsonOK(c, "Subject berhasil diupdate", subject)
}

/*
=========================================================
	LIST
	GET /api/u/subjects?department_id=&q=
=========================================================
*/
func (h *SubjectController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.WithContext(c.UserContext()).Model(&acaModel.SubjectModel{})
	if v := strings.TrimSpace(c.Query("department_id")); v != "" {
		deptID, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "department_id tidak valid")
		}
		q = q.Where("subject_department_id = ?", deptID)
	}
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(subject_name) LIKE ? OR LOWER(subject_code) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung subject")
	}

	var subjects []acaModel.SubjectModel
	if err := q.Order("subject_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil subject")
	}

	return helper.JsonList(c, "OK", subjects, helper.BuildPagination(total, paging, len(subjects)))
}

/*
=========================================================
	DELETE (ADMIN)
	DELETE /api/a/subjects/:id (soft delete)
=========================================================
*/
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	res := h.DB.WithContext(c.UserContext()).Delete(&acaModel.SubjectModel{}, "subject_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus subject")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject tidak ditemukan")
	}
	return helper.JsonOK(c, "Subject berhasil dihapus", nil)
}
