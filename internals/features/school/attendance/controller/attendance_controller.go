package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolku_backend/internals/constants"
	attDTO "schoolku_backend/internals/features/school/attendance/dto"
	attModel "schoolku_backend/internals/features/school/attendance/model"
	helper "schoolku_backend/internals/helpers"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

/*
=========================================================
	MARK (teacher/admin) — IDEMPOTENT VIA UPSERT
	POST /api/t/attendance
	ON CONFLICT (student_id, date) DO UPDATE: status & note.
=========================================================
*/
func (h *AttendanceController) Mark(c *fiber.Ctx) error {
	u, ok := midAuth.GetAuthUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req attDTO.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	// Student harus user aktif ber-role student
	var cnt int64
	if err := h.DB.WithContext(c.UserContext()).Table("users").
		Where("id = ? AND role = ? AND deleted_at IS NULL", req.StudentID, constants.RoleStudent).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek student")
	}
	if cnt == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}

	m := attModel.AttendanceRecordModel{
		AttendanceRecordStudentID:  req.StudentID,
		AttendanceRecordDate:       date,
		AttendanceRecordStatus:     req.Status,
		AttendanceRecordMarkedByID: u.ID,
		AttendanceRecordNote:       req.Note,
	}

	if err := h.DB.WithContext(c.UserContext()).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_record_student_id"},
				{Name: "attendance_record_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_record_status",
				"attendance_record_note",
				"attendance_record_marked_by_id",
				"attendance_record_updated_at",
			}),
		}).
		Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan absensi")
	}

	return helper.JsonOK(c, "Absensi tercatat", m)
}

/*
=========================================================
	LIST PER STUDENT
	GET /api/t/attendance/:student_id?from=&to=
=========================================================
*/
func (h *AttendanceController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	q := h.DB.WithContext(c.UserContext()).
		Model(&attModel.AttendanceRecordModel{}).
		Where("attendance_record_student_id = ?", studentID)

	if from := strings.TrimSpace(c.Query("from")); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		q = q.Where("attendance_record_date >= ?", t)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		q = q.Where("attendance_record_date <= ?", t)
	}

	var rows []attModel.AttendanceRecordModel
	if err := q.Order("attendance_record_date DESC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil absensi")
	}
	return helper.JsonOK(c, "OK", rows)
}
