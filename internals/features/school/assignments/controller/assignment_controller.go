package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	asgDTO "schoolku_backend/internals/features/school/assignments/dto"
	asgService "schoolku_backend/internals/features/school/assignments/service"
	helper "schoolku_backend/internals/helpers"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

var validate = validator.New()

type AssignmentController struct {
	DB *gorm.DB
}

// jsonFromFiberErr memetakan *fiber.Error dari service ke envelope JSON.
func jsonFromFiberErr(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

/*
=========================================================
	TEACHER × SUBJECT × CLASS
	POST   /api/a/teacher-assignments
	DELETE /api/a/teacher-assignments/:id
	GET    /api/u/classes/:class_id/subjects
=========================================================
*/

func (h *AssignmentController) AssignTeacher(c *fiber.Ctx) error {
	var req asgDTO.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	resp, err := asgService.AssignTeacherToSubjectClass(c.UserContext(), h.DB, req)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonCreated(c, "Guru berhasil ditugaskan", resp)
}

func (h *AssignmentController) RemoveTeacherAssignment(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := asgService.RemoveTeacherAssignment(c.UserContext(), h.DB, id); err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonOK(c, "Penugasan berhasil dihapus", nil)
}

func (h *AssignmentController) ListClassSubjects(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id tidak valid")
	}
	rows, err := asgService.ListClassSubjects(c.UserContext(), h.DB, classID)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonOK(c, "OK", rows)
}

/*
=========================================================
	PARENT × STUDENT
	POST   /api/a/parent-links
	DELETE /api/a/parent-links/:parent_id/:student_id
	GET    /api/u/my-children (parent)
=========================================================
*/

func (h *AssignmentController) LinkParent(c *fiber.Ctx) error {
	var req asgDTO.LinkParentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	links, err := asgService.LinkParentToStudents(c.UserContext(), h.DB, req)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonCreated(c, "Parent berhasil ditautkan", links)
}

func (h *AssignmentController) UnlinkParent(c *fiber.Ctx) error {
	parentID, err := uuid.Parse(strings.TrimSpace(c.Params("parent_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "parent_id tidak valid")
	}
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	if err := asgService.UnlinkParentFromStudent(c.UserContext(), h.DB, parentID, studentID); err != nil {
		return jsonFromFiberErr(c, err)
	}
	// Sukses juga kalau tautan memang sudah tidak ada
	return helper.JsonOK(c, "Tautan dilepas", nil)
}

func (h *AssignmentController) MyChildren(c *fiber.Ctx) error {
	parentID, err := midAuth.GetUserID(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	rows, err := asgService.ListChildren(c.UserContext(), h.DB, parentID)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonOK(c, "OK", rows)
}

/*
=========================================================
	SUBJECT × ACADEMIC LEVEL
	POST   /api/h/subject-levels
	DELETE /api/a/subject-levels/:id
=========================================================
*/

func (h *AssignmentController) AssignSubjectLevel(c *fiber.Ctx) error {
	var req asgDTO.AssignSubjectLevelRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m, err := asgService.AssignSubjectToAcademicLevel(c.UserContext(), h.DB, req)
	if err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonCreated(c, "Subject berhasil dipasang ke level", m)
}

func (h *AssignmentController) RemoveSubjectLevel(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if err := asgService.RemoveSubjectFromAcademicLevel(c.UserContext(), h.DB, id); err != nil {
		return jsonFromFiberErr(c, err)
	}
	return helper.JsonOK(c, "Pemasangan level dihapus", nil)
}
