package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	asgController "schoolku_backend/internals/features/school/assignments/controller"
)

// AssignmentAdminRoutes: penugasan relasi oleh admin (group /api/a).
func AssignmentAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &asgController.AssignmentController{DB: db}

	ta := r.Group("/teacher-assignments")
	ta.Post("/", ctl.AssignTeacher)                 // POST   /api/a/teacher-assignments
	ta.Delete("/:id", ctl.RemoveTeacherAssignment)  // DELETE /api/a/teacher-assignments/:id

	pl := r.Group("/parent-links")
	pl.Post("/", ctl.LinkParent)                              // POST   /api/a/parent-links
	pl.Delete("/:parent_id/:student_id", ctl.UnlinkParent)    // DELETE /api/a/parent-links/:parent_id/:student_id

	r.Delete("/subject-levels/:id", ctl.RemoveSubjectLevel)   // DELETE /api/a/subject-levels/:id
}

// AssignmentStaffRoutes: kurikulum level oleh admin/headmaster/HOD (group /api/h).
func AssignmentStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &asgController.AssignmentController{DB: db}
	r.Post("/subject-levels", ctl.AssignSubjectLevel) // POST /api/h/subject-levels
}

// AssignmentUserRoutes: read-only untuk semua role (group /api/u).
func AssignmentUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &asgController.AssignmentController{DB: db}
	r.Get("/classes/:class_id/subjects", ctl.ListClassSubjects) // GET /api/u/classes/:class_id/subjects
}

// AssignmentParentRoutes: khusus parent (group /api/u + role gate parent).
func AssignmentParentRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &asgController.AssignmentController{DB: db}
	r.Get("/my-children", ctl.MyChildren) // GET /api/u/my-children
}
