package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attController "schoolku_backend/internals/features/school/attendance/controller"
)

// AttendanceTeacherRoutes: penandaan & rekap absensi (group /api/t).
func AttendanceTeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &attController.AttendanceController{DB: db}
	att := r.Group("/attendance")
	att.Post("/", ctl.Mark)                      // POST /api/t/attendance
	att.Get("/:student_id", ctl.ListByStudent)   // GET  /api/t/attendance/:student_id
}
