package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	acaController "schoolku_backend/internals/features/school/academics/controller"
)

// AcademicsAdminRoutes: master data akademik, admin only (group /api/a).
func AcademicsAdminRoutes(r fiber.Router, db *gorm.DB) {
	master := &acaController.MasterDataController{DB: db}
	subject := &acaController.SubjectController{DB: db}

	departments := r.Group("/departments")
	departments.Post("/", master.CreateDepartment)      // POST   /api/a/departments
	departments.Get("/", master.ListDepartments)        // GET    /api/a/departments
	departments.Delete("/:id", master.DeleteDepartment) // DELETE /api/a/departments/:id

	levels := r.Group("/academic-levels")
	levels.Post("/", master.CreateAcademicLevel) // POST /api/a/academic-levels
	levels.Get("/", master.ListAcademicLevels)   // GET  /api/a/academic-levels

	classes := r.Group("/classes")
	classes.Post("/", master.CreateClass)      // POST   /api/a/classes
	classes.Get("/", master.ListClasses)       // GET    /api/a/classes
	classes.Delete("/:id", master.DeleteClass) // DELETE /api/a/classes/:id

	r.Delete("/subjects/:id", subject.Delete) // DELETE /api/a/subjects/:id
}

// AcademicsStaffRoutes: subject dikelola admin/headmaster/HOD (group /api/h).
// HOD otomatis dibatasi ke department yang dia kepalai.
func AcademicsStaffRoutes(r fiber.Router, db *gorm.DB) {
	subject := &acaController.SubjectController{DB: db}
	subjects := r.Group("/subjects")
	subjects.Post("/", subject.Create)    // POST /api/h/subjects
	subjects.Put("/:id", subject.Update)  // PUT  /api/h/subjects/:id
}

// AcademicsUserRoutes: read-only semua role (group /api/u).
func AcademicsUserRoutes(r fiber.Router, db *gorm.DB) {
	subject := &acaController.SubjectController{DB: db}
	r.Get("/subjects", subject.List) // GET /api/u/subjects
}
