// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	acaRoute "schoolku_backend/internals/features/school/academics/route"
	annRoute "schoolku_backend/internals/features/school/announcements/route"
	asgRoute "schoolku_backend/internals/features/school/assignments/route"
	attRoute "schoolku_backend/internals/features/school/attendance/route"
	authRoute "schoolku_backend/internals/features/users/auth/route"
	userRoute "schoolku_backend/internals/features/users/user/route"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// SetupRoutes menyusun seluruh route group. Satu allow-list statis per
// group, dievaluasi sekali per request oleh role gate — tidak ada
// pengecekan role tersebar di masing-masing handler.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen sekolah"), constants.AdminOnly...),
	)
	userRoute.UserAdminRoutes(admin, db)
	acaRoute.AcademicsAdminRoutes(admin, db)
	asgRoute.AssignmentAdminRoutes(admin, db)

	// ===================== STAFF (/api/h) =====================
	log.Println("[INFO] Setting up STAFF group...")
	staff := app.Group("/api/h",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("kurikulum"), constants.StaffAndAbove...),
	)
	acaRoute.AcademicsStaffRoutes(staff, db)
	asgRoute.AssignmentStaffRoutes(staff, db)
	annRoute.AnnouncementStaffRoutes(staff, db)

	// ===================== TEACHER (/api/t) =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorTeacher("absensi"), constants.TeacherAndAbove...),
	)
	attRoute.AttendanceTeacherRoutes(teacher, db)

	// ===================== USER (/api/u) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	userRoute.UserSelfRoutes(user, db)
	acaRoute.AcademicsUserRoutes(user, db)
	asgRoute.AssignmentUserRoutes(user, db)
	annRoute.AnnouncementUserRoutes(user, db)

	// Khusus parent: lihat anak sendiri
	parent := user.Group("",
		authMiddleware.OnlyRoles("", constants.ParentOnly...),
	)
	asgRoute.AssignmentParentRoutes(parent, db)
}
