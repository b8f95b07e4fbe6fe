package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "schoolku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen user oleh admin (mounted di group /api/a).
func UserAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.UserController{DB: db}

	users := r.Group("/users")
	users.Get("/", ctl.List)          // GET    /api/a/users
	users.Get("/:id", ctl.GetByID)    // GET    /api/a/users/:id
	users.Patch("/:id", ctl.AdminUpdate) // PATCH /api/a/users/:id (role, is_active)
	users.Delete("/:id", ctl.Delete)  // DELETE /api/a/users/:id
}

// UserSelfRoutes: profil sendiri (mounted di group /api/u).
func UserSelfRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &userController.UserController{DB: db}
	r.Patch("/profile", ctl.UpdateProfile) // PATCH /api/u/profile
}
