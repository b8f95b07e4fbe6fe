package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	annController "schoolku_backend/internals/features/school/announcements/controller"
)

// AnnouncementStaffRoutes: tulis pengumuman (group /api/h).
func AnnouncementStaffRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &annController.AnnouncementController{DB: db}
	ann := r.Group("/announcements")
	ann.Post("/", ctl.Create)       // POST   /api/h/announcements
	ann.Delete("/:id", ctl.Delete)  // DELETE /api/h/announcements/:id
}

// AnnouncementUserRoutes: baca pengumuman sesuai role (group /api/u).
func AnnouncementUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &annController.AnnouncementController{DB: db}
	r.Get("/announcements", ctl.ListForMe) // GET /api/u/announcements
}
