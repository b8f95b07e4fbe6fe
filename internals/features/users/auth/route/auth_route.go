package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	authController "schoolku_backend/internals/features/users/auth/controller"
	"schoolku_backend/internals/middlewares"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AuthRoutes memasang endpoint autentikasi.
// Register HANYA admin (registrasi publik memang tidak ada).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	authGroup := app.Group("/api/auth")
	authGroup.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)

	authGroup.Post("/register",
		middlewares.RegisterRateLimiter(),
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("registrasi user"), constants.AdminOnly...),
		ctl.Register,
	)

	protected := authGroup.Group("", authMiddleware.AuthMiddleware(db))
	protected.Get("/me", ctl.Me)
	protected.Post("/change-password", ctl.ChangePassword)
}
