package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "schoolku_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB *gorm.DB
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c)
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ac.DB, c)
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	return authService.Me(ac.DB, c)
}

func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}
