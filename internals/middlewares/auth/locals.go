package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	userModel "schoolku_backend/internals/features/users/user/model"
)

// Kunci Locals yang dipakai seragam oleh middleware & controller.
const (
	LocUserID   = "user_id"
	LocUserMail = "user_email"
	LocUserRole = "userRole"
	LocAuthUser = "auth_user"
)

func storeIdentityToLocals(c *fiber.Ctx, u *userModel.UserModel) {
	c.Locals(LocUserID, u.ID.String())
	c.Locals(LocUserMail, u.Email)
	c.Locals(LocUserRole, u.Role)
	c.Locals(LocAuthUser, u)
}

// GetAuthUser mengambil identity hasil re-fetch middleware.
func GetAuthUser(c *fiber.Ctx) (*userModel.UserModel, bool) {
	u, ok := c.Locals(LocAuthUser).(*userModel.UserModel)
	return u, ok
}

// GetUserID mengambil uuid user dari Locals.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user id tidak ada di context")
	}
	return uuid.Parse(raw)
}
