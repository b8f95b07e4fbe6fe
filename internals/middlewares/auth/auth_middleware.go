package auth

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

// AuthMiddleware = session resolver.
// Urutan: ambil bearer → verifikasi JWT → re-fetch user by id → cek aktif.
// Re-fetch tiap request itu disengaja: perubahan role/deaktivasi oleh admin
// langsung berlaku, tidak menunggu token kedaluwarsa. Jangan di-cache.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Ambil Authorization: Bearer <token>
		tokenString := helperAuth.GetRawAccessToken(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Access token required")
		}

		// 2) Verifikasi signature + expiry
		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		claims, err := helperAuth.VerifyAccessToken(secret, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		userID, err := claims.SubjectUUID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Invalid or expired token")
		}

		// 3) Re-fetch identity — jangan percaya role/email di payload token
		var user userModel.UserModel
		if err := db.WithContext(c.UserContext()).
			First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
			}
			log.Println("[ERROR] DB error saat resolve user:", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}

		// 4) Akun nonaktif ditolak walau token masih hidup
		if !user.IsActive {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
		}

		// 5) Simpan identity segar ke context request
		storeIdentityToLocals(c, &user)
		return c.Next()
	}
}
