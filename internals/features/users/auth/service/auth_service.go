package service

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolku_backend/internals/configs"
	"schoolku_backend/internals/constants"
	authDTO "schoolku_backend/internals/features/users/auth/dto"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
	midAuth "schoolku_backend/internals/middlewares/auth"
)

var validate = validator.New()

// ========================== LOGIN ==========================
// POST /api/auth/login
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user userModel.UserModel
	if err := db.WithContext(c.UserContext()).
		Where("LOWER(email) = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Jangan bocorkan email mana yang terdaftar
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Println("[ERROR] Login query:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	if !user.IsActive {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	token, err := helperAuth.IssueAccessToken(configs.JWTSecret, &user)
	if err != nil {
		log.Println("[ERROR] Issue token:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	now := time.Now().UTC()
	if err := db.Model(&user).UpdateColumn("last_login", now).Error; err != nil {
		log.Println("[WARN] Gagal update last_login:", err)
	}
	user.LastLogin = &now

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token": token,
		"user":         user,
	})
}

// ========================== REGISTER (ADMIN ONLY) ==========================
// POST /api/auth/register — role gate admin sudah dipasang di route.
// User + role-profile dibuat dalam SATU transaksi supaya invariant
// "profile role R hanya ada kalau user.role == R" terjaga saat create.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	if req.Role == constants.RoleStudent && (req.AdmissionNo == nil || strings.TrimSpace(*req.AdmissionNo) == "") {
		return helper.JsonError(c, fiber.StatusBadRequest, "admission_no wajib untuk role student")
	}

	// Cek email unik (case-insensitive) — fast path sebelum constraint DB
	var cnt int64
	if err := db.Model(&userModel.UserModel{}).
		Where("LOWER(email) = ?", req.Email).
		Count(&cnt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek email")
	}
	if cnt > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}

	user := userModel.UserModel{
		Email:     req.Email,
		Password:  string(hashed),
		Role:      req.Role,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}

	if err := db.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			msg := strings.ToLower(err.Error())
			if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
				return fiber.NewError(fiber.StatusConflict, "Email sudah terdaftar")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat user")
		}

		switch req.Role {
		case constants.RoleTeacher:
			t := userModel.TeacherModel{
				TeacherUserID:       user.ID,
				TeacherDepartmentID: req.DepartmentID,
				TeacherEmployeeNo:   req.EmployeeNo,
			}
			if err := tx.Create(&t).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil teacher")
			}
		case constants.RoleStudent:
			s := userModel.StudentModel{
				StudentUserID:          user.ID,
				StudentAdmissionNo:     strings.TrimSpace(*req.AdmissionNo),
				StudentClassID:         req.ClassID,
				StudentAcademicLevelID: req.AcademicLevelID,
			}
			if err := tx.Create(&s).Error; err != nil {
				msg := strings.ToLower(err.Error())
				if strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique") {
					return fiber.NewError(fiber.StatusConflict, "admission_no sudah terdaftar")
				}
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil student")
			}
		case constants.RoleParent:
			p := userModel.ParentModel{
				ParentUserID:     user.ID,
				ParentOccupation: req.Occupation,
				ParentAddress:    req.Address,
			}
			if err := tx.Create(&p).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat profil parent")
			}
		}
		// admin/headmaster/hod: tanpa role-profile
		return nil
	}); err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.JsonCreated(c, "User berhasil dibuat", user)
}

// ========================== ME ==========================
// GET /api/auth/me — identity segar hasil re-fetch middleware.
func Me(db *gorm.DB, c *fiber.Ctx) error {
	u, ok := midAuth.GetAuthUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "OK", u)
}

// ========================== CHANGE PASSWORD ==========================
// POST /api/auth/change-password
func ChangePassword(db *gorm.DB, c *fiber.Ctx) error {
	u, ok := midAuth.GetAuthUser(c)
	if !ok {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req authDTO.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.OldPassword)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Password lama salah")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal hash password")
	}
	if err := db.Model(u).UpdateColumn("password", string(hashed)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update password")
	}

	return helper.JsonOK(c, "Password berhasil diganti", nil)
}
