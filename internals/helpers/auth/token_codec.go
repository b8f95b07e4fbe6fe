package helperAuth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	userModel "schoolku_backend/internals/features/users/user/model"
)

// Masa berlaku access token: 7 hari fixed, tanpa refresh.
// Habis masa berlaku = login ulang.
const AccessTokenTTL = 7 * 24 * time.Hour

var (
	ErrTokenInvalid = errors.New("token invalid")
)

// AccessClaims adalah payload identity assertion di dalam JWT.
// Role/email di sini hanya snapshot saat issue — middleware selalu
// re-fetch user dari DB untuk kebenaran terkini.
type AccessClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// IssueAccessToken membuat JWT HS256 berisi {id, email, role} dengan exp 7 hari.
func IssueAccessToken(secret string, u *userModel.UserModel) (string, error) {
	if strings.TrimSpace(secret) == "" {
		return "", errors.New("JWT secret kosong")
	}
	now := time.Now().UTC()
	claims := AccessClaims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// VerifyAccessToken memeriksa signature + expiry lalu mengembalikan klaim.
// Semua kegagalan (malformed, signature mismatch, expired) dilebur jadi
// ErrTokenInvalid — caller tidak perlu membedakan.
func VerifyAccessToken(secret, raw string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrTokenInvalid
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// SubjectUUID mengembalikan user id klaim sebagai uuid.
func (c *AccessClaims) SubjectUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

/* ======== Ekstraksi dari request ======== */

// GetRawAccessToken mengembalikan access token dari header
// "Authorization: Bearer <token>" (toleran spasi ganda & case Bearer).
func GetRawAccessToken(c *fiber.Ctx) string {
	auth := strings.TrimSpace(c.Get("Authorization"))
	if auth == "" {
		return ""
	}
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return ""
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	return tok
}
