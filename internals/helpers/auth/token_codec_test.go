package helperAuth

import (
	"encoding/base64"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "schoolku_backend/internals/features/users/user/model"
)

const testSecret = "unit-test-secret-key-yang-cukup-panjang"

func testUser() *userModel.UserModel {
	return &userModel.UserModel{
		ID:        uuid.New(),
		Email:     "guru@sekolah.sch.id",
		Role:      "teacher",
		FirstName: "Budi",
		LastName:  "Santoso",
		IsActive:  true,
	}
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	u := testUser()

	token, err := IssueAccessToken(testSecret, u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyAccessToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID.String(), claims.UserID)
	assert.Equal(t, u.Email, claims.Email)
	assert.Equal(t, u.Role, claims.Role)

	sub, err := claims.SubjectUUID()
	require.NoError(t, err)
	assert.Equal(t, u.ID, sub)
}

func TestIssueAccessToken_EmptySecret(t *testing.T) {
	_, err := IssueAccessToken("", testUser())
	assert.Error(t, err)
}

func TestIssueAccessToken_ExpirySevenDays(t *testing.T) {
	u := testUser()
	token, err := IssueAccessToken(testSecret, u)
	require.NoError(t, err)

	claims, err := VerifyAccessToken(testSecret, token)
	require.NoError(t, err)

	ttl := claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time)
	assert.Equal(t, AccessTokenTTL, ttl)
}

func TestAccessTokenPayloadFieldNames(t *testing.T) {
	u := testUser()
	token, err := IssueAccessToken(testSecret, u)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	raw, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, u.ID.String(), payload["userId"])
	assert.Equal(t, u.Email, payload["email"])
	assert.Equal(t, u.Role, payload["role"])
	assert.Contains(t, payload, "exp")
	assert.Contains(t, payload, "iat")
	assert.NotContains(t, payload, "id")
}

func TestVerifyAccessToken_Invalid(t *testing.T) {
	u := testUser()
	good, err := IssueAccessToken(testSecret, u)
	require.NoError(t, err)

	tests := []struct {
		name   string
		secret string
		raw    string
	}{
		{"malformed", testSecret, "bukan.jwt.valid"},
		{"kosong", testSecret, ""},
		{"secret salah", "secret-lain-yang-juga-panjang", good},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := VerifyAccessToken(tt.secret, tt.raw)
			assert.ErrorIs(t, err, ErrTokenInvalid)
		})
	}
}

func TestVerifyAccessToken_Expired(t *testing.T) {
	u := testUser()
	now := time.Now().UTC()
	claims := AccessClaims{
		UserID: u.ID.String(),
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyAccessToken_WrongSigningMethod(t *testing.T) {
	// alg none harus ditolak
	claims := AccessClaims{UserID: uuid.NewString()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = VerifyAccessToken(testSecret, raw)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestGetRawAccessToken(t *testing.T) {
	app := fiber.New()
	var got string
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRawAccessToken(c)
		return c.SendString("ok")
	})

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"normal", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"bearer lowercase", "bearer abc.def.ghi", "abc.def.ghi"},
		{"spasi ganda", "Bearer   abc.def.ghi", "abc.def.ghi"},
		{"pakai kutip", `Bearer "abc.def.ghi"`, "abc.def.ghi"},
		{"tanpa header", "", ""},
		{"skema salah", "Basic abc", ""},
		{"token kosong", "Bearer", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			_, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
