package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, h fiber.Handler) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/", h)
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestJsonOK(t *testing.T) {
	code, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonOK(c, "berhasil", fiber.Map{"x": 1})
	})
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "berhasil", body["message"])
}

func TestJsonCreated(t *testing.T) {
	code, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonCreated(c, "dibuat", nil)
	})
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, float64(fiber.StatusCreated), body["code"])
}

func TestJsonError(t *testing.T) {
	code, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "duplikat")
	})
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "duplikat", body["error"])
}

func TestJsonErrorWithDetails(t *testing.T) {
	code, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonErrorWithDetails(c, fiber.StatusForbidden, "role salah", fiber.Map{
			"required": []string{"admin"},
			"current":  "student",
		})
	})
	assert.Equal(t, fiber.StatusForbidden, code)
	assert.Equal(t, "student", body["current"])
	assert.Equal(t, []interface{}{"admin"}, body["required"])
}

func TestJsonValidationError(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}
	err := validator.New().Struct(payload{Email: "bukan-email"})
	require.Error(t, err)

	code, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, err)
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, errs, "Email")
}

func TestJsonValidationError_NonValidatorError(t *testing.T) {
	code, body := doRequest(t, func(c *fiber.Ctx) error {
		return JsonValidationError(c, assert.AnError)
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Equal(t, "Invalid input", body["error"])
}
