package auth

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolku_backend/internals/constants"
)

// newGateApp membangun app kecil: middleware stub menaruh role di Locals,
// lalu role gate dengan allow-list yang diberikan.
func newGateApp(role string, allowed []string) *fiber.App {
	app := fiber.New()
	app.Get("/p",
		func(c *fiber.Ctx) error {
			if role != "" {
				c.Locals(LocUserRole, role)
			}
			return c.Next()
		},
		RoleMiddleware(allowed, ""),
		func(c *fiber.Ctx) error { return c.SendString("lolos") },
	)
	return app
}

func TestRoleMiddleware_Matrix(t *testing.T) {
	groups := map[string][]string{
		"admin_only":  constants.AdminOnly,
		"staff":       constants.StaffAndAbove,
		"teacher":     constants.TeacherAndAbove,
		"parent_only": constants.ParentOnly,
		"all":         constants.AllRoles,
	}

	for groupName, allowed := range groups {
		allowedSet := map[string]bool{}
		for _, r := range allowed {
			allowedSet[r] = true
		}
		for _, role := range constants.AllRoles {
			t.Run(groupName+"/"+role, func(t *testing.T) {
				app := newGateApp(role, allowed)
				resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
				require.NoError(t, err)
				if allowedSet[role] {
					assert.Equal(t, fiber.StatusOK, resp.StatusCode)
				} else {
					assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
				}
			})
		}
	}
}

func TestRoleMiddleware_MissingIdentity(t *testing.T) {
	app := newGateApp("", constants.AdminOnly)
	resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoleMiddleware_ForbiddenDiagnostics(t *testing.T) {
	app := newGateApp(constants.RoleStudent, constants.AdminOnly)
	resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body struct {
		Success  bool     `json:"success"`
		Error    string   `json:"error"`
		Required []string `json:"required"`
		Current  string   `json:"current"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.False(t, body.Success)
	assert.NotEmpty(t, body.Error)
	assert.Equal(t, constants.AdminOnly, body.Required)
	assert.Equal(t, constants.RoleStudent, body.Current)
}

func TestRoleMiddleware_CustomMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/p",
		func(c *fiber.Ctx) error {
			c.Locals(LocUserRole, constants.RoleParent)
			return c.Next()
		},
		OnlyRoles("khusus admin", constants.RoleAdmin),
		func(c *fiber.Ctx) error { return c.SendString("lolos") },
	)
	resp, err := app.Test(httptest.NewRequest("GET", "/p", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "khusus admin", body["error"])
}
