package controller

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MyChildren tanpa identity di Locals harus 401, bukan panic —
// handler tidak boleh mengandalkan resolver selalu terpasang.
func TestMyChildren_NoIdentity(t *testing.T) {
	ctl := &AssignmentController{DB: nil}
	app := fiber.New()
	app.Get("/my-children", ctl.MyChildren)

	resp, err := app.Test(httptest.NewRequest("GET", "/my-children", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
