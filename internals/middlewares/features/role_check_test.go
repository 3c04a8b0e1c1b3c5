package features

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klubku_backend/internals/constants"
)

func newRoleApp(role string, guard fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != "" {
			c.Locals("userRole", role)
		}
		return c.Next()
	})
	app.Put("/guarded", guard, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestIsClubAdminBlocksNonAdmin(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleInstructor, fiber.StatusForbidden},
		{constants.RoleMember, fiber.StatusForbidden},
		{"", fiber.StatusForbidden}, // locals tidak terisi sama sekali
	}
	for _, tc := range cases {
		app := newRoleApp(tc.role, IsClubAdmin())
		resp, err := app.Test(httptest.NewRequest("PUT", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "role %q", tc.role)
	}
}

func TestIsClubStaffAcceptsAdminAndInstructor(t *testing.T) {
	cases := []struct {
		role string
		want int
	}{
		{constants.RoleAdmin, fiber.StatusOK},
		{constants.RoleInstructor, fiber.StatusOK},
		{constants.RoleMember, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		app := newRoleApp(tc.role, IsClubStaff())
		resp, err := app.Test(httptest.NewRequest("PUT", "/guarded", nil))
		require.NoError(t, err)
		assert.Equal(t, tc.want, resp.StatusCode, "role %q", tc.role)
	}
}

func TestRequireRolesDefaultsToKnownRoles(t *testing.T) {
	app := newRoleApp(constants.RoleMember, RequireRoles())
	resp, err := app.Test(httptest.NewRequest("PUT", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	app = newRoleApp("guest", RequireRoles())
	resp, err = app.Test(httptest.NewRequest("PUT", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
