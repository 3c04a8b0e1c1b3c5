// internals/middlewares/features/role_check.go
package features

import (
	"github.com/gofiber/fiber/v2"

	"klubku_backend/internals/constants"
	helper "klubku_backend/internals/helpers"
)

// RequireRoles: guard role di level route. Role dibaca dari locals "userRole"
// yang diisi AuthMiddleware; tanpa role atau role di luar daftar → 403.
// Tanpa argumen = terima semua role yang dikenal aplikasi.
func RequireRoles(allowed ...string) fiber.Handler {
	if len(allowed) == 0 {
		allowed = constants.AllowedRoles
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("userRole").(string)
		for _, r := range allowed {
			if role == r {
				return c.Next()
			}
		}
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak: role tidak diizinkan")
	}
}

// IsClubAdmin utk endpoint yang hanya boleh disentuh admin klub
// (mis. ubah attendance settings).
func IsClubAdmin() fiber.Handler {
	return RequireRoles(constants.RoleAdmin)
}

// IsClubStaff utk endpoint operasional harian (admin ATAU instruktur).
func IsClubStaff() fiber.Handler {
	return RequireRoles(constants.RoleAdmin, constants.RoleInstructor)
}
