package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_settings/controller"
	features "klubku_backend/internals/middlewares/features"
)

func AttendanceSettingRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceSettingController(db)

	settings := api.Group("/attendance/settings")
	settings.Get("/", ctrl.GetSettings)
	// ubah konfigurasi klub = admin-only
	settings.Put("/", features.IsClubAdmin(), ctrl.UpsertSettings)
}
