package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	liveRoute "klubku_backend/internals/features/club/attendance_live/route"
	settingRoute "klubku_backend/internals/features/club/attendance_settings/route"
	statRoute "klubku_backend/internals/features/club/attendance_stats/route"
	tsRoute "klubku_backend/internals/features/club/training_sessions/route"
)

func ClubRoutes(api fiber.Router, db *gorm.DB) {
	tsRoute.TrainingSessionRoutes(api, db)
	settingRoute.AttendanceSettingRoutes(api, db)
	liveRoute.AttendanceLiveAdminRoutes(api, db)
	statRoute.AttendanceStatRoutes(api, db)
}

func KioskRoutes(public fiber.Router, db *gorm.DB) {
	liveRoute.AttendanceKioskRoutes(public, db)
}
