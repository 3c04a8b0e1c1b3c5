package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_stats/controller"
)

func AttendanceStatRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceStatController(db)

	stats := api.Group("/attendance/stats")
	stats.Get("/members", ctrl.ListMemberStats)
	stats.Get("/teams/:team_id", ctrl.GetTeamStats)
}
