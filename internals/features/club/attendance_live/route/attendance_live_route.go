package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_live/controller"
	features "klubku_backend/internals/middlewares/features"
)

// AttendanceLiveAdminRoutes: lifecycle sesi + edit record (JWT instruktur/admin)
func AttendanceLiveAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAttendanceSessionController(db)

	sessions := api.Group("/attendance/sessions", features.IsClubStaff())
	sessions.Post("/", ctrl.OpenSession)
	sessions.Get("/", ctrl.ListOpenSessions)
	sessions.Post("/:id/close", ctrl.CloseSession)
	sessions.Delete("/:id", ctrl.AbandonSession)
	sessions.Get("/:id/records", ctrl.ListSessionRecords)
	sessions.Put("/:id/records", ctrl.BulkUpsertRecords)

	records := api.Group("/attendance/records", features.IsClubStaff())
	records.Patch("/:id", ctrl.UpdateRecord)
	records.Delete("/:id", ctrl.DeleteRecord)
}

// AttendanceKioskRoutes: self check-in PIN (publik, rate-limited)
func AttendanceKioskRoutes(public fiber.Router, db *gorm.DB) {
	kiosk := controller.NewKioskController(db)
	public.Post("/kiosk/check-in", kiosk.CheckIn)
}
