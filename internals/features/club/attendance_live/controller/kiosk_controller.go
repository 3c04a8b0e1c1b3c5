// internals/features/club/attendance_live/controller/kiosk_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_live/dto"
	livemodel "klubku_backend/internals/features/club/attendance_live/model"
	"klubku_backend/internals/features/club/attendance_live/service"
	settingmodel "klubku_backend/internals/features/club/attendance_settings/model"
	settingsvc "klubku_backend/internals/features/club/attendance_settings/service"
	membersvc "klubku_backend/internals/features/club/members/service"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"
	helper "klubku_backend/internals/helpers"
	"klubku_backend/internals/helpers/dbtime"
)

// KioskController = self check-in via PIN, tanpa JWT.
// Trust model kiosk bersama: satu-satunya "auth" adalah kecocokan PIN
// terhadap roster tim sesi yang sedang terbuka.
type KioskController struct {
	DB        *gorm.DB
	lifecycle *service.SessionLifecycleService
	records   *service.LiveRecordService
	settings  *settingsvc.Service
	roster    *membersvc.RosterService
}

func NewKioskController(db *gorm.DB) *KioskController {
	return &KioskController{
		DB:        db,
		lifecycle: service.NewSessionLifecycleService(db),
		records:   service.NewLiveRecordService(db),
		settings:  settingsvc.New(db),
		roster:    membersvc.NewRosterService(db),
	}
}

/* ===================== SELF CHECK-IN ===================== */
// POST /public/kiosk/check-in
func (ctrl *KioskController) CheckIn(c *fiber.Ctx) error {
	var req dto.KioskCheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return helper.JsonValidationError(c, map[string][]string{"pin": {"PIN harus 4 digit angka"}})
	}

	// settings klub: ambang telat + mode (face dideklarasikan tapi ditolak)
	set, err := ctrl.settings.GetSettings(req.ClubID, nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if set.CheckInMode != settingmodel.CheckInModePIN {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Mode check-in '"+set.CheckInMode+"' belum didukung di kiosk ini")
	}

	// sesi aktif harus milik klub
	sess, err := ctrl.lifecycle.Get(req.ClubID, req.ActiveSessionID)
	if err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}

	// jadwal asal (butuh jam mulai + tim)
	var ts tsmodel.TrainingSessionModel
	if err := ctrl.DB.
		Where("training_session_id = ? AND training_session_club_id = ?",
			sess.AttendanceActiveSessionTrainingSessionID, req.ClubID).
		Take(&ts).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal sesi tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// PIN → member (scan roster tim, bcrypt compare)
	member, err := ctrl.roster.ResolvePIN(nil, req.ClubID, ts.TrainingSessionTeamID, req.Pin)
	if err != nil {
		if errors.Is(err, membersvc.ErrMemberNotFound) {
			// soft failure: kiosk menampilkan "PIN tidak valid", bukan error halaman
			return helper.JsonError(c, fiber.StatusNotFound, "PIN tidak valid")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	// klasifikasi PRESENT/LATE dari jam sekarang vs jam mulai sesi;
	// timezone dari settings klub (route kiosk tidak lewat AuthMiddleware,
	// jadi locals club_timezone tidak pernah terisi di sini)
	now := dbtime.ClockIn(set.Timezone)
	status, err := service.Classify(ts.TrainingSessionStartTime, now, set.LateThresholdMin)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	rec, err := ctrl.records.Create(
		req.ClubID, req.ActiveSessionID, member.MemberID,
		status, livemodel.CheckInSelf, &now,
	)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			// idempotent no-op, bukan error keras
			return helper.JsonOK(c, "Sudah check-in sebelumnya", fiber.Map{
				"member_id":       member.MemberID,
				"already_checked": true,
			})
		}
		return helper.JsonError(c, statusFor(err), err.Error())
	}

	return helper.JsonCreated(c, "Check-in berhasil", dto.FromLiveRecordModel(*rec))
}
