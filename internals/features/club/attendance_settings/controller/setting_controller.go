package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_settings/dto"
	"klubku_backend/internals/features/club/attendance_settings/service"
	helper "klubku_backend/internals/helpers"
)

type AttendanceSettingController struct {
	DB  *gorm.DB
	svc *service.Service
}

func NewAttendanceSettingController(db *gorm.DB) *AttendanceSettingController {
	return &AttendanceSettingController{DB: db, svc: service.New(db)}
}

// GET /api/attendance/settings — nilai efektif (termasuk default kalau belum diset)
func (ctrl *AttendanceSettingController) GetSettings(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	set, err := ctrl.svc.GetSettings(clubID, nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"late_threshold_min": set.LateThresholdMin,
		"check_in_mode":      set.CheckInMode,
		"timezone":           set.Timezone,
	})
}

// PUT /api/attendance/settings
func (ctrl *AttendanceSettingController) UpsertSettings(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertAttendanceSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	// mulai dari nilai efektif sekarang, timpa field yang dikirim
	cur, err := ctrl.svc.GetSettings(clubID, nil)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if req.LateThresholdMin != nil {
		cur.LateThresholdMin = *req.LateThresholdMin
	}
	if req.CheckInMode != nil {
		cur.CheckInMode = *req.CheckInMode
	}
	if req.Timezone != nil {
		cur.Timezone = *req.Timezone
	}

	mdl, err := ctrl.svc.UpsertSettings(clubID, cur)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan settings")
	}
	return helper.JsonUpdated(c, "Settings disimpan", dto.FromAttendanceSettingModel(*mdl))
}
