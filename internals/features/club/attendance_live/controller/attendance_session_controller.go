// internals/features/club/attendance_live/controller/attendance_session_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_live/dto"
	"klubku_backend/internals/features/club/attendance_live/service"
	statssvc "klubku_backend/internals/features/club/attendance_stats/service"
	helper "klubku_backend/internals/helpers"
)

type AttendanceSessionController struct {
	DB        *gorm.DB
	lifecycle *service.SessionLifecycleService
	records   *service.LiveRecordService
	aggregate *statssvc.AggregationService
}

func NewAttendanceSessionController(db *gorm.DB) *AttendanceSessionController {
	return &AttendanceSessionController{
		DB:        db,
		lifecycle: service.NewSessionLifecycleService(db),
		records:   service.NewLiveRecordService(db),
		aggregate: statssvc.NewAggregationService(db),
	}
}

// mapping error service → status HTTP
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrTrainingSessionNotFound),
		errors.Is(err, service.ErrRecordNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrSessionAlreadyOpen),
		errors.Is(err, service.ErrAlreadyCheckedIn),
		errors.Is(err, service.ErrSessionAggregated):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

/* ===================== OPEN ===================== */
// POST /api/attendance/sessions
func (ctrl *AttendanceSessionController) OpenSession(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	var req dto.OpenAttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	seasonID := uuid.Nil
	if req.SeasonID != nil {
		seasonID = *req.SeasonID
	}

	sess, err := ctrl.lifecycle.Open(clubID, req.TrainingSessionID, seasonID)
	if err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}
	return helper.JsonCreated(c, "Sesi attendance dibuka", dto.FromActiveSessionModel(*sess))
}

/* ===================== CLOSE (agregasi) ===================== */
// POST /api/attendance/sessions/:id/close
func (ctrl *AttendanceSessionController) CloseSession(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.CloseAttendanceSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
		}
	}

	sum, err := ctrl.aggregate.AggregateAndCleanup(clubID, sessionID, req.NotCheckedInMemberIDs)
	if err != nil {
		// prosedur atomik: gagal = rollback penuh, sesi tetap Open, aman di-retry
		return helper.JsonErrorCode(c, fiber.StatusInternalServerError,
			"AGGREGATION_FAILURE", "Agregasi gagal, sesi masih terbuka: "+err.Error())
	}
	if sum.AlreadyClosed {
		return helper.JsonOK(c, "Sesi sudah ditutup sebelumnya (no-op)", sum)
	}
	return helper.JsonOK(c, "Sesi ditutup & diagregasi", sum)
}

/* ===================== ABANDON ===================== */
// DELETE /api/attendance/sessions/:id
func (ctrl *AttendanceSessionController) AbandonSession(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.lifecycle.Abandon(clubID, sessionID); err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}
	// data kehadiran sesi ini dibuang tanpa agregasi
	return helper.JsonDeleted(c, "Sesi dibatalkan tanpa agregasi", fiber.Map{
		"attendance_active_session_id": sessionID,
	})
}

/* ===================== LIST OPEN ===================== */
// GET /api/attendance/sessions
func (ctrl *AttendanceSessionController) ListOpenSessions(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	sessions, err := ctrl.lifecycle.ListOpen(clubID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	out := make([]dto.ActiveSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, dto.FromActiveSessionModel(s))
	}
	return helper.JsonOK(c, "ok", out)
}

/* ===================== LIVE RECORDS ===================== */
// GET /api/attendance/sessions/:id/records
func (ctrl *AttendanceSessionController) ListSessionRecords(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if _, err := ctrl.lifecycle.Get(clubID, sessionID); err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}

	recs, err := ctrl.records.ListBySession(clubID, sessionID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromLiveRecordModels(recs))
}

// PUT /api/attendance/sessions/:id/records (bulk upsert instruktur)
func (ctrl *AttendanceSessionController) BulkUpsertRecords(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	sessionID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.BulkUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	entries := make([]service.BulkEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, service.BulkEntry{MemberID: e.MemberID, Status: e.Status})
	}

	recs, err := ctrl.records.BulkUpsert(clubID, sessionID, entries)
	if err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}
	return helper.JsonUpdated(c, "Kehadiran diperbarui", dto.FromLiveRecordModels(recs))
}

// PATCH /api/attendance/records/:id
func (ctrl *AttendanceSessionController) UpdateRecord(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateLiveRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec, err := ctrl.records.Update(clubID, recordID, service.UpdateFields{
		Status:           req.Status,
		CheckInTime:      req.CheckInTime,
		CheckInType:      req.CheckInType,
		ClearCheckInTime: req.ClearCheckInTime,
	})
	if err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}
	return helper.JsonUpdated(c, "Entri kehadiran diubah", dto.FromLiveRecordModel(*rec))
}

// DELETE /api/attendance/records/:id
func (ctrl *AttendanceSessionController) DeleteRecord(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	if err := ctrl.records.Delete(clubID, recordID); err != nil {
		return helper.JsonError(c, statusFor(err), err.Error())
	}
	return helper.JsonDeleted(c, "Entri kehadiran dihapus", fiber.Map{
		"live_attendance_record_id": recordID,
	})
}
