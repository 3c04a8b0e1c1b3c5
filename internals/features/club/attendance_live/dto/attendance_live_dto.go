// file: internals/features/club/attendance_live/dto/attendance_live_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "klubku_backend/internals/features/club/attendance_live/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Open (JSON)
type OpenAttendanceSessionRequest struct {
	// Wajib: jadwal latihan yang mau dibuka
	TrainingSessionID uuid.UUID `json:"training_session_id" validate:"required"`
	// Opsional: override musim; kosong → ikut musim jadwal
	SeasonID *uuid.UUID `json:"season_id" validate:"omitempty"`
}

// Close (JSON)
type CloseAttendanceSessionRequest struct {
	// Daftar anggota eligible yang TIDAK punya record saat close.
	// Omit (null) → server menurunkan sendiri dari roster di dalam transaksi.
	NotCheckedInMemberIDs []uuid.UUID `json:"not_checked_in_member_ids" validate:"omitempty,dive,required"`
}

// Update record (partial JSON)
type UpdateLiveRecordRequest struct {
	Status      *string `json:"status" validate:"omitempty,oneof=PENDING PRESENT LATE ABSENT"`
	CheckInTime *string `json:"check_in_time" validate:"omitempty,max=8"`
	CheckInType *string `json:"check_in_type" validate:"omitempty,oneof=SELF INSTRUCTOR"`
	// true → set check_in_time NULL (clear)
	ClearCheckInTime bool `json:"clear_check_in_time"`
}

// Bulk upsert (JSON) — edit manual instruktur
type BulkUpsertEntryRequest struct {
	MemberID uuid.UUID `json:"member_id" validate:"required"`
	// null = revert ke belum check-in
	Status *string `json:"status" validate:"omitempty,oneof=PENDING PRESENT LATE ABSENT"`
}

type BulkUpsertRequest struct {
	Entries []BulkUpsertEntryRequest `json:"entries" validate:"required,min=1,dive"`
}

// Kiosk self check-in (JSON, tanpa JWT — trust model kiosk bersama)
type KioskCheckInRequest struct {
	ClubID          uuid.UUID `json:"club_id" validate:"required"`
	ActiveSessionID uuid.UUID `json:"active_session_id" validate:"required"`
	Pin             string    `json:"pin" validate:"required,len=4,numeric"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type ActiveSessionResponse struct {
	AttendanceActiveSessionID                uuid.UUID `json:"attendance_active_session_id"`
	AttendanceActiveSessionClubID            uuid.UUID `json:"attendance_active_session_club_id"`
	AttendanceActiveSessionSeasonID          uuid.UUID `json:"attendance_active_session_season_id"`
	AttendanceActiveSessionTrainingSessionID uuid.UUID `json:"attendance_active_session_training_session_id"`
	AttendanceActiveSessionCreatedAt         time.Time `json:"attendance_active_session_created_at"`
}

type LiveRecordResponse struct {
	LiveAttendanceRecordID              uuid.UUID  `json:"live_attendance_record_id"`
	LiveAttendanceRecordClubID          uuid.UUID  `json:"live_attendance_record_club_id"`
	LiveAttendanceRecordActiveSessionID uuid.UUID  `json:"live_attendance_record_active_session_id"`
	LiveAttendanceRecordMemberID        uuid.UUID  `json:"live_attendance_record_member_id"`
	LiveAttendanceRecordCheckInTime     *string    `json:"live_attendance_record_check_in_time,omitempty"`
	LiveAttendanceRecordStatus          string     `json:"live_attendance_record_status"`
	LiveAttendanceRecordCheckInType     string     `json:"live_attendance_record_check_in_type"`
	LiveAttendanceRecordCreatedAt       time.Time  `json:"live_attendance_record_created_at"`
	LiveAttendanceRecordUpdatedAt       *time.Time `json:"live_attendance_record_updated_at,omitempty"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func FromActiveSessionModel(mdl m.AttendanceActiveSessionModel) ActiveSessionResponse {
	return ActiveSessionResponse{
		AttendanceActiveSessionID:                mdl.AttendanceActiveSessionID,
		AttendanceActiveSessionClubID:            mdl.AttendanceActiveSessionClubID,
		AttendanceActiveSessionSeasonID:          mdl.AttendanceActiveSessionSeasonID,
		AttendanceActiveSessionTrainingSessionID: mdl.AttendanceActiveSessionTrainingSessionID,
		AttendanceActiveSessionCreatedAt:         mdl.AttendanceActiveSessionCreatedAt,
	}
}

func FromLiveRecordModel(mdl m.LiveAttendanceRecordModel) LiveRecordResponse {
	return LiveRecordResponse{
		LiveAttendanceRecordID:              mdl.LiveAttendanceRecordID,
		LiveAttendanceRecordClubID:          mdl.LiveAttendanceRecordClubID,
		LiveAttendanceRecordActiveSessionID: mdl.LiveAttendanceRecordActiveSessionID,
		LiveAttendanceRecordMemberID:        mdl.LiveAttendanceRecordMemberID,
		LiveAttendanceRecordCheckInTime:     mdl.LiveAttendanceRecordCheckInTime,
		LiveAttendanceRecordStatus:          mdl.LiveAttendanceRecordStatus,
		LiveAttendanceRecordCheckInType:     mdl.LiveAttendanceRecordCheckInType,
		LiveAttendanceRecordCreatedAt:       mdl.LiveAttendanceRecordCreatedAt,
		LiveAttendanceRecordUpdatedAt:       mdl.LiveAttendanceRecordUpdatedAt,
	}
}

func FromLiveRecordModels(mdls []m.LiveAttendanceRecordModel) []LiveRecordResponse {
	out := make([]LiveRecordResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromLiveRecordModel(mdl))
	}
	return out
}
