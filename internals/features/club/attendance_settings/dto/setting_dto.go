package dto

import (
	"time"

	"github.com/google/uuid"

	m "klubku_backend/internals/features/club/attendance_settings/model"
)

// Upsert (PUT, JSON)
type UpsertAttendanceSettingRequest struct {
	LateThresholdMin *int    `json:"late_threshold_min" validate:"omitempty,min=0,max=240"`
	CheckInMode      *string `json:"check_in_mode" validate:"omitempty,oneof=pin face"`
	Timezone         *string `json:"timezone" validate:"omitempty,timezone"`
}

type AttendanceSettingResponse struct {
	AttendanceSettingID               uuid.UUID  `json:"attendance_setting_id"`
	AttendanceSettingClubID           uuid.UUID  `json:"attendance_setting_club_id"`
	AttendanceSettingLateThresholdMin int        `json:"attendance_setting_late_threshold_min"`
	AttendanceSettingCheckInMode      string     `json:"attendance_setting_check_in_mode"`
	AttendanceSettingTimezone         string     `json:"attendance_setting_timezone"`
	AttendanceSettingCreatedAt        time.Time  `json:"attendance_setting_created_at"`
	AttendanceSettingUpdatedAt        *time.Time `json:"attendance_setting_updated_at,omitempty"`
}

func FromAttendanceSettingModel(mdl m.AttendanceSettingModel) AttendanceSettingResponse {
	return AttendanceSettingResponse{
		AttendanceSettingID:               mdl.AttendanceSettingID,
		AttendanceSettingClubID:           mdl.AttendanceSettingClubID,
		AttendanceSettingLateThresholdMin: mdl.AttendanceSettingLateThresholdMin,
		AttendanceSettingCheckInMode:      mdl.AttendanceSettingCheckInMode,
		AttendanceSettingTimezone:         mdl.AttendanceSettingTimezone,
		AttendanceSettingCreatedAt:        mdl.AttendanceSettingCreatedAt,
		AttendanceSettingUpdatedAt:        mdl.AttendanceSettingUpdatedAt,
	}
}
