package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Mode check-in kiosk
const (
	CheckInModePIN  = "pin"
	CheckInModeFace = "face" // dideklarasikan tapi belum diimplementasi; ditolak di boundary kiosk
)

type AttendanceSettingModel struct {
	AttendanceSettingID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_setting_id" json:"attendance_setting_id"`

	AttendanceSettingClubID uuid.UUID `gorm:"type:uuid;not null;column:attendance_setting_club_id;uniqueIndex:uq_attendance_settings_club" json:"attendance_setting_club_id"`

	AttendanceSettingLateThresholdMin int    `gorm:"not null;default:15;column:attendance_setting_late_threshold_min" json:"attendance_setting_late_threshold_min"`
	AttendanceSettingCheckInMode      string `gorm:"size:8;not null;default:'pin';column:attendance_setting_check_in_mode" json:"attendance_setting_check_in_mode"`

	// IANA timezone jam dinding klub; dipakai kiosk (tanpa JWT) saat klasifikasi
	AttendanceSettingTimezone string `gorm:"size:64;not null;default:'Asia/Jakarta';column:attendance_setting_timezone" json:"attendance_setting_timezone"`

	AttendanceSettingCreatedAt time.Time  `gorm:"column:attendance_setting_created_at;autoCreateTime" json:"attendance_setting_created_at"`
	AttendanceSettingUpdatedAt *time.Time `gorm:"column:attendance_setting_updated_at;autoUpdateTime" json:"attendance_setting_updated_at,omitempty"`
}

func (AttendanceSettingModel) TableName() string { return "club_attendance_settings" }

func (m *AttendanceSettingModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceSettingID == uuid.Nil {
		m.AttendanceSettingID = uuid.New()
	}
	return nil
}
