package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status kehadiran (enum tertutup)
const (
	StatusPending = "PENDING"
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
)

// Asal check-in
const (
	CheckInSelf       = "SELF"
	CheckInInstructor = "INSTRUCTOR"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPresent, StatusLate, StatusAbsent:
		return true
	}
	return false
}

func IsValidCheckInType(s string) bool {
	switch s {
	case CheckInSelf, CheckInInstructor:
		return true
	}
	return false
}

// LiveAttendanceRecordModel = satu baris per (sesi aktif, anggota).
// Hidup hanya selama jendela check-in terbuka; dihapus massal saat agregasi.
type LiveAttendanceRecordModel struct {
	LiveAttendanceRecordID uuid.UUID `gorm:"type:uuid;primaryKey;column:live_attendance_record_id" json:"live_attendance_record_id"`

	LiveAttendanceRecordClubID uuid.UUID `gorm:"type:uuid;not null;column:live_attendance_record_club_id;index" json:"live_attendance_record_club_id"`

	// unik per (sesi aktif, anggota) → race dua create jadi CONFLICT, bukan duplikat
	LiveAttendanceRecordActiveSessionID uuid.UUID `gorm:"type:uuid;not null;column:live_attendance_record_active_session_id;uniqueIndex:uq_live_session_member,priority:1" json:"live_attendance_record_active_session_id"`
	LiveAttendanceRecordMemberID        uuid.UUID `gorm:"type:uuid;not null;column:live_attendance_record_member_id;uniqueIndex:uq_live_session_member,priority:2" json:"live_attendance_record_member_id"`

	// jam dinding "HH:MM:SS"; NULL = belum check-in / di-clear
	LiveAttendanceRecordCheckInTime *string `gorm:"size:8;column:live_attendance_record_check_in_time" json:"live_attendance_record_check_in_time,omitempty"`

	LiveAttendanceRecordStatus      string `gorm:"size:10;not null;column:live_attendance_record_status" json:"live_attendance_record_status"`
	LiveAttendanceRecordCheckInType string `gorm:"size:12;not null;column:live_attendance_record_check_in_type" json:"live_attendance_record_check_in_type"`

	LiveAttendanceRecordCreatedAt time.Time  `gorm:"column:live_attendance_record_created_at;autoCreateTime" json:"live_attendance_record_created_at"`
	LiveAttendanceRecordUpdatedAt *time.Time `gorm:"column:live_attendance_record_updated_at;autoUpdateTime" json:"live_attendance_record_updated_at,omitempty"`
}

func (LiveAttendanceRecordModel) TableName() string { return "live_attendance_records" }

func (m *LiveAttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if m.LiveAttendanceRecordID == uuid.Nil {
		m.LiveAttendanceRecordID = uuid.New()
	}
	return nil
}
