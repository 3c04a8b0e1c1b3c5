package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AttendanceActiveSessionModel = jendela check-in yang sedang terbuka
// untuk tepat satu training session. Baris ini di-hard-delete saat close
// (lewat agregasi) maupun saat abandon.
type AttendanceActiveSessionModel struct {
	AttendanceActiveSessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_active_session_id" json:"attendance_active_session_id"`

	AttendanceActiveSessionClubID   uuid.UUID `gorm:"type:uuid;not null;column:attendance_active_session_club_id;index" json:"attendance_active_session_club_id"`
	AttendanceActiveSessionSeasonID uuid.UUID `gorm:"type:uuid;not null;column:attendance_active_session_season_id" json:"attendance_active_session_season_id"`

	// satu training session maksimal punya satu jendela aktif
	AttendanceActiveSessionTrainingSessionID uuid.UUID `gorm:"type:uuid;not null;column:attendance_active_session_training_session_id;uniqueIndex:uq_active_session_training" json:"attendance_active_session_training_session_id"`

	AttendanceActiveSessionCreatedAt time.Time `gorm:"column:attendance_active_session_created_at;autoCreateTime" json:"attendance_active_session_created_at"`
}

func (AttendanceActiveSessionModel) TableName() string { return "attendance_active_sessions" }

func (m *AttendanceActiveSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceActiveSessionID == uuid.Nil {
		m.AttendanceActiveSessionID = uuid.New()
	}
	return nil
}
