package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entri riwayat per sesi yang di-append ke kolom JSON history.
type MemberHistoryEntry struct {
	SessionID   uuid.UUID `json:"session_id"`
	Date        string    `json:"date"` // "2006-01-02"
	Status      string    `json:"status"`
	CheckInTime *string   `json:"check_in_time,omitempty"`
}

// MemberAttendanceStatModel = counter kehadiran permanen per anggota,
// scoped (klub, anggota, tim, musim). Merge-only: counter naik, history append.
type MemberAttendanceStatModel struct {
	MemberAttendanceStatID uuid.UUID `gorm:"type:uuid;primaryKey;column:member_attendance_stat_id" json:"member_attendance_stat_id"`

	MemberAttendanceStatClubID   uuid.UUID `gorm:"type:uuid;not null;column:member_attendance_stat_club_id;uniqueIndex:uq_member_stats_scope,priority:1" json:"member_attendance_stat_club_id"`
	MemberAttendanceStatMemberID uuid.UUID `gorm:"type:uuid;not null;column:member_attendance_stat_member_id;uniqueIndex:uq_member_stats_scope,priority:2" json:"member_attendance_stat_member_id"`
	MemberAttendanceStatTeamID   uuid.UUID `gorm:"type:uuid;not null;column:member_attendance_stat_team_id;uniqueIndex:uq_member_stats_scope,priority:3" json:"member_attendance_stat_team_id"`
	MemberAttendanceStatSeasonID uuid.UUID `gorm:"type:uuid;not null;column:member_attendance_stat_season_id;uniqueIndex:uq_member_stats_scope,priority:4" json:"member_attendance_stat_season_id"`

	MemberAttendanceStatOnTimeCount int `gorm:"not null;default:0;column:member_attendance_stat_on_time_count" json:"member_attendance_stat_on_time_count"`
	MemberAttendanceStatLateCount   int `gorm:"not null;default:0;column:member_attendance_stat_late_count" json:"member_attendance_stat_late_count"`
	MemberAttendanceStatAbsentCount int `gorm:"not null;default:0;column:member_attendance_stat_absent_count" json:"member_attendance_stat_absent_count"`

	// persen bulat: round((on_time+late)*100/total)
	MemberAttendanceStatAttendanceRate int `gorm:"not null;default:0;column:member_attendance_stat_attendance_rate" json:"member_attendance_stat_attendance_rate"`

	MemberAttendanceStatHistory datatypes.JSON `gorm:"column:member_attendance_stat_history" json:"member_attendance_stat_history,omitempty"`

	MemberAttendanceStatLastAggregatedAt *time.Time `gorm:"column:member_attendance_stat_last_aggregated_at" json:"member_attendance_stat_last_aggregated_at,omitempty"`

	MemberAttendanceStatCreatedAt time.Time  `gorm:"column:member_attendance_stat_created_at;autoCreateTime" json:"member_attendance_stat_created_at"`
	MemberAttendanceStatUpdatedAt *time.Time `gorm:"column:member_attendance_stat_updated_at;autoUpdateTime" json:"member_attendance_stat_updated_at,omitempty"`
}

func (MemberAttendanceStatModel) TableName() string { return "member_attendance_stats" }

func (m *MemberAttendanceStatModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberAttendanceStatID == uuid.Nil {
		m.MemberAttendanceStatID = uuid.New()
	}
	return nil
}
