package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Entri riwayat per sesi pada rollup tim (delta gabungan satu sesi).
type TeamHistoryEntry struct {
	SessionID uuid.UUID `json:"session_id"`
	Date      string    `json:"date"`
	OnTime    int       `json:"on_time"`
	Late      int       `json:"late"`
	Absent    int       `json:"absent"`
}

// TeamAttendanceStatModel = rollup paralel di granularitas tim,
// scoped (klub, tim, musim). Semantik sama dengan stat anggota.
type TeamAttendanceStatModel struct {
	TeamAttendanceStatID uuid.UUID `gorm:"type:uuid;primaryKey;column:team_attendance_stat_id" json:"team_attendance_stat_id"`

	TeamAttendanceStatClubID   uuid.UUID `gorm:"type:uuid;not null;column:team_attendance_stat_club_id;uniqueIndex:uq_team_stats_scope,priority:1" json:"team_attendance_stat_club_id"`
	TeamAttendanceStatTeamID   uuid.UUID `gorm:"type:uuid;not null;column:team_attendance_stat_team_id;uniqueIndex:uq_team_stats_scope,priority:2" json:"team_attendance_stat_team_id"`
	TeamAttendanceStatSeasonID uuid.UUID `gorm:"type:uuid;not null;column:team_attendance_stat_season_id;uniqueIndex:uq_team_stats_scope,priority:3" json:"team_attendance_stat_season_id"`

	TeamAttendanceStatOnTimeCount int `gorm:"not null;default:0;column:team_attendance_stat_on_time_count" json:"team_attendance_stat_on_time_count"`
	TeamAttendanceStatLateCount   int `gorm:"not null;default:0;column:team_attendance_stat_late_count" json:"team_attendance_stat_late_count"`
	TeamAttendanceStatAbsentCount int `gorm:"not null;default:0;column:team_attendance_stat_absent_count" json:"team_attendance_stat_absent_count"`

	TeamAttendanceStatAttendanceRate int `gorm:"not null;default:0;column:team_attendance_stat_attendance_rate" json:"team_attendance_stat_attendance_rate"`

	TeamAttendanceStatHistory datatypes.JSON `gorm:"column:team_attendance_stat_history" json:"team_attendance_stat_history,omitempty"`

	TeamAttendanceStatLastAggregatedAt *time.Time `gorm:"column:team_attendance_stat_last_aggregated_at" json:"team_attendance_stat_last_aggregated_at,omitempty"`

	TeamAttendanceStatCreatedAt time.Time  `gorm:"column:team_attendance_stat_created_at;autoCreateTime" json:"team_attendance_stat_created_at"`
	TeamAttendanceStatUpdatedAt *time.Time `gorm:"column:team_attendance_stat_updated_at;autoUpdateTime" json:"team_attendance_stat_updated_at,omitempty"`
}

func (TeamAttendanceStatModel) TableName() string { return "team_attendance_stats" }

func (m *TeamAttendanceStatModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeamAttendanceStatID == uuid.Nil {
		m.TeamAttendanceStatID = uuid.New()
	}
	return nil
}
