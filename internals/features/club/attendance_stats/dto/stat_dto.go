package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	m "klubku_backend/internals/features/club/attendance_stats/model"
)

type MemberStatResponse struct {
	MemberAttendanceStatID               uuid.UUID              `json:"member_attendance_stat_id"`
	MemberAttendanceStatClubID           uuid.UUID              `json:"member_attendance_stat_club_id"`
	MemberAttendanceStatMemberID         uuid.UUID              `json:"member_attendance_stat_member_id"`
	MemberAttendanceStatTeamID           uuid.UUID              `json:"member_attendance_stat_team_id"`
	MemberAttendanceStatSeasonID         uuid.UUID              `json:"member_attendance_stat_season_id"`
	MemberAttendanceStatOnTimeCount      int                    `json:"member_attendance_stat_on_time_count"`
	MemberAttendanceStatLateCount        int                    `json:"member_attendance_stat_late_count"`
	MemberAttendanceStatAbsentCount      int                    `json:"member_attendance_stat_absent_count"`
	MemberAttendanceStatAttendanceRate   int                    `json:"member_attendance_stat_attendance_rate"`
	MemberAttendanceStatHistory          []m.MemberHistoryEntry `json:"member_attendance_stat_history,omitempty"`
	MemberAttendanceStatLastAggregatedAt *time.Time             `json:"member_attendance_stat_last_aggregated_at,omitempty"`
}

type TeamStatResponse struct {
	TeamAttendanceStatID               uuid.UUID            `json:"team_attendance_stat_id"`
	TeamAttendanceStatClubID           uuid.UUID            `json:"team_attendance_stat_club_id"`
	TeamAttendanceStatTeamID           uuid.UUID            `json:"team_attendance_stat_team_id"`
	TeamAttendanceStatSeasonID         uuid.UUID            `json:"team_attendance_stat_season_id"`
	TeamAttendanceStatOnTimeCount      int                  `json:"team_attendance_stat_on_time_count"`
	TeamAttendanceStatLateCount        int                  `json:"team_attendance_stat_late_count"`
	TeamAttendanceStatAbsentCount      int                  `json:"team_attendance_stat_absent_count"`
	TeamAttendanceStatAttendanceRate   int                  `json:"team_attendance_stat_attendance_rate"`
	TeamAttendanceStatHistory          []m.TeamHistoryEntry `json:"team_attendance_stat_history,omitempty"`
	TeamAttendanceStatLastAggregatedAt *time.Time           `json:"team_attendance_stat_last_aggregated_at,omitempty"`
}

func FromMemberStatModel(mdl m.MemberAttendanceStatModel) MemberStatResponse {
	out := MemberStatResponse{
		MemberAttendanceStatID:               mdl.MemberAttendanceStatID,
		MemberAttendanceStatClubID:           mdl.MemberAttendanceStatClubID,
		MemberAttendanceStatMemberID:         mdl.MemberAttendanceStatMemberID,
		MemberAttendanceStatTeamID:           mdl.MemberAttendanceStatTeamID,
		MemberAttendanceStatSeasonID:         mdl.MemberAttendanceStatSeasonID,
		MemberAttendanceStatOnTimeCount:      mdl.MemberAttendanceStatOnTimeCount,
		MemberAttendanceStatLateCount:        mdl.MemberAttendanceStatLateCount,
		MemberAttendanceStatAbsentCount:      mdl.MemberAttendanceStatAbsentCount,
		MemberAttendanceStatAttendanceRate:   mdl.MemberAttendanceStatAttendanceRate,
		MemberAttendanceStatLastAggregatedAt: mdl.MemberAttendanceStatLastAggregatedAt,
	}
	if len(mdl.MemberAttendanceStatHistory) > 0 {
		_ = json.Unmarshal(mdl.MemberAttendanceStatHistory, &out.MemberAttendanceStatHistory)
	}
	return out
}

func FromTeamStatModel(mdl m.TeamAttendanceStatModel) TeamStatResponse {
	out := TeamStatResponse{
		TeamAttendanceStatID:               mdl.TeamAttendanceStatID,
		TeamAttendanceStatClubID:           mdl.TeamAttendanceStatClubID,
		TeamAttendanceStatTeamID:           mdl.TeamAttendanceStatTeamID,
		TeamAttendanceStatSeasonID:         mdl.TeamAttendanceStatSeasonID,
		TeamAttendanceStatOnTimeCount:      mdl.TeamAttendanceStatOnTimeCount,
		TeamAttendanceStatLateCount:        mdl.TeamAttendanceStatLateCount,
		TeamAttendanceStatAbsentCount:      mdl.TeamAttendanceStatAbsentCount,
		TeamAttendanceStatAttendanceRate:   mdl.TeamAttendanceStatAttendanceRate,
		TeamAttendanceStatLastAggregatedAt: mdl.TeamAttendanceStatLastAggregatedAt,
	}
	if len(mdl.TeamAttendanceStatHistory) > 0 {
		_ = json.Unmarshal(mdl.TeamAttendanceStatHistory, &out.TeamAttendanceStatHistory)
	}
	return out
}
