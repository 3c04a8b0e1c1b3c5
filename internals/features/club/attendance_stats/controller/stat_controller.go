// internals/features/club/attendance_stats/controller/stat_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_stats/dto"
	"klubku_backend/internals/features/club/attendance_stats/model"
	helper "klubku_backend/internals/helpers"
)

type AttendanceStatController struct {
	DB *gorm.DB
}

func NewAttendanceStatController(db *gorm.DB) *AttendanceStatController {
	return &AttendanceStatController{DB: db}
}

/* ===================== MEMBER STATS ===================== */
// GET /api/attendance/stats/members?team_id=&season_id=&member_ids=a,b,c
func (ctrl *AttendanceStatController) ListMemberStats(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 200)

	q := ctrl.DB.Model(&model.MemberAttendanceStatModel{}).
		Where("member_attendance_stat_club_id = ?", clubID)

	if teamID := strings.TrimSpace(c.Query("team_id")); teamID != "" {
		id, err := uuid.Parse(teamID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "team_id tidak valid")
		}
		q = q.Where("member_attendance_stat_team_id = ?", id)
	}
	if seasonID := strings.TrimSpace(c.Query("season_id")); seasonID != "" {
		id, err := uuid.Parse(seasonID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "season_id tidak valid")
		}
		q = q.Where("member_attendance_stat_season_id = ?", id)
	}
	if raw := strings.TrimSpace(c.Query("member_ids")); raw != "" {
		ids := make([]string, 0)
		for _, s := range strings.Split(raw, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if _, err := uuid.Parse(s); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "member_ids mengandung UUID tidak valid")
			}
			ids = append(ids, s)
		}
		if len(ids) > 0 {
			// Postgres array filter; pq.Array supaya tidak build IN clause manual
			q = q.Where("member_attendance_stat_member_id = ANY(?)", pq.Array(ids))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var stats []model.MemberAttendanceStatModel
	if err := q.
		Order("member_attendance_stat_attendance_rate DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&stats).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.MemberStatResponse, 0, len(stats))
	for _, st := range stats {
		out = append(out, dto.FromMemberStatModel(st))
	}
	return helper.JsonList(c, "ok", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== TEAM STATS ===================== */
// GET /api/attendance/stats/teams/:team_id?season_id=
func (ctrl *AttendanceStatController) GetTeamStats(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromTokenPreferInstructor(c)
	if err != nil {
		return err
	}

	teamID, err := uuid.Parse(c.Params("team_id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "team_id tidak valid")
	}

	q := ctrl.DB.
		Where("team_attendance_stat_club_id = ? AND team_attendance_stat_team_id = ?", clubID, teamID)
	if seasonID := strings.TrimSpace(c.Query("season_id")); seasonID != "" {
		id, err := uuid.Parse(seasonID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "season_id tidak valid")
		}
		q = q.Where("team_attendance_stat_season_id = ?", id)
	}

	var mdl model.TeamAttendanceStatModel
	if err := q.Take(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Stat tim tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromTeamStatModel(mdl))
}
