// internals/features/club/training_sessions/controller/training_session_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/training_sessions/dto"
	"klubku_backend/internals/features/club/training_sessions/model"
	helper "klubku_backend/internals/helpers"
)

type TrainingSessionController struct {
	DB *gorm.DB
}

func NewTrainingSessionController(db *gorm.DB) *TrainingSessionController {
	return &TrainingSessionController{DB: db}
}

/* ===================== CREATE ===================== */
// POST /api/training-sessions
func (ctrl *TrainingSessionController) CreateTrainingSession(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTrainingSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	v := validator.New()
	if err := v.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	mdl, err := req.ToModel(clubID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Tanggal tidak valid")
	}
	if err := ctrl.DB.Create(mdl).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat jadwal latihan")
	}
	return helper.JsonCreated(c, "Jadwal latihan dibuat", dto.FromTrainingSessionModel(*mdl))
}

/* ===================== LIST ===================== */
// GET /api/training-sessions
func (ctrl *TrainingSessionController) ListTrainingSessions(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	var filter dto.FilterTrainingSessionRequest
	if err := c.QueryParser(&filter); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.TrainingSessionModel{}).
		Where("training_session_club_id = ?", clubID)
	if filter.TeamID != nil {
		q = q.Where("training_session_team_id = ?", *filter.TeamID)
	}
	if filter.SeasonID != nil {
		q = q.Where("training_session_season_id = ?", *filter.SeasonID)
	}
	if filter.OnlyOpenable != nil && *filter.OnlyOpenable {
		q = q.Where("training_session_is_aggregated = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var sessions []model.TrainingSessionModel
	if err := q.
		Order("training_session_date DESC, training_session_start_time DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&sessions).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok",
		dto.FromTrainingSessionModels(sessions),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

/* ===================== DETAIL ===================== */
// GET /api/training-sessions/:id
func (ctrl *TrainingSessionController) GetTrainingSession(c *fiber.Ctx) error {
	clubID, err := helper.GetClubIDFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var mdl model.TrainingSessionModel
	if err := ctrl.DB.
		Where("training_session_id = ? AND training_session_club_id = ?", id, clubID).
		Take(&mdl).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jadwal latihan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", dto.FromTrainingSessionModel(mdl))
}
