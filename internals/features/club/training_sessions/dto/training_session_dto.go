// file: internals/features/club/training_sessions/dto/training_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	m "klubku_backend/internals/features/club/training_sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateTrainingSessionRequest struct {
	TrainingSessionTeamID   uuid.UUID `json:"training_session_team_id" validate:"required"`
	TrainingSessionSeasonID uuid.UUID `json:"training_session_season_id" validate:"required"`

	// "2006-01-02"
	TrainingSessionDate string `json:"training_session_date" validate:"required,datetime=2006-01-02"`
	// "HH:MM" atau "HH:MM:SS"
	TrainingSessionStartTime string  `json:"training_session_start_time" validate:"required,max=8"`
	TrainingSessionEndTime   string  `json:"training_session_end_time" validate:"required,max=8"`
	TrainingSessionLocation  *string `json:"training_session_location" validate:"omitempty,max=200"`
}

// Filter / List (query)
type FilterTrainingSessionRequest struct {
	TeamID   *uuid.UUID `query:"team_id" validate:"omitempty"`
	SeasonID *uuid.UUID `query:"season_id" validate:"omitempty"`
	// true → hanya yang belum diagregasi (masih bisa dibuka)
	OnlyOpenable *bool `query:"only_openable" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type TrainingSessionResponse struct {
	TrainingSessionID           uuid.UUID `json:"training_session_id"`
	TrainingSessionClubID       uuid.UUID `json:"training_session_club_id"`
	TrainingSessionTeamID       uuid.UUID `json:"training_session_team_id"`
	TrainingSessionSeasonID     uuid.UUID `json:"training_session_season_id"`
	TrainingSessionDate         string    `json:"training_session_date"`
	TrainingSessionStartTime    string    `json:"training_session_start_time"`
	TrainingSessionEndTime      string    `json:"training_session_end_time"`
	TrainingSessionLocation     *string   `json:"training_session_location,omitempty"`
	TrainingSessionIsAggregated bool      `json:"training_session_is_aggregated"`
	TrainingSessionCreatedAt    time.Time `json:"training_session_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateTrainingSessionRequest) ToModel(clubID uuid.UUID) (*m.TrainingSessionModel, error) {
	date, err := time.Parse("2006-01-02", r.TrainingSessionDate)
	if err != nil {
		return nil, err
	}
	return &m.TrainingSessionModel{
		TrainingSessionClubID:    clubID,
		TrainingSessionTeamID:    r.TrainingSessionTeamID,
		TrainingSessionSeasonID:  r.TrainingSessionSeasonID,
		TrainingSessionDate:      date,
		TrainingSessionStartTime: r.TrainingSessionStartTime,
		TrainingSessionEndTime:   r.TrainingSessionEndTime,
		TrainingSessionLocation:  r.TrainingSessionLocation,
	}, nil
}

func FromTrainingSessionModel(mdl m.TrainingSessionModel) TrainingSessionResponse {
	return TrainingSessionResponse{
		TrainingSessionID:           mdl.TrainingSessionID,
		TrainingSessionClubID:       mdl.TrainingSessionClubID,
		TrainingSessionTeamID:       mdl.TrainingSessionTeamID,
		TrainingSessionSeasonID:     mdl.TrainingSessionSeasonID,
		TrainingSessionDate:         mdl.TrainingSessionDate.Format("2006-01-02"),
		TrainingSessionStartTime:    mdl.TrainingSessionStartTime,
		TrainingSessionEndTime:      mdl.TrainingSessionEndTime,
		TrainingSessionLocation:     mdl.TrainingSessionLocation,
		TrainingSessionIsAggregated: mdl.TrainingSessionIsAggregated,
		TrainingSessionCreatedAt:    mdl.TrainingSessionCreatedAt,
	}
}

func FromTrainingSessionModels(mdls []m.TrainingSessionModel) []TrainingSessionResponse {
	out := make([]TrainingSessionResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromTrainingSessionModel(mdl))
	}
	return out
}
