package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainingSessionModel = fakta kalender latihan (immutable kecuali flag agregasi).
// Subsistem attendance hanya membaca baris ini dan membalik is_aggregated.
type TrainingSessionModel struct {
	TrainingSessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:training_session_id" json:"training_session_id"`

	TrainingSessionClubID   uuid.UUID `gorm:"type:uuid;not null;column:training_session_club_id;index:idx_training_sessions_club_team,priority:1" json:"training_session_club_id"`
	TrainingSessionTeamID   uuid.UUID `gorm:"type:uuid;not null;column:training_session_team_id;index:idx_training_sessions_club_team,priority:2" json:"training_session_team_id"`
	TrainingSessionSeasonID uuid.UUID `gorm:"type:uuid;not null;column:training_session_season_id" json:"training_session_season_id"`

	TrainingSessionDate      time.Time `gorm:"type:date;not null;column:training_session_date" json:"training_session_date"`
	TrainingSessionStartTime string    `gorm:"size:8;not null;column:training_session_start_time" json:"training_session_start_time"`
	TrainingSessionEndTime   string    `gorm:"size:8;not null;column:training_session_end_time" json:"training_session_end_time"`
	TrainingSessionLocation  *string   `gorm:"column:training_session_location" json:"training_session_location,omitempty"`

	// true setelah sesi ini pernah diagregasi → tidak boleh dibuka ulang
	TrainingSessionIsAggregated bool `gorm:"not null;default:false;column:training_session_is_aggregated" json:"training_session_is_aggregated"`

	TrainingSessionCreatedAt time.Time      `gorm:"column:training_session_created_at;autoCreateTime" json:"training_session_created_at"`
	TrainingSessionUpdatedAt *time.Time     `gorm:"column:training_session_updated_at;autoUpdateTime" json:"training_session_updated_at,omitempty"`
	TrainingSessionDeletedAt gorm.DeletedAt `gorm:"column:training_session_deleted_at;index" json:"training_session_deleted_at,omitempty"`
}

func (TrainingSessionModel) TableName() string { return "training_sessions" }

func (m *TrainingSessionModel) BeforeCreate(tx *gorm.DB) error {
	if m.TrainingSessionID == uuid.Nil {
		m.TrainingSessionID = uuid.New()
	}
	return nil
}
