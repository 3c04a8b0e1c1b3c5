package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	MemberID uuid.UUID `gorm:"type:uuid;primaryKey;column:member_id" json:"member_id"`

	MemberClubID uuid.UUID `gorm:"type:uuid;not null;column:member_club_id;index:idx_members_club_team,priority:1" json:"member_club_id"`
	MemberTeamID uuid.UUID `gorm:"type:uuid;not null;column:member_team_id;index:idx_members_club_team,priority:2" json:"member_team_id"`

	MemberFullName string `gorm:"not null;column:member_full_name" json:"member_full_name"`

	// PIN kiosk disimpan sebagai hash bcrypt; keunikan PIN lintas roster
	// diasumsikan oleh admin, tidak di-enforce di DB (hash tidak bisa unik).
	MemberPinHash *string `gorm:"column:member_pin_hash" json:"-"`

	MemberIsActive bool `gorm:"not null;default:true;column:member_is_active" json:"member_is_active"`

	MemberCreatedAt time.Time      `gorm:"column:member_created_at;autoCreateTime" json:"member_created_at"`
	MemberUpdatedAt *time.Time     `gorm:"column:member_updated_at;autoUpdateTime" json:"member_updated_at,omitempty"`
	MemberDeletedAt gorm.DeletedAt `gorm:"column:member_deleted_at;index" json:"member_deleted_at,omitempty"`
}

func (MemberModel) TableName() string { return "club_members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
