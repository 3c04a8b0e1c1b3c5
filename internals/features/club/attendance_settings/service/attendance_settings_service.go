package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"klubku_backend/internals/configs"
	"klubku_backend/internals/features/club/attendance_settings/model"
)

// ================== SETTINGS ==================

// Setting = nilai efektif per klub. Satu-satunya tempat default
// late-threshold di-resolve (15 menit, lihat configs.DefaultLateThresholdMin);
// tidak ada call site yang boleh punya default sendiri.
type Setting struct {
	LateThresholdMin int
	CheckInMode      string
	Timezone         string // IANA, mis. "Asia/Jakarta"
}

type Service struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Service { return &Service{DB: db} }

// GetSettings by club; tx boleh nil → pakai s.DB
func (s *Service) GetSettings(clubID uuid.UUID, tx *gorm.DB) (Setting, error) {
	db := s.DB
	if tx != nil {
		db = tx
	}

	var m model.AttendanceSettingModel
	err := db.Where("attendance_setting_club_id = ?", clubID).Limit(1).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// klub belum pernah set apa-apa → default aplikasi
		return Setting{
			LateThresholdMin: configs.DefaultLateThresholdMin,
			CheckInMode:      model.CheckInModePIN,
			Timezone:         configs.DefaultClubTimezone,
		}, nil
	}
	if err != nil {
		return Setting{}, err
	}

	out := Setting{
		LateThresholdMin: m.AttendanceSettingLateThresholdMin,
		CheckInMode:      m.AttendanceSettingCheckInMode,
		Timezone:         m.AttendanceSettingTimezone,
	}
	if out.LateThresholdMin <= 0 {
		out.LateThresholdMin = configs.DefaultLateThresholdMin
	}
	if out.CheckInMode == "" {
		out.CheckInMode = model.CheckInModePIN
	}
	if out.Timezone == "" {
		out.Timezone = configs.DefaultClubTimezone
	}
	return out, nil
}

// UpsertSettings: satu baris per klub (unik via index)
func (s *Service) UpsertSettings(clubID uuid.UUID, in Setting) (*model.AttendanceSettingModel, error) {
	if in.LateThresholdMin <= 0 {
		in.LateThresholdMin = configs.DefaultLateThresholdMin
	}
	if in.CheckInMode == "" {
		in.CheckInMode = model.CheckInModePIN
	}
	if in.Timezone == "" {
		in.Timezone = configs.DefaultClubTimezone
	}
	if _, err := time.LoadLocation(in.Timezone); err != nil {
		return nil, fmt.Errorf("timezone tidak valid: %q", in.Timezone)
	}

	rec := model.AttendanceSettingModel{
		AttendanceSettingClubID:           clubID,
		AttendanceSettingLateThresholdMin: in.LateThresholdMin,
		AttendanceSettingCheckInMode:      in.CheckInMode,
		AttendanceSettingTimezone:         in.Timezone,
	}
	err := s.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "attendance_setting_club_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"attendance_setting_late_threshold_min",
			"attendance_setting_check_in_mode",
			"attendance_setting_timezone",
		}),
	}).Create(&rec).Error
	if err != nil {
		return nil, err
	}

	var out model.AttendanceSettingModel
	if err := s.DB.Where("attendance_setting_club_id = ?", clubID).Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
