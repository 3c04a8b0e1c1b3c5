package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_live/model"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"
)

var (
	ErrTrainingSessionNotFound = errors.New("training session tidak ditemukan")
	ErrSessionAlreadyOpen      = errors.New("sesi attendance untuk jadwal ini sudah dibuka")
	ErrSessionAggregated       = errors.New("sesi sudah pernah diagregasi, tidak bisa dibuka ulang")
)

// SessionLifecycleService = state machine per training session:
// Closed → Open (open), Open → Closed lewat agregasi (di attendance_stats)
// atau lewat Abandon (buang data live tanpa agregasi).
type SessionLifecycleService struct {
	DB *gorm.DB
}

func NewSessionLifecycleService(db *gorm.DB) *SessionLifecycleService {
	return &SessionLifecycleService{DB: db}
}

// Open membuka jendela check-in untuk satu training session.
// Guard: jadwal milik klub, belum pernah diagregasi, belum ada jendela aktif
// (unique index di training_session_id → race dua open jadi CONFLICT).
func (s *SessionLifecycleService) Open(clubID, trainingSessionID, seasonID uuid.UUID) (*model.AttendanceActiveSessionModel, error) {
	var out *model.AttendanceActiveSessionModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var ts tsmodel.TrainingSessionModel
		err := tx.
			Where("training_session_id = ? AND training_session_club_id = ?", trainingSessionID, clubID).
			Take(&ts).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrainingSessionNotFound
		}
		if err != nil {
			return err
		}
		if ts.TrainingSessionIsAggregated {
			return ErrSessionAggregated
		}

		if seasonID == uuid.Nil {
			seasonID = ts.TrainingSessionSeasonID
		}

		sess := model.AttendanceActiveSessionModel{
			AttendanceActiveSessionClubID:            clubID,
			AttendanceActiveSessionSeasonID:          seasonID,
			AttendanceActiveSessionTrainingSessionID: trainingSessionID,
		}
		if err := tx.Create(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrSessionAlreadyOpen
			}
			return err
		}
		out = &sess
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Abandon menutup jendela TANPA agregasi: hapus dulu semua record live
// (referential cleanup), lalu hapus sesi aktif. is_aggregated tetap false,
// jadwal bisa dibuka lagi. Data kehadiran sesi ini hilang — path ini
// harus dibedakan dari close di UI.
func (s *SessionLifecycleService) Abandon(clubID, activeSessionID uuid.UUID) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("live_attendance_record_active_session_id = ? AND live_attendance_record_club_id = ?", activeSessionID, clubID).
			Delete(&model.LiveAttendanceRecordModel{}).Error; err != nil {
			return err
		}

		res := tx.
			Where("attendance_active_session_id = ? AND attendance_active_session_club_id = ?", activeSessionID, clubID).
			Delete(&model.AttendanceActiveSessionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSessionNotFound
		}
		return nil
	})
}

// Get satu sesi aktif (scoped klub).
func (s *SessionLifecycleService) Get(clubID, activeSessionID uuid.UUID) (*model.AttendanceActiveSessionModel, error) {
	var sess model.AttendanceActiveSessionModel
	err := s.DB.
		Where("attendance_active_session_id = ? AND attendance_active_session_club_id = ?", activeSessionID, clubID).
		Take(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// ListOpen semua jendela yang sedang terbuka milik klub.
func (s *SessionLifecycleService) ListOpen(clubID uuid.UUID) ([]model.AttendanceActiveSessionModel, error) {
	var sessions []model.AttendanceActiveSessionModel
	err := s.DB.
		Where("attendance_active_session_club_id = ?", clubID).
		Order("attendance_active_session_created_at DESC").
		Find(&sessions).Error
	return sessions, err
}
