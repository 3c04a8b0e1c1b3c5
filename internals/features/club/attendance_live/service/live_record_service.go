package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_live/model"
)

var (
	ErrSessionNotFound  = errors.New("sesi aktif tidak ditemukan")
	ErrRecordNotFound   = errors.New("entri kehadiran tidak ditemukan")
	ErrAlreadyCheckedIn = errors.New("anggota sudah check-in di sesi ini")
)

// LiveRecordService = CRUD + bulk upsert baris kehadiran live.
// Semua operasi tenant-scoped: filter club id di samping primary key,
// id milik klub lain berperilaku sebagai not-found.
type LiveRecordService struct {
	DB *gorm.DB
}

func NewLiveRecordService(db *gorm.DB) *LiveRecordService { return &LiveRecordService{DB: db} }

func (s *LiveRecordService) dbOr(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.DB
}

// findActiveSession memastikan sesi aktif milik klub (fail-closed).
func (s *LiveRecordService) findActiveSession(tx *gorm.DB, clubID, sessionID uuid.UUID) (*model.AttendanceActiveSessionModel, error) {
	var sess model.AttendanceActiveSessionModel
	err := s.dbOr(tx).
		Where("attendance_active_session_id = ? AND attendance_active_session_club_id = ?", sessionID, clubID).
		Take(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

// Create satu entri kehadiran. Duplikat (sesi, anggota) → ErrAlreadyCheckedIn
// lewat unique index, bukan cek-dulu-baru-insert.
func (s *LiveRecordService) Create(
	clubID, sessionID, memberID uuid.UUID,
	status, checkInType string,
	checkInTime *string,
) (*model.LiveAttendanceRecordModel, error) {
	if !model.IsValidStatus(status) {
		return nil, fmt.Errorf("status tidak valid: %q", status)
	}
	if !model.IsValidCheckInType(checkInType) {
		return nil, fmt.Errorf("check_in_type tidak valid: %q", checkInType)
	}
	var rec model.LiveAttendanceRecordModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.findActiveSession(tx, clubID, sessionID); err != nil {
			return err
		}

		rec = model.LiveAttendanceRecordModel{
			LiveAttendanceRecordClubID:          clubID,
			LiveAttendanceRecordActiveSessionID: sessionID,
			LiveAttendanceRecordMemberID:        memberID,
			LiveAttendanceRecordCheckInTime:     checkInTime,
			LiveAttendanceRecordStatus:          status,
			LiveAttendanceRecordCheckInType:     checkInType,
		}
		if err := tx.Create(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyCheckedIn
			}
			return err
		}

		// re-cek sesudah insert: close() menghapus baris sesi sebagai langkah
		// pertamanya, jadi check-in yang menyalip close yang sudah commit
		// di-rollback di sini dan tidak meninggalkan record yatim. Close yang
		// baru commit SETELAH re-cek ini masih bisa lolos di sela commit kami —
		// jendela sisa itu mengecil ke satu round-trip.
		if _, err := s.findActiveSession(tx, clubID, sessionID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// UpdateFields = partial update; field nil tidak disentuh.
type UpdateFields struct {
	Status      *string
	CheckInTime *string
	CheckInType *string
	// ClearCheckInTime: set check_in_time ke NULL secara eksplisit
	ClearCheckInTime bool
}

// Update partial merge. Kalau status diubah tanpa check_in_type,
// check_in_type dipaksa INSTRUCTOR: edit manual tidak pernah diatribusikan
// ke anggota sendiri.
func (s *LiveRecordService) Update(clubID, recordID uuid.UUID, in UpdateFields) (*model.LiveAttendanceRecordModel, error) {
	updates := map[string]any{}
	if in.Status != nil {
		if !model.IsValidStatus(*in.Status) {
			return nil, fmt.Errorf("status tidak valid: %q", *in.Status)
		}
		updates["live_attendance_record_status"] = *in.Status
		if in.CheckInType == nil {
			updates["live_attendance_record_check_in_type"] = model.CheckInInstructor
		}
	}
	if in.CheckInType != nil {
		if !model.IsValidCheckInType(*in.CheckInType) {
			return nil, fmt.Errorf("check_in_type tidak valid: %q", *in.CheckInType)
		}
		updates["live_attendance_record_check_in_type"] = *in.CheckInType
	}
	if in.CheckInTime != nil {
		if _, err := ParseClock(*in.CheckInTime); err != nil {
			return nil, err
		}
		updates["live_attendance_record_check_in_time"] = *in.CheckInTime
	} else if in.ClearCheckInTime {
		updates["live_attendance_record_check_in_time"] = gorm.Expr("NULL")
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("tidak ada field yang diubah")
	}

	res := s.DB.Model(&model.LiveAttendanceRecordModel{}).
		Where("live_attendance_record_id = ? AND live_attendance_record_club_id = ?", recordID, clubID).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}

	var out model.LiveAttendanceRecordModel
	if err := s.DB.
		Where("live_attendance_record_id = ? AND live_attendance_record_club_id = ?", recordID, clubID).
		Take(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkEntry: status nil artinya "kembalikan ke belum check-in".
type BulkEntry struct {
	MemberID uuid.UUID
	Status   *string
}

// BulkUpsert = aturan resolusi edit manual instruktur, per entri:
//   - status nil  & record ada    → delete (revert ke belum check-in)
//   - status nil  & record tidak  → no-op
//   - status isi  & record tidak  → create (INSTRUCTOR, tanpa jam)
//   - status isi  & record ada    → update status (INSTRUCTOR)
//
// Idempotent: daftar yang sama diterapkan dua kali menghasilkan state akhir sama.
func (s *LiveRecordService) BulkUpsert(clubID, sessionID uuid.UUID, entries []BulkEntry) ([]model.LiveAttendanceRecordModel, error) {
	for _, e := range entries {
		if e.Status != nil && !model.IsValidStatus(*e.Status) {
			return nil, fmt.Errorf("status tidak valid: %q", *e.Status)
		}
	}

	var out []model.LiveAttendanceRecordModel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.findActiveSession(tx, clubID, sessionID); err != nil {
			return err
		}

		for _, e := range entries {
			var existing model.LiveAttendanceRecordModel
			err := tx.
				Where("live_attendance_record_active_session_id = ? AND live_attendance_record_member_id = ? AND live_attendance_record_club_id = ?",
					sessionID, e.MemberID, clubID).
				Take(&existing).Error
			found := err == nil
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			switch {
			case e.Status == nil && found:
				if err := tx.Delete(&model.LiveAttendanceRecordModel{},
					"live_attendance_record_id = ?", existing.LiveAttendanceRecordID).Error; err != nil {
					return err
				}
			case e.Status == nil && !found:
				// no-op: tidak ada yang di-revert
			case e.Status != nil && !found:
				rec := model.LiveAttendanceRecordModel{
					LiveAttendanceRecordClubID:          clubID,
					LiveAttendanceRecordActiveSessionID: sessionID,
					LiveAttendanceRecordMemberID:        e.MemberID,
					LiveAttendanceRecordStatus:          *e.Status,
					LiveAttendanceRecordCheckInType:     model.CheckInInstructor,
				}
				if err := tx.Create(&rec).Error; err != nil {
					return err
				}
				out = append(out, rec)
			default: // status != nil && found
				if err := tx.Model(&model.LiveAttendanceRecordModel{}).
					Where("live_attendance_record_id = ?", existing.LiveAttendanceRecordID).
					Updates(map[string]any{
						"live_attendance_record_status":        *e.Status,
						"live_attendance_record_check_in_type": model.CheckInInstructor,
					}).Error; err != nil {
					return err
				}
				existing.LiveAttendanceRecordStatus = *e.Status
				existing.LiveAttendanceRecordCheckInType = model.CheckInInstructor
				out = append(out, existing)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *LiveRecordService) Delete(clubID, recordID uuid.UUID) error {
	res := s.DB.
		Where("live_attendance_record_id = ? AND live_attendance_record_club_id = ?", recordID, clubID).
		Delete(&model.LiveAttendanceRecordModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (s *LiveRecordService) ListBySession(clubID, sessionID uuid.UUID) ([]model.LiveAttendanceRecordModel, error) {
	var recs []model.LiveAttendanceRecordModel
	err := s.DB.
		Where("live_attendance_record_active_session_id = ? AND live_attendance_record_club_id = ?", sessionID, clubID).
		Order("live_attendance_record_created_at ASC").
		Find(&recs).Error
	return recs, err
}
