package service

import (
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	livemodel "klubku_backend/internals/features/club/attendance_live/model"
	membersvc "klubku_backend/internals/features/club/members/service"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"

	"klubku_backend/internals/features/club/attendance_stats/model"
)

var ErrAggregationFailed = errors.New("agregasi attendance gagal")

// ekspresi SQL recompute rate, portable postgres/sqlite
const memberRateExpr = `CASE
	WHEN (member_attendance_stat_on_time_count + member_attendance_stat_late_count + member_attendance_stat_absent_count) = 0 THEN 0
	ELSE CAST(ROUND((member_attendance_stat_on_time_count + member_attendance_stat_late_count) * 100.0
		/ (member_attendance_stat_on_time_count + member_attendance_stat_late_count + member_attendance_stat_absent_count)) AS INTEGER)
END`

const teamRateExpr = `CASE
	WHEN (team_attendance_stat_on_time_count + team_attendance_stat_late_count + team_attendance_stat_absent_count) = 0 THEN 0
	ELSE CAST(ROUND((team_attendance_stat_on_time_count + team_attendance_stat_late_count) * 100.0
		/ (team_attendance_stat_on_time_count + team_attendance_stat_late_count + team_attendance_stat_absent_count)) AS INTEGER)
END`

// AggregationService menjalankan prosedur tutup-sesi: lipat semua record live
// (plus anggota yang tidak pernah check-in) jadi counter permanen per anggota
// dan per tim, lalu hapus state transien. SATU transaksi; langkah pertama yang
// menulis adalah delete baris sesi aktif — itu commit gate-nya: close kedua yang
// balapan akan menunggu lock baris, lihat 0 rows, dan no-op tanpa double count.
type AggregationService struct {
	DB     *gorm.DB
	roster *membersvc.RosterService
}

func NewAggregationService(db *gorm.DB) *AggregationService {
	return &AggregationService{DB: db, roster: membersvc.NewRosterService(db)}
}

type CloseSummary struct {
	ActiveSessionID   uuid.UUID `json:"active_session_id"`
	TrainingSessionID uuid.UUID `json:"training_session_id,omitempty"`
	OnTime            int       `json:"on_time"`
	Late              int       `json:"late"`
	Absent            int       `json:"absent"`
	AlreadyClosed     bool      `json:"already_closed"`
}

// AggregateAndCleanup: notCheckedIn nil → himpunan absen diturunkan sendiri
// dari roster minus record live, di dalam transaksi (hindari stale client state).
// Slice kosong non-nil dipercaya apa adanya (caller bilang tidak ada yg absen).
func (s *AggregationService) AggregateAndCleanup(
	clubID, activeSessionID uuid.UUID,
	notCheckedIn []uuid.UUID,
) (*CloseSummary, error) {
	sum := &CloseSummary{ActiveSessionID: activeSessionID}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// 0) baca sesi aktif (scoped klub)
		var sess livemodel.AttendanceActiveSessionModel
		err := tx.
			Where("attendance_active_session_id = ? AND attendance_active_session_club_id = ?", activeSessionID, clubID).
			Take(&sess).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			sum.AlreadyClosed = true
			return nil
		}
		if err != nil {
			return err
		}

		// 1) COMMIT GATE: hapus baris sesi aktif. 0 rows = close lain menang.
		res := tx.
			Where("attendance_active_session_id = ? AND attendance_active_session_club_id = ?", activeSessionID, clubID).
			Delete(&livemodel.AttendanceActiveSessionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			sum.AlreadyClosed = true
			return nil
		}

		// 2) jadwal asal (butuh team id + tanggal)
		var ts tsmodel.TrainingSessionModel
		if err := tx.
			Where("training_session_id = ? AND training_session_club_id = ?",
				sess.AttendanceActiveSessionTrainingSessionID, clubID).
			Take(&ts).Error; err != nil {
			return err
		}
		sum.TrainingSessionID = ts.TrainingSessionID
		sessionDate := ts.TrainingSessionDate.Format("2006-01-02")

		// 3) semua record live sesi ini
		var recs []livemodel.LiveAttendanceRecordModel
		if err := tx.
			Where("live_attendance_record_active_session_id = ? AND live_attendance_record_club_id = ?", activeSessionID, clubID).
			Find(&recs).Error; err != nil {
			return err
		}

		hasRecord := make(map[uuid.UUID]bool, len(recs))
		for _, r := range recs {
			hasRecord[r.LiveAttendanceRecordMemberID] = true
		}

		// himpunan absen: dari caller, atau diturunkan dari roster di tx yang sama
		if notCheckedIn == nil {
			ids, err := s.roster.EligibleMemberIDs(tx, clubID, ts.TrainingSessionTeamID)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if !hasRecord[id] {
					notCheckedIn = append(notCheckedIn, id)
				}
			}
		}

		// 4) delta per anggota: satu sesi = tepat satu kontribusi per anggota
		type memberDelta struct {
			onTime, late, absent int
			status               string
			checkInTime          *string
		}
		deltas := make(map[uuid.UUID]memberDelta, len(recs)+len(notCheckedIn))

		for _, r := range recs {
			d := memberDelta{checkInTime: r.LiveAttendanceRecordCheckInTime}
			switch r.LiveAttendanceRecordStatus {
			case livemodel.StatusPresent:
				d.onTime, d.status = 1, livemodel.StatusPresent
			case livemodel.StatusLate:
				d.late, d.status = 1, livemodel.StatusLate
			case livemodel.StatusAbsent:
				d.absent, d.status = 1, livemodel.StatusAbsent
			default:
				// PENDING saat close = tidak pernah terklasifikasi → absen
				d.absent, d.status = 1, livemodel.StatusAbsent
			}
			deltas[r.LiveAttendanceRecordMemberID] = d
		}
		for _, id := range notCheckedIn {
			if _, ok := deltas[id]; ok {
				continue // hanya id TANPA record yang dihitung absen
			}
			deltas[id] = memberDelta{absent: 1, status: livemodel.StatusAbsent}
		}

		// 5) bump stat per anggota + append history + recompute rate
		for memberID, d := range deltas {
			if err := bumpMemberStat(tx, clubID, memberID, ts.TrainingSessionTeamID,
				sess.AttendanceActiveSessionSeasonID, ts.TrainingSessionID, sessionDate, d.status, d.checkInTime,
				d.onTime, d.late, d.absent); err != nil {
				return err
			}
			sum.OnTime += d.onTime
			sum.Late += d.late
			sum.Absent += d.absent
		}

		// 6) rollup tim dengan semantik yang sama
		if err := bumpTeamStat(tx, clubID, ts.TrainingSessionTeamID,
			sess.AttendanceActiveSessionSeasonID, ts.TrainingSessionID, sessionDate,
			sum.OnTime, sum.Late, sum.Absent); err != nil {
			return err
		}

		// 7) hapus semua record live sesi ini
		if err := tx.
			Where("live_attendance_record_active_session_id = ? AND live_attendance_record_club_id = ?", activeSessionID, clubID).
			Delete(&livemodel.LiveAttendanceRecordModel{}).Error; err != nil {
			return err
		}

		// 8) tandai jadwal sudah diagregasi → tidak bisa dibuka ulang
		if err := tx.Model(&tsmodel.TrainingSessionModel{}).
			Where("training_session_id = ? AND training_session_club_id = ?", ts.TrainingSessionID, clubID).
			Update("training_session_is_aggregated", true).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sum, nil
}

func bumpMemberStat(
	tx *gorm.DB,
	clubID, memberID, teamID, seasonID, sessionID uuid.UUID,
	date, status string, checkInTime *string,
	dOnTime, dLate, dAbsent int,
) error {
	// pastikan baris ada (idempotent, unik via index komposit)
	seed := model.MemberAttendanceStatModel{
		MemberAttendanceStatClubID:   clubID,
		MemberAttendanceStatMemberID: memberID,
		MemberAttendanceStatTeamID:   teamID,
		MemberAttendanceStatSeasonID: seasonID,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "member_attendance_stat_club_id"},
			{Name: "member_attendance_stat_member_id"},
			{Name: "member_attendance_stat_team_id"},
			{Name: "member_attendance_stat_season_id"},
		},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return err
	}

	scope := tx.Model(&model.MemberAttendanceStatModel{}).
		Where("member_attendance_stat_club_id = ?", clubID).
		Where("member_attendance_stat_member_id = ?", memberID).
		Where("member_attendance_stat_team_id = ?", teamID).
		Where("member_attendance_stat_season_id = ?", seasonID)

	// bump counter; UPDATE ini sekaligus mengunci baris sampai commit
	if err := scope.Session(&gorm.Session{}).Updates(map[string]any{
		"member_attendance_stat_on_time_count":      gorm.Expr("member_attendance_stat_on_time_count + ?", dOnTime),
		"member_attendance_stat_late_count":         gorm.Expr("member_attendance_stat_late_count + ?", dLate),
		"member_attendance_stat_absent_count":       gorm.Expr("member_attendance_stat_absent_count + ?", dAbsent),
		"member_attendance_stat_last_aggregated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	}).Error; err != nil {
		return err
	}

	// append history (aman: baris sudah terkunci oleh UPDATE di atas)
	var cur model.MemberAttendanceStatModel
	if err := scope.Session(&gorm.Session{}).Take(&cur).Error; err != nil {
		return err
	}
	var hist []model.MemberHistoryEntry
	if len(cur.MemberAttendanceStatHistory) > 0 {
		if err := json.Unmarshal(cur.MemberAttendanceStatHistory, &hist); err != nil {
			return err
		}
	}
	hist = append(hist, model.MemberHistoryEntry{
		SessionID:   sessionID,
		Date:        date,
		Status:      status,
		CheckInTime: checkInTime,
	})
	b, err := json.Marshal(hist)
	if err != nil {
		return err
	}

	return scope.Session(&gorm.Session{}).Updates(map[string]any{
		"member_attendance_stat_history":         datatypes.JSON(b),
		"member_attendance_stat_attendance_rate": gorm.Expr(memberRateExpr),
	}).Error
}

func bumpTeamStat(
	tx *gorm.DB,
	clubID, teamID, seasonID, sessionID uuid.UUID,
	date string,
	dOnTime, dLate, dAbsent int,
) error {
	seed := model.TeamAttendanceStatModel{
		TeamAttendanceStatClubID:   clubID,
		TeamAttendanceStatTeamID:   teamID,
		TeamAttendanceStatSeasonID: seasonID,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "team_attendance_stat_club_id"},
			{Name: "team_attendance_stat_team_id"},
			{Name: "team_attendance_stat_season_id"},
		},
		DoNothing: true,
	}).Create(&seed).Error; err != nil {
		return err
	}

	scope := tx.Model(&model.TeamAttendanceStatModel{}).
		Where("team_attendance_stat_club_id = ?", clubID).
		Where("team_attendance_stat_team_id = ?", teamID).
		Where("team_attendance_stat_season_id = ?", seasonID)

	if err := scope.Session(&gorm.Session{}).Updates(map[string]any{
		"team_attendance_stat_on_time_count":      gorm.Expr("team_attendance_stat_on_time_count + ?", dOnTime),
		"team_attendance_stat_late_count":         gorm.Expr("team_attendance_stat_late_count + ?", dLate),
		"team_attendance_stat_absent_count":       gorm.Expr("team_attendance_stat_absent_count + ?", dAbsent),
		"team_attendance_stat_last_aggregated_at": gorm.Expr("CURRENT_TIMESTAMP"),
	}).Error; err != nil {
		return err
	}

	var cur model.TeamAttendanceStatModel
	if err := scope.Session(&gorm.Session{}).Take(&cur).Error; err != nil {
		return err
	}
	var hist []model.TeamHistoryEntry
	if len(cur.TeamAttendanceStatHistory) > 0 {
		if err := json.Unmarshal(cur.TeamAttendanceStatHistory, &hist); err != nil {
			return err
		}
	}
	hist = append(hist, model.TeamHistoryEntry{
		SessionID: sessionID,
		Date:      date,
		OnTime:    dOnTime,
		Late:      dLate,
		Absent:    dAbsent,
	})
	b, err := json.Marshal(hist)
	if err != nil {
		return err
	}

	return scope.Session(&gorm.Session{}).Updates(map[string]any{
		"team_attendance_stat_history":         datatypes.JSON(b),
		"team_attendance_stat_attendance_rate": gorm.Expr(teamRateExpr),
	}).Error
}
