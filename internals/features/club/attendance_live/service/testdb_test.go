package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"klubku_backend/internals/features/club/attendance_live/model"
	membermodel "klubku_backend/internals/features/club/members/model"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"
)

// openTestDB: sqlite in-memory, satu koneksi supaya ":memory:" tidak
// terpecah antar pool conn. TranslateError aktif seperti di production
// (unique violation → gorm.ErrDuplicatedKey).
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&membermodel.MemberModel{},
		&tsmodel.TrainingSessionModel{},
		&model.AttendanceActiveSessionModel{},
		&model.LiveAttendanceRecordModel{},
	))
	return db
}

type liveFixture struct {
	db       *gorm.DB
	clubID   uuid.UUID
	teamID   uuid.UUID
	seasonID uuid.UUID
	ts       tsmodel.TrainingSessionModel
	sess     model.AttendanceActiveSessionModel
}

// newLiveFixture: satu jadwal latihan + jendela check-in terbuka.
func newLiveFixture(t *testing.T) *liveFixture {
	t.Helper()

	f := &liveFixture{
		db:       openTestDB(t),
		clubID:   uuid.New(),
		teamID:   uuid.New(),
		seasonID: uuid.New(),
	}

	f.ts = tsmodel.TrainingSessionModel{
		TrainingSessionClubID:    f.clubID,
		TrainingSessionTeamID:    f.teamID,
		TrainingSessionSeasonID:  f.seasonID,
		TrainingSessionDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TrainingSessionStartTime: "18:00:00",
		TrainingSessionEndTime:   "20:00:00",
	}
	require.NoError(t, f.db.Create(&f.ts).Error)

	f.sess = model.AttendanceActiveSessionModel{
		AttendanceActiveSessionClubID:            f.clubID,
		AttendanceActiveSessionSeasonID:          f.seasonID,
		AttendanceActiveSessionTrainingSessionID: f.ts.TrainingSessionID,
	}
	require.NoError(t, f.db.Create(&f.sess).Error)
	return f
}

func ptr(s string) *string { return &s }
