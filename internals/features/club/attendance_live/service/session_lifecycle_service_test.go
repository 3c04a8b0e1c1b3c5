package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/attendance_live/model"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"
)

func createSchedule(t *testing.T, db *gorm.DB, clubID, teamID, seasonID uuid.UUID) tsmodel.TrainingSessionModel {
	t.Helper()
	ts := tsmodel.TrainingSessionModel{
		TrainingSessionClubID:    clubID,
		TrainingSessionTeamID:    teamID,
		TrainingSessionSeasonID:  seasonID,
		TrainingSessionDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TrainingSessionStartTime: "18:00:00",
		TrainingSessionEndTime:   "20:00:00",
	}
	require.NoError(t, db.Create(&ts).Error)
	return ts
}

func TestOpenSecondWindowConflicts(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionLifecycleService(db)
	clubID, seasonID := uuid.New(), uuid.New()
	ts := createSchedule(t, db, clubID, uuid.New(), seasonID)

	sess, err := svc.Open(clubID, ts.TrainingSessionID, seasonID)
	require.NoError(t, err)
	assert.Equal(t, ts.TrainingSessionID, sess.AttendanceActiveSessionTrainingSessionID)

	_, err = svc.Open(clubID, ts.TrainingSessionID, seasonID)
	assert.ErrorIs(t, err, ErrSessionAlreadyOpen)
}

func TestOpenUnknownOrForeignSchedule(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionLifecycleService(db)
	clubID := uuid.New()
	ts := createSchedule(t, db, clubID, uuid.New(), uuid.New())

	_, err := svc.Open(clubID, uuid.New(), uuid.Nil)
	assert.ErrorIs(t, err, ErrTrainingSessionNotFound)

	// jadwal klub lain berperilaku sama dengan tidak ada
	_, err = svc.Open(uuid.New(), ts.TrainingSessionID, uuid.Nil)
	assert.ErrorIs(t, err, ErrTrainingSessionNotFound)
}

func TestOpenAggregatedScheduleRejected(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionLifecycleService(db)
	clubID := uuid.New()
	ts := createSchedule(t, db, clubID, uuid.New(), uuid.New())

	require.NoError(t, db.Model(&tsmodel.TrainingSessionModel{}).
		Where("training_session_id = ?", ts.TrainingSessionID).
		Update("training_session_is_aggregated", true).Error)

	_, err := svc.Open(clubID, ts.TrainingSessionID, uuid.Nil)
	assert.ErrorIs(t, err, ErrSessionAggregated)
}

func TestOpenSeasonFallsBackToSchedule(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionLifecycleService(db)
	clubID, seasonID := uuid.New(), uuid.New()
	ts := createSchedule(t, db, clubID, uuid.New(), seasonID)

	sess, err := svc.Open(clubID, ts.TrainingSessionID, uuid.Nil)
	require.NoError(t, err)
	assert.Equal(t, seasonID, sess.AttendanceActiveSessionSeasonID)
}

func TestAbandonDiscardsAndAllowsReopen(t *testing.T) {
	db := openTestDB(t)
	lifecycle := NewSessionLifecycleService(db)
	records := NewLiveRecordService(db)
	clubID, seasonID := uuid.New(), uuid.New()
	ts := createSchedule(t, db, clubID, uuid.New(), seasonID)

	sess, err := lifecycle.Open(clubID, ts.TrainingSessionID, seasonID)
	require.NoError(t, err)
	_, err = records.Create(clubID, sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, model.CheckInSelf, ptr("18:02:00"))
	require.NoError(t, err)

	require.NoError(t, lifecycle.Abandon(clubID, sess.AttendanceActiveSessionID))

	var recCount int64
	require.NoError(t, db.Model(&model.LiveAttendanceRecordModel{}).Count(&recCount).Error)
	assert.EqualValues(t, 0, recCount, "abandon buang semua record live")

	var fresh tsmodel.TrainingSessionModel
	require.NoError(t, db.Where("training_session_id = ?", ts.TrainingSessionID).Take(&fresh).Error)
	assert.False(t, fresh.TrainingSessionIsAggregated, "abandon tidak boleh menandai agregasi")

	// jadwal bisa dibuka lagi setelah abandon
	_, err = lifecycle.Open(clubID, ts.TrainingSessionID, seasonID)
	assert.NoError(t, err)

	// abandon kedua: sesi sudah tidak ada dengan id lama
	assert.ErrorIs(t, lifecycle.Abandon(clubID, sess.AttendanceActiveSessionID), ErrSessionNotFound)
}

func TestGetAndListOpenScoped(t *testing.T) {
	db := openTestDB(t)
	svc := NewSessionLifecycleService(db)
	clubID, seasonID := uuid.New(), uuid.New()
	ts := createSchedule(t, db, clubID, uuid.New(), seasonID)

	sess, err := svc.Open(clubID, ts.TrainingSessionID, seasonID)
	require.NoError(t, err)

	got, err := svc.Get(clubID, sess.AttendanceActiveSessionID)
	require.NoError(t, err)
	assert.Equal(t, sess.AttendanceActiveSessionID, got.AttendanceActiveSessionID)

	_, err = svc.Get(uuid.New(), sess.AttendanceActiveSessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	list, err := svc.ListOpen(clubID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	list, err = svc.ListOpen(uuid.New())
	require.NoError(t, err)
	assert.Empty(t, list)
}
