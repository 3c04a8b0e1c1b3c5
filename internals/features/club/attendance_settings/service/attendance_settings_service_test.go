package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"klubku_backend/internals/configs"
	"klubku_backend/internals/features/club/attendance_settings/model"
)

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

	require.NoError(t, db.AutoMigrate(&model.AttendanceSettingModel{}))
	return db
}

func TestGetSettingsDefaultsWhenUnset(t *testing.T) {
	svc := New(openTestDB(t))

	got, err := svc.GetSettings(uuid.New(), nil)
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultLateThresholdMin, got.LateThresholdMin)
	assert.Equal(t, model.CheckInModePIN, got.CheckInMode)
	assert.Equal(t, configs.DefaultClubTimezone, got.Timezone)
}

func TestUpsertSettingsSingleRowPerClub(t *testing.T) {
	svc := New(openTestDB(t))
	clubID := uuid.New()

	_, err := svc.UpsertSettings(clubID, Setting{LateThresholdMin: 5, CheckInMode: model.CheckInModePIN})
	require.NoError(t, err)

	// upsert kedua meng-update baris yang sama, bukan duplikat
	out, err := svc.UpsertSettings(clubID, Setting{
		LateThresholdMin: 20,
		CheckInMode:      model.CheckInModeFace,
		Timezone:         "America/Sao_Paulo",
	})
	require.NoError(t, err)
	assert.Equal(t, 20, out.AttendanceSettingLateThresholdMin)
	assert.Equal(t, model.CheckInModeFace, out.AttendanceSettingCheckInMode)
	assert.Equal(t, "America/Sao_Paulo", out.AttendanceSettingTimezone)

	var count int64
	require.NoError(t, svc.DB.Model(&model.AttendanceSettingModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	got, err := svc.GetSettings(clubID, nil)
	require.NoError(t, err)
	assert.Equal(t, 20, got.LateThresholdMin)
	assert.Equal(t, model.CheckInModeFace, got.CheckInMode)
	assert.Equal(t, "America/Sao_Paulo", got.Timezone)
}

func TestUpsertSettingsRejectsUnknownTimezone(t *testing.T) {
	svc := New(openTestDB(t))

	_, err := svc.UpsertSettings(uuid.New(), Setting{Timezone: "Mars/Olympus_Mons"})
	assert.Error(t, err)
}

func TestUpsertSettingsNormalizesInvalidValues(t *testing.T) {
	svc := New(openTestDB(t))
	clubID := uuid.New()

	out, err := svc.UpsertSettings(clubID, Setting{LateThresholdMin: 0, CheckInMode: ""})
	require.NoError(t, err)
	assert.Equal(t, configs.DefaultLateThresholdMin, out.AttendanceSettingLateThresholdMin)
	assert.Equal(t, model.CheckInModePIN, out.AttendanceSettingCheckInMode)
	assert.Equal(t, configs.DefaultClubTimezone, out.AttendanceSettingTimezone)
}
