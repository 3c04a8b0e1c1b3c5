package seeds

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	settingmodel "klubku_backend/internals/features/club/attendance_settings/model"
	membermodel "klubku_backend/internals/features/club/members/model"
	membersvc "klubku_backend/internals/features/club/members/service"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"
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

	require.NoError(t, db.AutoMigrate(
		&membermodel.MemberModel{},
		&tsmodel.TrainingSessionModel{},
		&settingmodel.AttendanceSettingModel{},
	))
	return db
}

func TestRunDemoSeedsUsableData(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunDemo(db))

	var members []membermodel.MemberModel
	require.NoError(t, db.Find(&members).Error)
	require.Len(t, members, 4)
	clubID, teamID := members[0].MemberClubID, members[0].MemberTeamID

	var setting settingmodel.AttendanceSettingModel
	require.NoError(t, db.Where("attendance_setting_club_id = ?", clubID).Take(&setting).Error)
	assert.Equal(t, settingmodel.CheckInModePIN, setting.AttendanceSettingCheckInMode)

	var ts tsmodel.TrainingSessionModel
	require.NoError(t, db.Where("training_session_club_id = ?", clubID).Take(&ts).Error)
	assert.False(t, ts.TrainingSessionIsAggregated)

	// PIN yang di-seed harus resolvable lewat jalur kiosk
	roster := membersvc.NewRosterService(db)
	got, err := roster.ResolvePIN(nil, clubID, teamID, "1111")
	require.NoError(t, err)
	assert.Equal(t, "Andi Wijaya", got.MemberFullName)
}
