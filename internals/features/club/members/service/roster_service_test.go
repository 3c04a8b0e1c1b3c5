package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"klubku_backend/internals/features/club/members/model"
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

	require.NoError(t, db.AutoMigrate(&model.MemberModel{}))
	return db
}

func seedMember(t *testing.T, db *gorm.DB, clubID, teamID uuid.UUID, name, pin string, active bool) model.MemberModel {
	t.Helper()
	m := model.MemberModel{
		MemberClubID:   clubID,
		MemberTeamID:   teamID,
		MemberFullName: name,
		MemberIsActive: active,
	}
	if pin != "" {
		hash, err := HashPIN(pin)
		require.NoError(t, err)
		m.MemberPinHash = &hash
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func TestEligibleMembersExcludesInactive(t *testing.T) {
	db := openTestDB(t)
	svc := NewRosterService(db)
	clubID, teamID := uuid.New(), uuid.New()

	active := seedMember(t, db, clubID, teamID, "Andi", "1111", true)
	seedMember(t, db, clubID, teamID, "Budi", "2222", false)
	seedMember(t, db, clubID, uuid.New(), "Citra", "3333", true) // tim lain

	ids, err := svc.EligibleMemberIDs(nil, clubID, teamID)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, active.MemberID, ids[0])
}

func TestResolvePIN(t *testing.T) {
	db := openTestDB(t)
	svc := NewRosterService(db)
	clubID, teamID := uuid.New(), uuid.New()

	andi := seedMember(t, db, clubID, teamID, "Andi", "1111", true)
	seedMember(t, db, clubID, teamID, "Budi", "2222", true)
	seedMember(t, db, clubID, teamID, "Dewi", "", true) // tanpa PIN

	got, err := svc.ResolvePIN(nil, clubID, teamID, "1111")
	require.NoError(t, err)
	assert.Equal(t, andi.MemberID, got.MemberID)

	_, err = svc.ResolvePIN(nil, clubID, teamID, "9999")
	assert.ErrorIs(t, err, ErrMemberNotFound)

	// PIN valid tapi tim lain → tidak resolve lintas roster
	_, err = svc.ResolvePIN(nil, clubID, uuid.New(), "1111")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestResolvePINSkipsInactive(t *testing.T) {
	db := openTestDB(t)
	svc := NewRosterService(db)
	clubID, teamID := uuid.New(), uuid.New()

	seedMember(t, db, clubID, teamID, "Budi", "2222", false)

	_, err := svc.ResolvePIN(nil, clubID, teamID, "2222")
	assert.ErrorIs(t, err, ErrMemberNotFound)
}
