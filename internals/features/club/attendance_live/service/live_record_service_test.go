package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klubku_backend/internals/features/club/attendance_live/model"
)

func TestCreateDuplicateCheckInConflict(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)
	memberID := uuid.New()

	rec, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, memberID,
		model.StatusPresent, model.CheckInSelf, ptr("18:05:00"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.LiveAttendanceRecordID)

	// create kedua utk (sesi, anggota) yang sama harus mentok di unique index
	_, err = svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, memberID,
		model.StatusLate, model.CheckInSelf, ptr("18:30:00"))
	assert.ErrorIs(t, err, ErrAlreadyCheckedIn)

	var count int64
	require.NoError(t, f.db.Model(&model.LiveAttendanceRecordModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateTenantFailClosed(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	// club id lain → sesi dianggap tidak ada, bukan forbidden
	_, err := svc.Create(uuid.New(), f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, model.CheckInSelf, nil)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCreateAfterSessionClosedLeavesNoRecord(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	// sesi sudah ditutup (baris sesi aktif hilang) → check-in ditolak
	// dan tidak ada baris yatim yang menunjuk sesi yang sudah tidak ada
	require.NoError(t, f.db.Delete(&model.AttendanceActiveSessionModel{},
		"attendance_active_session_id = ?", f.sess.AttendanceActiveSessionID).Error)

	_, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, model.CheckInSelf, ptr("18:05:00"))
	assert.ErrorIs(t, err, ErrSessionNotFound)

	var count int64
	require.NoError(t, f.db.Model(&model.LiveAttendanceRecordModel{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestCreateRejectsInvalidEnums(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	_, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		"HADIR", model.CheckInSelf, nil)
	assert.Error(t, err)

	_, err = svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, "KIOSK", nil)
	assert.Error(t, err)
}

func TestUpdateStatusDefaultsToInstructor(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	rec, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, model.CheckInSelf, ptr("18:05:00"))
	require.NoError(t, err)

	// edit status tanpa check_in_type → atribusi pindah ke INSTRUCTOR
	out, err := svc.Update(f.clubID, rec.LiveAttendanceRecordID, UpdateFields{
		Status: ptr(model.StatusAbsent),
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAbsent, out.LiveAttendanceRecordStatus)
	assert.Equal(t, model.CheckInInstructor, out.LiveAttendanceRecordCheckInType)
	// jam check-in tidak disentuh kalau tidak diminta
	require.NotNil(t, out.LiveAttendanceRecordCheckInTime)
	assert.Equal(t, "18:05:00", *out.LiveAttendanceRecordCheckInTime)
}

func TestUpdateClearCheckInTime(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	rec, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusLate, model.CheckInSelf, ptr("18:25:00"))
	require.NoError(t, err)

	out, err := svc.Update(f.clubID, rec.LiveAttendanceRecordID, UpdateFields{
		ClearCheckInTime: true,
	})
	require.NoError(t, err)
	assert.Nil(t, out.LiveAttendanceRecordCheckInTime)
}

func TestUpdateRejectsBadClock(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	rec, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, model.CheckInSelf, nil)
	require.NoError(t, err)

	_, err = svc.Update(f.clubID, rec.LiveAttendanceRecordID, UpdateFields{
		CheckInTime: ptr("25:00"),
	})
	assert.Error(t, err)
}

func TestUpdateAndDeleteNotFoundAcrossTenant(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	rec, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, uuid.New(),
		model.StatusPresent, model.CheckInSelf, nil)
	require.NoError(t, err)

	otherClub := uuid.New()
	_, err = svc.Update(otherClub, rec.LiveAttendanceRecordID, UpdateFields{Status: ptr(model.StatusLate)})
	assert.ErrorIs(t, err, ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(otherClub, rec.LiveAttendanceRecordID), ErrRecordNotFound)
	assert.NoError(t, svc.Delete(f.clubID, rec.LiveAttendanceRecordID))
}

func TestBulkUpsertBranches(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	checkedIn := uuid.New() // sudah check-in sendiri, akan di-revert
	edited := uuid.New()    // sudah check-in, status dikoreksi instruktur
	created := uuid.New()   // belum ada record, instruktur menandai absen
	untouched := uuid.New() // belum ada record, status nil → tetap tidak ada

	_, err := svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, checkedIn,
		model.StatusPresent, model.CheckInSelf, ptr("18:03:00"))
	require.NoError(t, err)
	_, err = svc.Create(f.clubID, f.sess.AttendanceActiveSessionID, edited,
		model.StatusLate, model.CheckInSelf, ptr("18:20:00"))
	require.NoError(t, err)

	entries := []BulkEntry{
		{MemberID: checkedIn, Status: nil},
		{MemberID: edited, Status: ptr(model.StatusPresent)},
		{MemberID: created, Status: ptr(model.StatusAbsent)},
		{MemberID: untouched, Status: nil},
	}
	out, err := svc.BulkUpsert(f.clubID, f.sess.AttendanceActiveSessionID, entries)
	require.NoError(t, err)
	assert.Len(t, out, 2) // hanya edited + created yang menghasilkan record

	recs, err := svc.ListBySession(f.clubID, f.sess.AttendanceActiveSessionID)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	byMember := map[uuid.UUID]model.LiveAttendanceRecordModel{}
	for _, r := range recs {
		byMember[r.LiveAttendanceRecordMemberID] = r
	}

	_, stillThere := byMember[checkedIn]
	assert.False(t, stillThere, "revert harus delete record, bukan nullify")

	assert.Equal(t, model.StatusPresent, byMember[edited].LiveAttendanceRecordStatus)
	assert.Equal(t, model.CheckInInstructor, byMember[edited].LiveAttendanceRecordCheckInType)

	assert.Equal(t, model.StatusAbsent, byMember[created].LiveAttendanceRecordStatus)
	assert.Equal(t, model.CheckInInstructor, byMember[created].LiveAttendanceRecordCheckInType)
	assert.Nil(t, byMember[created].LiveAttendanceRecordCheckInTime)
}

func TestBulkUpsertIdempotent(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	a, b := uuid.New(), uuid.New()
	entries := []BulkEntry{
		{MemberID: a, Status: ptr(model.StatusPresent)},
		{MemberID: b, Status: nil},
	}

	// daftar yang sama dua kali → state akhir identik
	for i := 0; i < 2; i++ {
		_, err := svc.BulkUpsert(f.clubID, f.sess.AttendanceActiveSessionID, entries)
		require.NoError(t, err)
	}

	recs, err := svc.ListBySession(f.clubID, f.sess.AttendanceActiveSessionID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, a, recs[0].LiveAttendanceRecordMemberID)
	assert.Equal(t, model.StatusPresent, recs[0].LiveAttendanceRecordStatus)
}

func TestBulkUpsertUnknownSession(t *testing.T) {
	f := newLiveFixture(t)
	svc := NewLiveRecordService(f.db)

	_, err := svc.BulkUpsert(f.clubID, uuid.New(), []BulkEntry{
		{MemberID: uuid.New(), Status: ptr(model.StatusPresent)},
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
