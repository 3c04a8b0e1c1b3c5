package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"klubku_backend/internals/features/club/attendance_live/model"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"18:00", 18 * 60, false},
		{"18:00:00", 18 * 60, false},
		{"00:00", 0, false},
		{"23:59:59", 23*60 + 59, false},
		{" 08:30 ", 8*60 + 30, false},
		{"24:00", 0, true},
		{"18:60", 0, true},
		{"18:00:61", 0, true},
		{"18", 0, true},
		{"", 0, true},
		{"abc:def", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		checkIn   string
		threshold int
		want      string
	}{
		{"tepat waktu", "18:00", "18:00:00", 15, model.StatusPresent},
		{"dalam ambang", "18:00", "18:10:00", 15, model.StatusPresent},
		{"pas di ambang masih present", "18:00", "18:15:00", 15, model.StatusPresent},
		{"satu menit lewat ambang", "18:00", "18:16:00", 15, model.StatusLate},
		{"jauh telat", "18:00", "18:20:00", 15, model.StatusLate},
		{"datang lebih awal", "18:00", "17:45:00", 15, model.StatusPresent},
		{"ambang nol", "18:00", "18:01", 0, model.StatusLate},
		{"ambang nol tepat", "18:00", "18:00", 0, model.StatusPresent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Classify(tc.start, tc.checkIn, tc.threshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassifyInvalidInput(t *testing.T) {
	_, err := Classify("bukan jam", "18:00", 15)
	assert.Error(t, err)

	_, err = Classify("18:00", "99:99", 15)
	assert.Error(t, err)
}
