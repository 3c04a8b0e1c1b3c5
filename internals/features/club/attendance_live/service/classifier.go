package service

import (
	"fmt"
	"strconv"
	"strings"

	"klubku_backend/internals/features/club/attendance_live/model"
)

// ParseClock membaca jam dinding "HH:MM" atau "HH:MM:SS" → menit sejak 00:00.
// Detik diabaikan (selisih dihitung dalam menit, konsisten dgn threshold menit).
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("format jam tidak valid: %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("jam tidak valid: %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("menit tidak valid: %q", s)
	}
	if len(parts) == 3 {
		sec, err := strconv.Atoi(parts[2])
		if err != nil || sec < 0 || sec > 59 {
			return 0, fmt.Errorf("detik tidak valid: %q", s)
		}
	}
	return h*60 + m, nil
}

// Classify menentukan PRESENT vs LATE dari jam mulai sesi vs jam check-in.
// diff <= threshold → PRESENT (batas tepat threshold masih PRESENT).
// ABSENT bukan urusan fungsi ini: itu keputusan saat close, bukan per check-in.
func Classify(startTime, checkInTime string, lateThresholdMin int) (string, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return "", err
	}
	checkIn, err := ParseClock(checkInTime)
	if err != nil {
		return "", err
	}
	if checkIn-start <= lateThresholdMin {
		return model.StatusPresent, nil
	}
	return model.StatusLate, nil
}
