package seeds

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	settingmodel "klubku_backend/internals/features/club/attendance_settings/model"
	membermodel "klubku_backend/internals/features/club/members/model"
	membersvc "klubku_backend/internals/features/club/members/service"
	tsmodel "klubku_backend/internals/features/club/training_sessions/model"
)

// RunDemo mengisi data demo: satu klub, satu tim, roster dengan PIN kiosk
// (hash bcrypt), settings, dan satu jadwal latihan siap dibuka.
func RunDemo(db *gorm.DB) error {
	clubID := uuid.New()
	teamID := uuid.New()
	seasonID := uuid.New()

	log.Printf("🌱 Seeding demo club %s", clubID)

	setting := settingmodel.AttendanceSettingModel{
		AttendanceSettingClubID:           clubID,
		AttendanceSettingLateThresholdMin: 15,
		AttendanceSettingCheckInMode:      settingmodel.CheckInModePIN,
	}
	if err := db.Create(&setting).Error; err != nil {
		return err
	}

	members := []struct {
		name string
		pin  string
	}{
		{"Andi Wijaya", "1111"},
		{"Budi Santoso", "2222"},
		{"Citra Lestari", "3333"},
		{"Dewi Anggraini", "4444"},
	}
	for _, m := range members {
		hash, err := membersvc.HashPIN(m.pin)
		if err != nil {
			return err
		}
		rec := membermodel.MemberModel{
			MemberClubID:   clubID,
			MemberTeamID:   teamID,
			MemberFullName: m.name,
			MemberPinHash:  &hash,
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
		log.Printf("   👤 %s (PIN %s)", m.name, m.pin)
	}

	location := "Lapangan Utama"
	session := tsmodel.TrainingSessionModel{
		TrainingSessionClubID:    clubID,
		TrainingSessionTeamID:    teamID,
		TrainingSessionSeasonID:  seasonID,
		TrainingSessionDate:      time.Now().AddDate(0, 0, 1),
		TrainingSessionStartTime: "18:00:00",
		TrainingSessionEndTime:   "20:00:00",
		TrainingSessionLocation:  &location,
	}
	if err := db.Create(&session).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeder selesai. club_id=%s team_id=%s season_id=%s", clubID, teamID, seasonID)
	return nil
}
