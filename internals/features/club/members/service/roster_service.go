package service

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"klubku_backend/internals/features/club/members/model"
)

var ErrMemberNotFound = errors.New("anggota tidak ditemukan")

// RosterService = penyedia roster: "siapa saja anggota eligible utk tim ini"
// dan resolusi PIN kiosk → member.
type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService { return &RosterService{DB: db} }

func (s *RosterService) dbOr(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return s.DB
}

// EligibleMembers: anggota aktif sebuah tim (scoped klub).
func (s *RosterService) EligibleMembers(tx *gorm.DB, clubID, teamID uuid.UUID) ([]model.MemberModel, error) {
	var members []model.MemberModel
	err := s.dbOr(tx).
		Where("member_club_id = ? AND member_team_id = ? AND member_is_active = ?", clubID, teamID, true).
		Find(&members).Error
	return members, err
}

// EligibleMemberIDs: varian id-only, dipakai agregasi utk hitung absen.
func (s *RosterService) EligibleMemberIDs(tx *gorm.DB, clubID, teamID uuid.UUID) ([]uuid.UUID, error) {
	members, err := s.EligibleMembers(tx, clubID, teamID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.MemberID)
	}
	return ids, nil
}

// ResolvePIN mencocokkan PIN kiosk terhadap roster tim (bcrypt compare).
// Keunikan PIN di dalam roster diasumsikan; yang cocok pertama menang.
func (s *RosterService) ResolvePIN(tx *gorm.DB, clubID, teamID uuid.UUID, pin string) (*model.MemberModel, error) {
	var members []model.MemberModel
	err := s.dbOr(tx).
		Where("member_club_id = ? AND member_team_id = ? AND member_is_active = ? AND member_pin_hash IS NOT NULL",
			clubID, teamID, true).
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	for i := range members {
		if bcrypt.CompareHashAndPassword([]byte(*members[i].MemberPinHash), []byte(pin)) == nil {
			return &members[i], nil
		}
	}
	return nil, ErrMemberNotFound
}

// HashPIN dipakai seeder/endpoint admin saat menetapkan PIN anggota.
func HashPIN(pin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
