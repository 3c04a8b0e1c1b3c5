// file: internals/helpers/dbtime/dbtime.go
package dbtime

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"klubku_backend/internals/configs"
)

// Nama locals mengikuti yg di-set di middleware AuthJWT
const (
	LocClubTimezone = "club_timezone" // string, misal "Asia/Jakarta"
	LocClubLoc      = "club_loc"      // *time.Location
)

// Ambil *time.Location berdasarkan token:
// 1) Prioritas: c.Locals("club_loc") yang diisi middleware
// 2) Kalau belum ada: coba baca "club_timezone" (string) lalu LoadLocation
// 3) Fallback: Asia/Jakarta
// 4) Fallback terakhir: time.UTC
func GetClubLocation(c *fiber.Ctx) *time.Location {
	if c == nil {
		return time.UTC
	}

	if v := c.Locals(LocClubLoc); v != nil {
		if loc, ok := v.(*time.Location); ok && loc != nil {
			return loc
		}
	}

	if v := c.Locals(LocClubTimezone); v != nil {
		if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
			s = strings.TrimSpace(s)
			if loc, err := time.LoadLocation(s); err == nil {
				// cache ke locals biar next call lebih murah
				c.Locals(LocClubLoc, loc)
				return loc
			}
		}
	}

	if loc, err := time.LoadLocation(configs.DefaultClubTimezone); err == nil {
		c.Locals(LocClubLoc, loc)
		return loc
	}

	return time.UTC
}

// NowClock mengembalikan jam dinding "HH:MM:SS" pada timezone klub dari locals
// JWT. Dipakai sebagai waktu check-in (kolom check_in_time bertipe teks jam).
func NowClock(c *fiber.Ctx) string {
	return time.Now().In(GetClubLocation(c)).Format("15:04:05")
}

// ClockIn: varian tanpa fiber context utk jalur yang tidak membawa JWT
// (kiosk). Nama timezone datang dari attendance settings klub; nama tidak
// valid jatuh ke default aplikasi.
func ClockIn(tzName string) string {
	loc, err := time.LoadLocation(strings.TrimSpace(tzName))
	if err != nil {
		if loc, err = time.LoadLocation(configs.DefaultClubTimezone); err != nil {
			loc = time.UTC
		}
	}
	return time.Now().In(loc).Format("15:04:05")
}
