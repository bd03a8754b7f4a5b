package attendance

import (
	"time"

	"github.com/chulcheck/attendance-backend-go/internal/config"
)

// DurationMinutes returns the whole minutes worked between check-in and
// check-out, floored.
func DurationMinutes(in, out time.Time) int {
	return int(out.Sub(in) / time.Minute)
}

// BilledHours rounds worked minutes to the nearest whole hour, half up:
// 29 minutes bill as 0 hours, 30 minutes bill as 1.
func BilledHours(minutes int) int {
	return (minutes + 30) / 60
}

// SessionWage applies the wage policy: billed hours at the per-hour rate plus
// the flat per-session bonus.
func SessionWage(billedHours int, policy config.WageConfig) int {
	return billedHours*policy.PerHour + policy.BaseBonus
}
