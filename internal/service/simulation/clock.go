package simulation

import (
	"fmt"
	"strconv"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

const MinutesPerDay = 24 * 60

// ParseClock converts "HH:MM" into minutes since midnight (0-1439).
func ParseClock(s string) (int, error) {
	if !validator.Matches(s, validator.ClockRX) {
		return 0, &types.FormatError{Value: s}
	}

	// ClockRX guarantees two digits on each side of the colon.
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])

	return h*60 + m, nil
}

// FormatClock converts minutes since midnight into zero padded "HH:MM".
// Values outside a single day wrap around.
func FormatClock(minutes int) string {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
