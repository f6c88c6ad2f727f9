package booking

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fieldbook/internal/pkg/errs"
)

var (
	ErrInvalidStatus   = errors.New("invalid booking status")
	ErrInvalidTimeSlot = errors.New("time slot is not offered")
	ErrInvalidDate     = errors.New("invalid booking date")
	ErrInvalidCode     = errs.ErrInvalidCodeFormat
)

const (
	FirstSlotHour = 8
	LastSlotHour  = 23

	MinDuration     = 1
	MaxDuration     = 5
	DefaultDuration = 1

	CodeLength = 6

	DateLayout = "2006-01-02"
)

var timeSlots = func() []string {
	slots := make([]string, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}()

// TimeSlots returns the enumerated start times, 08:00 through 23:00.
func TimeSlots() []string {
	return slices.Clone(timeSlots)
}

func IsTimeSlot(s string) bool {
	return slices.Contains(timeSlots, s)
}

// ClampDuration forces d into [MinDuration, MaxDuration]; zero means the default.
func ClampDuration(d int) int {
	if d == 0 {
		return DefaultDuration
	}
	return min(max(d, MinDuration), MaxDuration)
}

func Durations() []int {
	out := make([]int, 0, MaxDuration)
	for d := MinDuration; d <= MaxDuration; d++ {
		out = append(out, d)
	}
	return out
}

// ParseDate accepts a calendar day (2006-01-02) or an RFC 3339 timestamp and
// returns the start of that day in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	t = t.In(loc)
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

func ValidateCodeFormat(code string) error {
	if len(code) != CodeLength {
		return ErrInvalidCode
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return ErrInvalidCode
		}
	}
	return nil
}
