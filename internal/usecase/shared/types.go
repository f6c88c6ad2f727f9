package shared

import (
	"cmp"
	"errors"
	"slices"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/listing"
)

var ErrInvalidBookingSort = errors.New("invalid booking sort")

type CreateBookingParams struct {
	FieldID  string `json:"fieldId"`
	UserID   string `json:"userId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

type BookingSort string

const (
	SortDateDesc  BookingSort = "date-desc"
	SortDateAsc   BookingSort = "date-asc"
	SortPriceHigh BookingSort = "price-high"
	SortPriceLow  BookingSort = "price-low"
)

func ParseBookingSort(s string) (BookingSort, error) {
	if s == "" {
		return SortDateDesc, nil
	}
	switch k := BookingSort(s); k {
	case SortDateDesc, SortDateAsc, SortPriceHigh, SortPriceLow:
		return k, nil
	default:
		return "", ErrInvalidBookingSort
	}
}

// OwnerBookingFilter narrows an owner's booking list. A zero Status keeps all.
type OwnerBookingFilter struct {
	Status booking.Status
	Sort   BookingSort
}

func (f OwnerBookingFilter) Apply(list []booking.Booking) []booking.Booking {
	out := make([]booking.Booking, 0, len(list))
	for _, b := range list {
		if f.Status == "" || b.Status == f.Status {
			out = append(out, b)
		}
	}

	byDate := func(a, b booking.Booking) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.Time, b.Time)
	}
	switch f.Sort {
	case SortDateAsc:
		slices.SortStableFunc(out, byDate)
	case SortPriceHigh:
		slices.SortStableFunc(out, func(a, b booking.Booking) int { return cmp.Compare(b.TotalPrice, a.TotalPrice) })
	case SortPriceLow:
		slices.SortStableFunc(out, func(a, b booking.Booking) int { return cmp.Compare(a.TotalPrice, b.TotalPrice) })
	default:
		slices.SortStableFunc(out, func(a, b booking.Booking) int { return byDate(b, a) })
	}
	return out
}

// VerifyResult reports an in-person code check. A mismatch is not an error.
type VerifyResult struct {
	Verified     bool             `json:"verified"`
	AttemptsLeft int              `json:"attemptsLeft"`
	Booking      *booking.Booking `json:"booking,omitempty"`
}

type OwnerStats struct {
	TotalFields   int   `json:"totalFields"`
	TotalBookings int   `json:"totalBookings"`
	Earnings      int64 `json:"earnings"`
}

type PromoteResult struct {
	OK    bool            `json:"ok"`
	Field listing.Listing `json:"field"`
}
