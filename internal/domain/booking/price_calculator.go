package booking

import "fieldbook/internal/domain/listing"

type PriceCalculator interface {
	CalculatePrice(l *listing.Listing, duration int) int64
}

// HourlyPriceCalculator charges the listing's hourly price per booked hour.
// An unknown listing costs nothing.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (HourlyPriceCalculator) CalculatePrice(l *listing.Listing, duration int) int64 {
	if l == nil {
		return 0
	}
	return l.PricePerHour * int64(duration)
}
