package reservation

import (
	"padel-booking/internal/domain/court"
)

type PriceCalculator interface {
	CalculatePriceCents(c *court.Court, slot TimeSlot) int64
}

// HourlyRateCalculator prices a slot as its fractional duration in hours
// times the court's hourly rate. A 90-minute slot costs 1.5x the rate.
type HourlyRateCalculator struct{}

func NewHourlyRateCalculator() *HourlyRateCalculator {
	return &HourlyRateCalculator{}
}

func (pc *HourlyRateCalculator) CalculatePriceCents(c *court.Court, slot TimeSlot) int64 {
	hours := slot.Hours()
	return int64(hours * float64(c.HourlyRateCents()))
}
