package reservation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidTime      = errors.New("invalid time format")
	ErrInvalidTimeRange = errors.New("start time must be before end time")
)

// Date is a validated calendar day in "2006-01-02" form. Keeping the string
// representation makes the lexicographic sort order chronological.
type Date struct {
	value string
}

func NewDate(value string) (Date, error) {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{value: value}, nil
}

func (d Date) String() string {
	return d.value
}

// TimeOfDay is a wall-clock time within a day, minute resolution.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(value string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return TimeOfDay{}, ErrInvalidTime
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayFromHour(hour int) TimeOfDay {
	return TimeOfDay{minutes: hour * 60}
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, ErrInvalidTimeRange
	}
	return TimeSlot{start: start, end: end}, nil
}

func (ts TimeSlot) Start() TimeOfDay {
	return ts.start
}

func (ts TimeSlot) End() TimeOfDay {
	return ts.end
}

func (ts TimeSlot) Hours() float64 {
	return float64(ts.end.minutes-ts.start.minutes) / 60.0
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}
