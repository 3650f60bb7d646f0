package queries

import (
	"time"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/reservation"
)

// Read models (DTO for read side)
type CourtView struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	PricePerHour float64 `json:"price_per_hour"`
	Description  string  `json:"description"`
}

type SlotView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type ReservationView struct {
	ID         string    `json:"id"`
	CourtID    string    `json:"court_id"`
	CourtName  string    `json:"court_name"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	UserName   string    `json:"user_name"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"total_price"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewCourtView(c *court.Court) *CourtView {
	return &CourtView{
		ID:           c.ID(),
		Name:         c.Name(),
		Type:         c.CourtType().String(),
		Status:       c.Status().String(),
		PricePerHour: float64(c.HourlyRateCents()) / 100.0,
		Description:  c.Description(),
	}
}

func NewReservationView(r *reservation.Reservation) *ReservationView {
	return &ReservationView{
		ID:         r.ID(),
		CourtID:    r.CourtID(),
		CourtName:  r.CourtName(),
		Date:       r.Date().String(),
		StartTime:  r.Slot().Start().String(),
		EndTime:    r.Slot().End().String(),
		UserName:   r.UserName(),
		Status:     r.Status().String(),
		TotalPrice: r.TotalPrice().Amount(),
		CreatedAt:  r.CreatedAt(),
	}
}
