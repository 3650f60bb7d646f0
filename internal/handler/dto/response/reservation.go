package response

import (
	"time"

	"padel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         string    `json:"id"`
	CourtID    string    `json:"courtId"`
	CourtName  string    `json:"courtName"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	UserName   string    `json:"userName"`
	Status     string    `json:"status"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CancelReservationResponse struct {
	ID        string `json:"id"`
	Cancelled bool   `json:"cancelled"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(views))
	for i, v := range views {
		out[i] = FromReservationView(v)
	}
	return out
}
