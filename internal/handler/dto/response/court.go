package response

import (
	"padel-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CourtResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	PricePerHour float64 `json:"pricePerHour"`
	Description  string  `json:"description"`
}

type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

type AvailabilityResponse struct {
	Court *CourtResponse  `json:"court"`
	Date  string          `json:"date"`
	Slots []*SlotResponse `json:"slots"`
}

func FromCourtView(v *queries.CourtView) *CourtResponse {
	var resp CourtResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCourtViews(views []*queries.CourtView) []*CourtResponse {
	out := make([]*CourtResponse, len(views))
	for i, v := range views {
		out[i] = FromCourtView(v)
	}
	return out
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		var resp SlotResponse
		_ = copier.Copy(&resp, v)
		out[i] = &resp
	}
	return out
}
