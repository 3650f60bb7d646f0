package request

import (
	"strings"
)

type CreateReservationRequest struct {
	CourtID   string `json:"courtId" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
}

func (r CreateReservationRequest) TrimmedUserName() string {
	return strings.TrimSpace(r.UserName)
}
