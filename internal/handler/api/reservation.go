package api

import (
	"errors"
	"net/http"

	"padel-booking/internal/domain/reservation"
	reqdto "padel-booking/internal/handler/dto/request"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errMissingUserName = errs.New("missing userName query parameter")

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// Create parses the wire formats here; semantic ordering of start and end is
// checked by the command itself after the court resolves.
func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	date, err := reservation.NewDate(req.Date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}
	start, err := reservation.NewTimeOfDay(req.StartTime)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid startTime format, expected HH:MM", nil)
		return
	}
	end, err := reservation.NewTimeOfDay(req.EndTime)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid endTime format, expected HH:MM", nil)
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), commands.CreateReservationParams{
		CourtID:   req.CourtID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		UserName:  req.TrimmedUserName(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
		case errors.Is(err, reservation.ErrInvalidTimeRange):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start time must be before end time", nil)
		case errors.Is(err, errs.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.reservationQueries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userName := c.Query("userName")
	if userName == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errMissingUserName, "userName query parameter is required", nil)
		return
	}

	views := h.reservationQueries.ListByUser(c.Request.Context(), userName)
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if !h.reservationCommands.CancelReservation(c.Request.Context(), id) {
		httperr.AbortWithError(c, http.StatusNotFound, errs.ErrReservationNotFound, "Reservation not found", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CancelReservationResponse{ID: id, Cancelled: true})
}
