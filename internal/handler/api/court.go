package api

import (
	"errors"
	"net/http"

	"padel-booking/internal/domain/reservation"
	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CourtHandler struct {
	courtQueries        queries.CourtQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewCourtHandler(courtQueries queries.CourtQueries, availabilityQueries queries.AvailabilityQueries) *CourtHandler {
	return &CourtHandler{
		courtQueries:        courtQueries,
		availabilityQueries: availabilityQueries,
	}
}

func (h *CourtHandler) List(c *gin.Context) {
	views := h.courtQueries.List(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromCourtViews(views))
}

func (h *CourtHandler) Get(c *gin.Context) {
	view, err := h.courtQueries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrCourtNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCourtView(view))
}

// Availability resolves the court first so an unknown court is a 404, unlike
// the engine-level slot listing which stays silently empty.
func (h *CourtHandler) Availability(c *gin.Context) {
	date, err := reservation.NewDate(c.Query("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	courtView, err := h.courtQueries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, errs.ErrCourtNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	slots := h.availabilityQueries.ListSlots(c.Request.Context(), courtView.ID, date)

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		Court: resdto.FromCourtView(courtView),
		Date:  date.String(),
		Slots: resdto.FromSlotViews(slots),
	})
}
