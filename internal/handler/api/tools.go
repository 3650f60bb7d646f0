package api

import (
	"errors"
	"net/http"

	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/handler/httperr"
	"padel-booking/internal/pkg/errs"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ToolsHandler exposes the engine operations as a discoverable tool catalog:
// GET lists hand-authored descriptors, POST /:name executes one. Every
// execution answers with the same {success, data, message} envelope.
type ToolsHandler struct {
	courtQueries        queries.CourtQueries
	availabilityQueries queries.AvailabilityQueries
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewToolsHandler(
	courtQueries queries.CourtQueries,
	availabilityQueries queries.AvailabilityQueries,
	reservationCommands commands.ReservationCommands,
	reservationQueries queries.ReservationQueries,
) *ToolsHandler {
	return &ToolsHandler{
		courtQueries:        courtQueries,
		availabilityQueries: availabilityQueries,
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

type toolResult struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message"`
}

var errUnknownTool = errs.New("unknown tool")

// abortToolError keeps the tool envelope on failures while recording the
// cause on the context the same way the REST handlers do.
func abortToolError(c *gin.Context, status int, err error, message string) {
	httperr.AbortWithPayload(c, status, err, toolResult{Success: false, Message: message})
}

func stringParam(description string) map[string]any {
	if description == "" {
		return map[string]any{"type": "string"}
	}
	return map[string]any{"type": "string", "description": description}
}

func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

// Hand-authored catalog of the six engine operations.
var toolCatalog = []toolDescriptor{
	{
		Name:        "list_courts",
		Description: "Lists all padel courts in the catalog",
		InputSchema: objectSchema(map[string]any{}),
	},
	{
		Name:        "get_court",
		Description: "Fetches a single court by its id",
		InputSchema: objectSchema(map[string]any{
			"court_id": stringParam("Court id"),
		}, "court_id"),
	},
	{
		Name:        "check_availability",
		Description: "Checks a court's time-slot availability for a date",
		InputSchema: objectSchema(map[string]any{
			"court_id": stringParam("Court id"),
			"date":     stringParam("Date (YYYY-MM-DD)"),
		}, "court_id", "date"),
	},
	{
		Name:        "create_reservation",
		Description: "Creates a new court reservation",
		InputSchema: objectSchema(map[string]any{
			"court_id":   stringParam(""),
			"date":       stringParam("Date (YYYY-MM-DD)"),
			"start_time": stringParam("Start time (HH:MM)"),
			"end_time":   stringParam("End time (HH:MM)"),
			"user_name":  stringParam(""),
		}, "court_id", "date", "start_time", "end_time", "user_name"),
	},
	{
		Name:        "list_my_reservations",
		Description: "Lists a user's confirmed reservations",
		InputSchema: objectSchema(map[string]any{
			"user_name": stringParam("User name"),
		}, "user_name"),
	},
	{
		Name:        "cancel_reservation",
		Description: "Cancels an existing reservation by id",
		InputSchema: objectSchema(map[string]any{
			"reservation_id": stringParam("Reservation id"),
		}, "reservation_id"),
	},
}

func (h *ToolsHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tools": toolCatalog})
}

type toolArgs struct {
	CourtID       string `json:"court_id"`
	Date          string `json:"date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	UserName      string `json:"user_name"`
	ReservationID string `json:"reservation_id"`
}

func (h *ToolsHandler) Execute(c *gin.Context) {
	var args toolArgs
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&args); err != nil {
			abortToolError(c, http.StatusBadRequest, err, "Invalid request format")
			return
		}
	}

	switch c.Param("name") {
	case "list_courts":
		h.listCourts(c)
	case "get_court":
		h.getCourt(c, args)
	case "check_availability":
		h.checkAvailability(c, args)
	case "create_reservation":
		h.createReservation(c, args)
	case "list_my_reservations":
		h.listMyReservations(c, args)
	case "cancel_reservation":
		h.cancelReservation(c, args)
	default:
		abortToolError(c, http.StatusNotFound, errUnknownTool, "Unknown tool")
	}
}

func (h *ToolsHandler) listCourts(c *gin.Context) {
	courts := h.courtQueries.List(c.Request.Context())
	c.JSON(http.StatusOK, toolResult{Success: true, Data: courts, Message: "Courts fetched successfully"})
}

func (h *ToolsHandler) getCourt(c *gin.Context, args toolArgs) {
	view, err := h.courtQueries.Get(c.Request.Context(), args.CourtID)
	if err != nil {
		abortToolError(c, http.StatusNotFound, err, "Court not found")
		return
	}
	c.JSON(http.StatusOK, toolResult{Success: true, Data: view, Message: "Court fetched successfully"})
}

func (h *ToolsHandler) checkAvailability(c *gin.Context, args toolArgs) {
	date, err := reservation.NewDate(args.Date)
	if err != nil {
		abortToolError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	slots := h.availabilityQueries.ListSlots(c.Request.Context(), args.CourtID, date)
	c.JSON(http.StatusOK, toolResult{Success: true, Data: slots, Message: "Availability fetched successfully"})
}

func (h *ToolsHandler) createReservation(c *gin.Context, args toolArgs) {
	date, err := reservation.NewDate(args.Date)
	if err != nil {
		abortToolError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	start, err := reservation.NewTimeOfDay(args.StartTime)
	if err != nil {
		abortToolError(c, http.StatusBadRequest, err, "Invalid start_time format, expected HH:MM")
		return
	}
	end, err := reservation.NewTimeOfDay(args.EndTime)
	if err != nil {
		abortToolError(c, http.StatusBadRequest, err, "Invalid end_time format, expected HH:MM")
		return
	}

	view, err := h.reservationCommands.CreateReservation(c.Request.Context(), commands.CreateReservationParams{
		CourtID:   args.CourtID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		UserName:  args.UserName,
	})
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCourtNotFound):
			abortToolError(c, http.StatusNotFound, err, "Court not found")
		case errors.Is(err, reservation.ErrInvalidTimeRange):
			abortToolError(c, http.StatusBadRequest, err, "Start time must be before end time")
		case errors.Is(err, errs.ErrSlotUnavailable):
			abortToolError(c, http.StatusConflict, err, "Slot is not available")
		default:
			abortToolError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}
	c.JSON(http.StatusOK, toolResult{Success: true, Data: view, Message: "Reservation created successfully"})
}

func (h *ToolsHandler) listMyReservations(c *gin.Context, args toolArgs) {
	views := h.reservationQueries.ListByUser(c.Request.Context(), args.UserName)
	c.JSON(http.StatusOK, toolResult{Success: true, Data: views, Message: "Reservations fetched successfully"})
}

func (h *ToolsHandler) cancelReservation(c *gin.Context, args toolArgs) {
	if !h.reservationCommands.CancelReservation(c.Request.Context(), args.ReservationID) {
		abortToolError(c, http.StatusNotFound, errs.ErrReservationNotFound, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, toolResult{Success: true, Message: "Reservation cancelled successfully"})
}
