//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/domain/reservation"
	"padel-booking/internal/handler/api"
	"padel-booking/internal/handler/middleware"
	"padel-booking/internal/infra/memstore"
	"padel-booking/internal/pkg/clock"
	"padel-booking/internal/pkg/config"
	"padel-booking/internal/usecase/commands"
	"padel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// engineFixture wires the real in-memory stores behind the handlers.
type engineFixture struct {
	router *gin.Engine
	ledger *memstore.ReservationStore
	courts *memstore.CourtStore
}

func newEngineFixture(_ *testing.T) *engineFixture {
	gin.SetMode(gin.TestMode)

	courts := memstore.NewCourtStore(court.DefaultCatalog())
	ledger := memstore.NewReservationStore(clock.NewMockClock(time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)))
	grid := config.ScheduleConfig{OpenHour: 8, CloseHour: 22}

	courtQueries := queries.NewCourtQueries(courts)
	availabilityQueries := queries.NewAvailabilityQueries(courts, ledger, grid)
	reservationQueries := queries.NewReservationQueries(ledger)
	reservationCommands := commands.NewReservationCommands(courts, ledger, reservation.NewHourlyRateCalculator())

	courtHandler := api.NewCourtHandler(courtQueries, availabilityQueries)
	reservationHandler := api.NewReservationHandler(reservationCommands, reservationQueries)
	toolsHandler := api.NewToolsHandler(courtQueries, availabilityQueries, reservationCommands, reservationQueries)

	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/api/courts", courtHandler.List)
	router.GET("/api/courts/:id", courtHandler.Get)
	router.GET("/api/courts/:id/availability", courtHandler.Availability)
	router.POST("/api/reservations", reservationHandler.Create)
	router.GET("/api/reservations", reservationHandler.ListByUser)
	router.GET("/api/reservations/:id", reservationHandler.Get)
	router.DELETE("/api/reservations/:id", reservationHandler.Cancel)
	router.GET("/tools", toolsHandler.List)
	router.POST("/tools/:name", toolsHandler.Execute)

	return &engineFixture{
		router: router,
		ledger: ledger,
		courts: courts,
	}
}

func (f *engineFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func createReservationBody(courtID, date, start, end, user string) map[string]any {
	return map[string]any{
		"courtId":   courtID,
		"date":      date,
		"startTime": start,
		"endTime":   end,
		"userName":  user,
	}
}
