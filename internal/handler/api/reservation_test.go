//go:build unit

package api_test

import (
	"net/http"
	"testing"

	resdto "padel-booking/internal/handler/dto/response"
	"padel-booking/internal/handler/httperr"

	"github.com/stretchr/testify/suite"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	fixture *engineFixture
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	s.fixture = newEngineFixture(s.T())
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	rec := s.fixture.do(s.T(), http.MethodPost, "/api/reservations",
		createReservationBody("court-1", "2025-06-01", "10:00", "11:30", "Alice"))

	s.Equal(http.StatusCreated, rec.Code)
	body := decodeBody[resdto.ReservationResponse](s.T(), rec)
	s.Equal("RES-0001", body.ID)
	s.Equal("court-1", body.CourtID)
	s.Equal("Center Court", body.CourtName)
	s.Equal("confirmed", body.Status)
	s.InDelta(37.5, body.TotalPrice, 1e-9)
}

func (s *ReservationHandlerTestSuite) TestCreateValidation() {
	cases := []struct {
		name       string
		body       map[string]any
		expectCode int
		expectMsg  string
	}{
		{
			name:       "unknown court",
			body:       createReservationBody("court-99", "2025-06-01", "10:00", "11:00", "Alice"),
			expectCode: http.StatusNotFound,
			expectMsg:  "Court not found",
		},
		{
			name:       "reversed time range",
			body:       createReservationBody("court-1", "2025-06-01", "11:00", "10:00", "Alice"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Start time must be before end time",
		},
		{
			name:       "malformed date",
			body:       createReservationBody("court-1", "01/06/2025", "10:00", "11:00", "Alice"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid date format, expected YYYY-MM-DD",
		},
		{
			name:       "malformed start time",
			body:       createReservationBody("court-1", "2025-06-01", "10am", "11:00", "Alice"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid startTime format, expected HH:MM",
		},
		{
			name:       "missing user name",
			body:       createReservationBody("court-1", "2025-06-01", "10:00", "11:00", ""),
			expectCode: http.StatusBadRequest,
			expectMsg:  "Invalid request format",
		},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.fixture.do(s.T(), http.MethodPost, "/api/reservations", tc.body)
			s.Equal(tc.expectCode, rec.Code)
			s.Equal(tc.expectMsg, decodeBody[httperr.Response](s.T(), rec).Error.Message)
		})
	}
}

func (s *ReservationHandlerTestSuite) TestCreateConflict() {
	rec := s.fixture.do(s.T(), http.MethodPost, "/api/reservations",
		createReservationBody("court-1", "2025-06-01", "10:00", "11:00", "Alice"))
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.fixture.do(s.T(), http.MethodPost, "/api/reservations",
		createReservationBody("court-1", "2025-06-01", "10:00", "11:00", "Bob"))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("Slot is not available", decodeBody[httperr.Response](s.T(), rec).Error.Message)

	// Ledger unchanged: Bob has nothing
	rec = s.fixture.do(s.T(), http.MethodGet, "/api/reservations?userName=Bob", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Empty(decodeBody[[]resdto.ReservationResponse](s.T(), rec))
}

// ================================================================================
// TestGet / TestListByUser
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	rec := s.fixture.do(s.T(), http.MethodPost, "/api/reservations",
		createReservationBody("court-1", "2025-06-01", "10:00", "11:00", "Alice"))
	created := decodeBody[resdto.ReservationResponse](s.T(), rec)

	rec = s.fixture.do(s.T(), http.MethodGet, "/api/reservations/"+created.ID, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(created.ID, decodeBody[resdto.ReservationResponse](s.T(), rec).ID)

	rec = s.fixture.do(s.T(), http.MethodGet, "/api/reservations/RES-9999", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ReservationHandlerTestSuite) TestListByUser() {
	for _, b := range []map[string]any{
		createReservationBody("court-1", "2025-06-02", "09:00", "10:00", "alice"),
		createReservationBody("court-1", "2025-06-01", "10:00", "11:00", "Alice"),
		createReservationBody("court-2", "2025-06-01", "10:00", "11:00", "Bob"),
	} {
		rec := s.fixture.do(s.T(), http.MethodPost, "/api/reservations", b)
		s.Require().Equal(http.StatusCreated, rec.Code)
	}

	rec := s.fixture.do(s.T(), http.MethodGet, "/api/reservations?userName=ALICE", nil)
	s.Equal(http.StatusOK, rec.Code)
	rows := decodeBody[[]resdto.ReservationResponse](s.T(), rec)
	s.Require().Len(rows, 2)
	s.Equal("2025-06-01", rows[0].Date)
	s.Equal("2025-06-02", rows[1].Date)

	rec = s.fixture.do(s.T(), http.MethodGet, "/api/reservations", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	rec := s.fixture.do(s.T(), http.MethodPost, "/api/reservations",
		createReservationBody("court-1", "2025-06-01", "10:00", "11:00", "Alice"))
	created := decodeBody[resdto.ReservationResponse](s.T(), rec)

	rec = s.fixture.do(s.T(), http.MethodDelete, "/api/reservations/"+created.ID, nil)
	s.Equal(http.StatusOK, rec.Code)
	cancelled := decodeBody[resdto.CancelReservationResponse](s.T(), rec)
	s.True(cancelled.Cancelled)

	// Hidden from the user listing, record still retrievable as cancelled
	rec = s.fixture.do(s.T(), http.MethodGet, "/api/reservations?userName=Alice", nil)
	s.Empty(decodeBody[[]resdto.ReservationResponse](s.T(), rec))

	rec = s.fixture.do(s.T(), http.MethodGet, "/api/reservations/"+created.ID, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("cancelled", decodeBody[resdto.ReservationResponse](s.T(), rec).Status)

	// Slot is free again
	rec = s.fixture.do(s.T(), http.MethodPost, "/api/reservations",
		createReservationBody("court-1", "2025-06-01", "10:00", "11:00", "Bob"))
	s.Equal(http.StatusCreated, rec.Code)

	rec = s.fixture.do(s.T(), http.MethodDelete, "/api/reservations/RES-9999", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}
