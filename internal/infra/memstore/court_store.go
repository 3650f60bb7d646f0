package memstore

import (
	"context"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/pkg/errs"
)

// CourtStore holds the court catalog. The catalog is seeded once and never
// mutated, so lookups need no locking.
type CourtStore struct {
	ordered []*court.Court
	byID    map[string]*court.Court
}

func NewCourtStore(courts []*court.Court) *CourtStore {
	byID := make(map[string]*court.Court, len(courts))
	for _, c := range courts {
		byID[c.ID()] = c
	}
	return &CourtStore{
		ordered: courts,
		byID:    byID,
	}
}

// All returns the catalog in insertion order.
func (s *CourtStore) All(_ context.Context) []*court.Court {
	out := make([]*court.Court, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *CourtStore) ByID(_ context.Context, id string) (*court.Court, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, errs.Mark(errs.New("court not found: "+id), errs.ErrCourtNotFound)
	}
	return c, nil
}
