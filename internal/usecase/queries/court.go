package queries

import (
	"context"

	"padel-booking/internal/domain/court"
	"padel-booking/internal/pkg/errs"
)

type CourtReadStore interface {
	All(ctx context.Context) []*court.Court
	ByID(ctx context.Context, id string) (*court.Court, error)
}

type CourtQueries interface {
	List(ctx context.Context) []*CourtView
	Get(ctx context.Context, id string) (*CourtView, error)
}

type courtQueriesImpl struct {
	courts CourtReadStore
}

func NewCourtQueries(courts CourtReadStore) CourtQueries {
	return &courtQueriesImpl{courts: courts}
}

func (q *courtQueriesImpl) List(ctx context.Context) []*CourtView {
	all := q.courts.All(ctx)
	views := make([]*CourtView, len(all))
	for i, c := range all {
		views[i] = NewCourtView(c)
	}
	return views
}

func (q *courtQueriesImpl) Get(ctx context.Context, id string) (*CourtView, error) {
	c, err := q.courts.ByID(ctx, id)
	if err != nil {
		return nil, errs.Wrap(err, "failed to load court")
	}
	return NewCourtView(c), nil
}
