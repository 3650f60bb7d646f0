package court

import "errors"

var (
	ErrInvalidType   = errors.New("invalid court type")
	ErrInvalidStatus = errors.New("invalid court status")
	ErrNegativeRate  = errors.New("hourly rate cannot be negative")
)

// Court is a bookable padel court. Courts are seeded once at startup and are
// immutable afterwards, so instances may be shared across goroutines freely.
type Court struct {
	id              string
	name            string
	courtType       Type
	status          Status
	hourlyRateCents int64
	description     string
}

func NewCourt(id, name string, courtType Type, status Status, hourlyRateCents int64, description string) (*Court, error) {
	if !courtType.IsValid() {
		return nil, ErrInvalidType
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}
	return &Court{
		id:              id,
		name:            name,
		courtType:       courtType,
		status:          status,
		hourlyRateCents: hourlyRateCents,
		description:     description,
	}, nil
}

func (c *Court) ID() string             { return c.id }
func (c *Court) Name() string           { return c.name }
func (c *Court) CourtType() Type        { return c.courtType }
func (c *Court) Status() Status         { return c.status }
func (c *Court) HourlyRateCents() int64 { return c.hourlyRateCents }
func (c *Court) Description() string    { return c.description }
