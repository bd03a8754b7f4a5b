package clock

import (
	"fmt"
	"time"
)

// Clock supplies the current time pinned to one civil timezone. Every
// day/month boundary in the service layer goes through this interface so the
// kiosk, the submitters, and the aggregates all agree on what "today" means
// regardless of server locale.
type Clock interface {
	Now() time.Time
	// Today returns the current civil date as YYYY-MM-DD.
	Today() string
	// Month returns the current civil month as YYYY-MM.
	Month() string
	Location() *time.Location
}

type zoneClock struct {
	loc *time.Location
}

// New creates a Clock pinned to the named IANA timezone.
func New(timezone string) (Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *zoneClock) Today() string {
	return c.Now().Format("2006-01-02")
}

func (c *zoneClock) Month() string {
	return c.Now().Format("2006-01")
}

func (c *zoneClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, for tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time           { return f.T }
func (f Fixed) Today() string            { return f.T.Format("2006-01-02") }
func (f Fixed) Month() string            { return f.T.Format("2006-01") }
func (f Fixed) Location() *time.Location { return f.T.Location() }
