package http

import (
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/pkg/validator"
)

// Clock supplies "today" to the attendance rules in the configured zone.
type Clock struct {
	Location *time.Location
	Now      func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{Location: loc, Now: time.Now}
}

// Today returns the current date as YYYY-MM-DD.
func (c Clock) Today() string {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	return validator.Today(now(), c.Location)
}
