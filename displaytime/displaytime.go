// Package displaytime formats Nomad timestamps for display.
package displaytime

import (
	"time"

	units "github.com/docker/go-units"
)

// Unknown is shown for unset timestamps
const Unknown = "-"

// Formatter renders unix nanosecond timestamps relative to a clock
type Formatter struct {
	Now func() time.Time
}

// New returns a formatter using the wall clock
func New() *Formatter {
	return &Formatter{Now: time.Now}
}

// Format returns a relative time such as "5 minutes ago"
func (f *Formatter) Format(nanos int64) string {
	if nanos == 0 {
		return Unknown
	}

	d := f.now().Sub(time.Unix(0, nanos))
	if d < 0 {
		return "in " + units.HumanDuration(-d)
	}

	return units.HumanDuration(d) + " ago"
}

// Absolute returns the timestamp in RFC3339 UTC
func (f *Formatter) Absolute(nanos int64) string {
	if nanos == 0 {
		return ""
	}

	return time.Unix(0, nanos).UTC().Format(time.RFC3339)
}

func (f *Formatter) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}
