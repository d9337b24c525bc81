// Package tzconv converts times between IANA timezones. It delegates
// entirely to the timezone database compiled into the binary or present on
// the host (see time/tzdata); it is not a timezone library of its own.
package tzconv

import (
	"errors"
	"fmt"
	"time"
)

var ErrZeroTime = errors.New("tzconv: zero time")

// Convert returns t expressed in the named IANA zone (e.g.
// "Europe/Amsterdam"). The zone name is validated against the timezone
// database; unknown names are an error, as is the zero time.
//
// Go times always carry a location, so the aware/naive split some languages
// have collapses to a single conversion here: the instant is preserved and
// only the wall-clock representation changes.
func Convert(t time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("tzconv: %w", err)
	}
	return In(t, loc)
}

// In is Convert for a pre-loaded location.
func In(t time.Time, loc *time.Location) (time.Time, error) {
	if t.IsZero() {
		return time.Time{}, ErrZeroTime
	}
	if loc == nil {
		return time.Time{}, errors.New("tzconv: nil location")
	}
	return t.In(loc), nil
}
