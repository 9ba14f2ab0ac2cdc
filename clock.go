package contentrec

import (
	"sync"
	"time"
)

// Date formatting is fixed to the UK convention: DD/MM/YYYY in
// Europe/London.
const (
	dateLayout = "02/01/2006"
	dateZone   = "Europe/London"
)

// Clock supplies the current time. Extraction depends on the wall clock
// only through this interface, so tests can inject a fixed instant.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

var (
	londonOnce sync.Once
	london     *time.Location
)

// DateString formats t as DD/MM/YYYY in the Europe/London timezone. UTC is
// used if the timezone database is unavailable.
func DateString(t time.Time) string {
	londonOnce.Do(func() {
		loc, err := time.LoadLocation(dateZone)
		if err != nil {
			loc = time.UTC
		}
		london = loc
	})
	return t.In(london).Format(dateLayout)
}
