package mock

import (
	"time"

	"github.com/jackalderton/contentrec"
)

var _ contentrec.Clock = (*Clock)(nil)

// Clock is a mock implementation of contentrec.Clock returning a fixed
// instant.
type Clock struct {
	NowFn func() time.Time
}

func (c *Clock) Now() time.Time {
	return c.NowFn()
}
