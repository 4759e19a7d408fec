//go:build !tinygo

package hal

import "time"

type hostClock struct {
	loc *time.Location
	now func() time.Time
}

func newHostClock(loc *time.Location) *hostClock {
	if loc == nil {
		loc = time.Local
	}
	return &hostClock{loc: loc, now: time.Now}
}

func (c *hostClock) Now() time.Time { return c.now().In(c.loc) }
