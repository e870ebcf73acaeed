package service

import "time"

// Clock supplies the reference time for every status and summary
// computation. Tests pin it; production uses time.Now.
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}
