package scheduler

import "time"

// Clock abstracts "now" so the weekend skip and window checks are
// testable without touching the system clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock used in production.
func SystemClock() Clock { return systemClock{} }
