package clock

import "time"

// Clock abstracts time.Now so check-in timestamps can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func System() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }

type fixedClock struct{ at time.Time }

// Fixed returns a clock stuck at the given instant.
func Fixed(at time.Time) Clock { return fixedClock{at: at.UTC()} }

func (c fixedClock) Now() time.Time { return c.at }
