package clock

import (
	"time"

	"dentora-service/internal/app/contracts"
)

type systemClock struct{}

// NewSystemClock returns the wall clock. Tests substitute their own
// contracts.Clock to pin month boundaries.
func NewSystemClock() contracts.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}
