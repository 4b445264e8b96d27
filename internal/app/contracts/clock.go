package contracts

import "time"

// Clock abstracts wall-clock reads so month-boundary computations are
// testable.
type Clock interface {
	Now() time.Time
}
