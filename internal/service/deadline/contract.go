package deadline

import "time"

type Clock interface {
	Now() time.Time
}
