package transition

import "time"

type Clock interface {
	Now() time.Time
}
