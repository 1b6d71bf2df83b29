package entities

// DeadlineClass вычисляется при каждом чтении и никогда не хранится.
type DeadlineClass string

const (
	DeadlineNone   DeadlineClass = "none"
	DeadlineAtRisk DeadlineClass = "at_risk"
	DeadlineLate   DeadlineClass = "late"
)

func (c DeadlineClass) String() string {
	return string(c)
}

// Severity: late > at_risk > none.
func (c DeadlineClass) Severity() int {
	switch c {
	case DeadlineLate:
		return 2
	case DeadlineAtRisk:
		return 1
	default:
		return 0
	}
}
