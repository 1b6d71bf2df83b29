package clock

import "time"

// Clock - единственный источник "сейчас" для классификатора дедлайнов,
// движка переходов и координатора назначений. В тестах подменяется Fixed.
type Clock interface {
	Now() time.Time
}

type Real struct{}

func New() Real {
	return Real{}
}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed всегда возвращает одно и то же время.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Func адаптирует функцию к Clock.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
