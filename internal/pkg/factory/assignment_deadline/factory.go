package assignment_deadline

import (
	"time"

	"bakeryops/internal/entities"
)

type AssignmentDeadlineFactory struct {
	courierTimeout  time.Duration
	externalTimeout time.Duration
}

func New(courierTimeout, externalTimeout time.Duration) *AssignmentDeadlineFactory {
	return &AssignmentDeadlineFactory{
		courierTimeout:  courierTimeout,
		externalTimeout: externalTimeout,
	}
}

// CalculateDeadline: внешнему курьеру отвечают через партнерскую службу, ему ждать дольше.
func (f *AssignmentDeadlineFactory) CalculateDeadline(target entities.AssignmentTarget, baseTime time.Time) time.Time {
	if target.External {
		return baseTime.Add(f.externalTimeout)
	}
	return baseTime.Add(f.courierTimeout)
}
