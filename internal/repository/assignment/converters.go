package assignment

import (
	"bakeryops/internal/entities"
)

func ToDomain(a *AttemptDB) *entities.AssignmentAttempt {
	if a == nil {
		return nil
	}

	// снимок курьера до назначения: все три колонки NULL - курьера не было
	var previous *entities.CourierRef
	if a.PreviousExternal != nil {
		previous = &entities.CourierRef{
			CourierID: a.PreviousCourierID,
			External:  *a.PreviousExternal,
		}
		if a.PreviousPhone != nil {
			previous.Phone = *a.PreviousPhone
		}
	}

	return &entities.AssignmentAttempt{
		Token:   a.Token,
		OrderID: a.OrderID,
		Target: entities.AssignmentTarget{
			CourierID: a.TargetCourierID,
			External:  a.TargetExternal,
		},
		State:             entities.AssignmentState(a.State),
		Optimistic:        a.Optimistic,
		AppliedAt:         a.AppliedAt,
		PreviousCourier:   previous,
		PreviousUpdatedAt: a.PreviousUpdatedAt,
		Deadline:          a.Deadline,
		Reason:            a.Reason,
		CreatedAt:         a.CreatedAt,
		ResolvedAt:        a.ResolvedAt,
	}
}

func FromDomain(attempt *entities.AssignmentAttempt) *AttemptDB {
	attemptDB := &AttemptDB{
		OrderID:           attempt.OrderID,
		TargetCourierID:   attempt.Target.CourierID,
		TargetExternal:    attempt.Target.External,
		State:             attempt.State.String(),
		Optimistic:        attempt.Optimistic,
		AppliedAt:         attempt.AppliedAt,
		PreviousUpdatedAt: attempt.PreviousUpdatedAt,
		Deadline:          attempt.Deadline,
		Reason:            attempt.Reason,
		CreatedAt:         attempt.CreatedAt,
		ResolvedAt:        attempt.ResolvedAt,
	}

	if prev := attempt.PreviousCourier; prev != nil {
		attemptDB.PreviousCourierID = prev.CourierID
		attemptDB.PreviousExternal = &prev.External
		attemptDB.PreviousPhone = &prev.Phone
	}

	return attemptDB
}

func ToDomainList(attemptsDB []AttemptDB) []entities.AssignmentAttempt {
	result := make([]entities.AssignmentAttempt, len(attemptsDB))
	for i := range attemptsDB {
		result[i] = *ToDomain(&attemptsDB[i])
	}
	return result
}
