package assignment

import "time"

type AttemptDB struct {
	Token             int64
	OrderID           string
	TargetCourierID   *int64
	TargetExternal    bool
	State             string
	Optimistic        bool
	AppliedAt         *time.Time
	PreviousCourierID *int64
	PreviousExternal  *bool
	PreviousPhone     *string
	PreviousUpdatedAt time.Time
	Deadline          time.Time
	Reason            string
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}
