package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssignmentTarget - курьер из ростера или внешний.
type AssignmentTarget struct {
	CourierID *int64
	External  bool
}

func (t AssignmentTarget) IsValid() bool {
	return (t.CourierID != nil) != t.External
}

type AssignmentState string

const (
	AssignmentRequesting     AssignmentState = "requesting"
	AssignmentAccepted       AssignmentState = "accepted"
	AssignmentRejected       AssignmentState = "rejected"
	AssignmentTimedOut       AssignmentState = "timed_out"
	AssignmentDispatchFailed AssignmentState = "dispatch_failed"
	AssignmentSuperseded     AssignmentState = "superseded"
)

func (s AssignmentState) String() string {
	return string(s)
}

// ReasonDispatchUnavailable - причина для попыток, не дождавшихся ответа канала.
const ReasonDispatchUnavailable = "DispatchUnavailable"

func (s AssignmentState) IsPending() bool {
	return s == AssignmentRequesting
}

// AssignmentAttempt - учет токенов. Token монотонно растет (sequence в БД),
// актуальной для заказа считается попытка с максимальным токеном.
type AssignmentAttempt struct {
	Token             int64
	OrderID           string
	Target            AssignmentTarget
	State             AssignmentState
	Optimistic        bool
	AppliedAt         *time.Time
	PreviousCourier   *CourierRef
	PreviousUpdatedAt time.Time
	Deadline          time.Time
	Reason            string
	CreatedAt         time.Time
	ResolvedAt        *time.Time
}

type AssignmentAttemptModify struct {
	Token      *int64
	State      *AssignmentState
	Optimistic *bool
	AppliedAt  *time.Time
	Reason     *string
	ResolvedAt *time.Time
}

// AssignmentRequest - сообщение во внешний канал диспетчеризации, живет только на время рукопожатия.
type AssignmentRequest struct {
	RequestID        string
	OrderID          string
	Token            int64
	Target           AssignmentTarget
	CourierName      string
	CourierPhone     string
	CustomerName     string
	CustomerPhone    string
	Address          *Address
	DeliveryAt       time.Time
	CollectionAmount decimal.Decimal
	Note             string
}

type DispatchAck struct {
	Accepted bool
	Message  string
}

type ReconciliationOutcome string

const (
	OutcomeAccept ReconciliationOutcome = "accept"
	OutcomeReject ReconciliationOutcome = "reject"
)

func (o ReconciliationOutcome) String() string {
	return string(o)
}

// ReconciliationEvent - асинхронный accept/reject от канала, доставка at-least-once.
type ReconciliationEvent struct {
	OrderID      string
	Token        int64
	Outcome      ReconciliationOutcome
	CourierPhone string
}
