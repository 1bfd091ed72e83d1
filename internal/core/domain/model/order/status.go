package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is the sentinel for every rejected status change.
// Callers branch on it with errors.Is; the concrete *InvalidTransitionError
// carries the from/to pair.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrStaleStatus is returned when a conditional status write finds that the
// order's persisted status no longer matches the status the transition was
// validated against. The caller should re-read the order and retry if the
// transition still applies.
var ErrStaleStatus = fmt.Errorf("%w: status changed concurrently", ErrInvalidTransition)

// InvalidTransitionError reports a status change that the lifecycle does not allow.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// Status represents the lifecycle state of a supply order.
// It implements a state machine with a total order of normal progress:
//
//	Pending -> Approved -> Preparing -> Ready -> Dispatched -> Delivered -> Returned
//
// Cancelled is reachable from any state before Dispatched. Delivered,
// Returned, and Cancelled are terminal, except for the single
// Delivered -> Returned transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// The zero value helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a newly created order, awaiting approval.
	Pending

	// Approved means the order was accepted by staff or self-approved by the
	// customer with a claimed credential.
	Approved

	// Preparing means warehouse staff are assembling the order.
	Preparing

	// Ready means the order is assembled and waiting for dispatch.
	Ready

	// Dispatched means the order left the warehouse; stock has been deducted.
	Dispatched

	// Delivered means the recipient confirmed receipt with a claimed credential.
	Delivered

	// Returned means delivered goods came back, possibly damaged or incomplete.
	Returned

	// Cancelled means the order was abandoned before dispatch.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Approved:   "Approved",
		Preparing:  "Preparing",
		Ready:      "Ready",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Returned:   "Returned",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Approved:   "Approved",
		Preparing:  "Preparing",
		Ready:      "Ready",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Returned:   "Returned",
		Cancelled:  "Cancelled",
	}
}

// transitions enumerates every allowed status change. There is no implicit
// skipping of states: a request whose current status is not exactly the
// documented "from" state is rejected outright.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Approved, Cancelled},
		Approved:   {Preparing, Cancelled},
		Preparing:  {Ready, Cancelled},
		Ready:      {Dispatched, Cancelled},
		Dispatched: {Delivered},
		Delivered:  {Returned},
	}
}

// Validate checks that the Status value is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return &InvalidTransitionError{From: s, To: s}
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the lifecycle allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the lifecycle allows the change, otherwise
// an *InvalidTransitionError. All aggregate transition methods go through here.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, &InvalidTransitionError{From: s, To: target}
	}
	return target, nil
}

// IsTerminal reports whether no further normal progress is possible.
// Delivered counts as terminal even though Returned remains reachable from
// it; active-order listings therefore keep Delivered and exclude only
// Returned and Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Returned || s == Cancelled
}

// IsGated reports whether entering this status requires a claimed credential.
func (s Status) IsGated() bool {
	return s == Delivered
}
