package order

import (
	"fmt"
	"time"

	"burgershop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The nominal forward path is:
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	   │            │           │
//	   └────────────┴───────────┴────> Cancelled
//
// Delivered and Cancelled are terminal: a terminal order accepts no further
// transitions and its line items are frozen. Which non-terminal transitions
// are legal is decided by a StatusPolicy, not by Status itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly created order.
	Pending

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is prepared and waiting to be handed over.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Preparing: "preparing",
		Ready:     "ready",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its string representation.
// Returns a validation error for unrecognized values, so malformed input is
// rejected before any lookup or write happens.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Preparing, Ready, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the lowercase name of the status, e.g. "pending".
// Returns "unknown" for invalid status values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
// Line items of a terminal order are frozen.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// StatusChange records that an order entered a status at a point in time.
// Changes are append-only: together they form the order's status history.
type StatusChange struct {
	status    Status
	changedAt time.Time
}

// NewStatusChange creates a history entry for the given status and time.
func NewStatusChange(status Status, changedAt time.Time) (StatusChange, error) {
	if err := status.Validate(); err != nil {
		return StatusChange{}, err
	}
	if changedAt.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("changedAt")
	}
	return StatusChange{status: status, changedAt: changedAt}, nil
}

// Status returns the status that was entered.
func (c StatusChange) Status() Status {
	return c.status
}

// ChangedAt returns when the status was entered.
func (c StatusChange) ChangedAt() time.Time {
	return c.changedAt
}
