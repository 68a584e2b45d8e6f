package order

import (
	"fmt"

	"burgershop/internal/pkg/errs"
)

// StatusPolicy decides which status transitions are legal.
//
// The policy is pluggable because two behaviors are plausible for this
// system: the permissive one the original service shipped with (any
// recognized status may follow any other) and the forward-only kitchen
// workflow. Terminal statuses reject outgoing transitions under every
// policy; that rule is not negotiable per policy.
type StatusPolicy interface {
	// Authorize returns nil if the transition from one status to another is
	// allowed, or a descriptive error otherwise. Both statuses are assumed
	// to be valid; callers validate them first.
	Authorize(from, to Status) error
}

// ForwardGraphPolicy allows only the forward kitchen workflow:
//
//	pending   -> preparing, cancelled
//	preparing -> ready, cancelled
//	ready     -> delivered, cancelled
//
// This is the default policy.
type ForwardGraphPolicy struct{}

// NewForwardGraphPolicy creates the default forward-only transition policy.
func NewForwardGraphPolicy() ForwardGraphPolicy {
	return ForwardGraphPolicy{}
}

func forwardTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Preparing, Cancelled},
		Preparing: {Ready, Cancelled},
		Ready:     {Delivered, Cancelled},
	}
}

// Authorize implements StatusPolicy.
func (ForwardGraphPolicy) Authorize(from, to Status) error {
	if from.IsTerminal() {
		return errs.NewStateConflictErrorWithCause(
			"order", from.String(),
			fmt.Errorf("%s is a terminal status", from),
		)
	}

	for _, allowed := range forwardTransitions()[from] {
		if allowed == to {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("transition from %s to %s is not allowed", from, to),
	)
}

// AnyStatusPolicy reproduces the permissive behavior of the original
// service: any recognized status may follow any non-terminal status.
type AnyStatusPolicy struct{}

// NewAnyStatusPolicy creates the permissive transition policy.
func NewAnyStatusPolicy() AnyStatusPolicy {
	return AnyStatusPolicy{}
}

// Authorize implements StatusPolicy.
func (AnyStatusPolicy) Authorize(from, _ Status) error {
	if from.IsTerminal() {
		return errs.NewStateConflictErrorWithCause(
			"order", from.String(),
			fmt.Errorf("%s is a terminal status", from),
		)
	}
	return nil
}
