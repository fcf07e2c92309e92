package order

import (
	"errors"
	"fmt"
	"strings"

	"campusmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
// It implements a state machine with a fixed transition table so that the
// same legality rule backs both direct status updates and the cancel shortcut.
//
// State transitions:
//
//	Pending ──> Negotiating ──> Approved ──> PaymentPending ──> Paid ──> Completed
//	   │             │              │               │
//	   │             ├──> Rejected  │               │
//	   └─────────────┴──────────────┴───────────────┴──> Cancelled
//
// Rejected, Completed, and Cancelled are terminal. Transitions to the same
// status or skipping intermediate states are invalid.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a buyer places an order.
	Pending

	// Negotiating indicates buyer and seller are discussing terms.
	Negotiating

	// Approved indicates the seller accepted the order.
	Approved

	// Rejected indicates the seller declined the order. Terminal.
	Rejected

	// PaymentPending indicates the buyer is expected to pay.
	PaymentPending

	// Paid indicates payment completed. The order can no longer be cancelled.
	Paid

	// Completed indicates the transaction finished. Terminal.
	// Completing an order marks its listing unavailable.
	Completed

	// Cancelled indicates either party aborted the order pre-payment. Terminal.
	Cancelled
)

// Sentinel errors for state machine violations.
var (
	ErrInvalidTransition      = errors.New("invalid status transition")
	ErrCancellationNotAllowed = errors.New("cancellation not allowed")
)

// allowedTransitions is the fixed legality table. It is built once at process
// start and never mutated, so it is safe to share across concurrent requests.
var allowedTransitions = map[Status][]Status{
	Pending:        {Negotiating, Cancelled},
	Negotiating:    {Approved, Rejected, Cancelled},
	Approved:       {PaymentPending, Cancelled},
	PaymentPending: {Paid, Cancelled},
	Paid:           {Completed},
	Rejected:       {},
	Completed:      {},
	Cancelled:      {},
}

// cancellableStatuses is the pre-paid set eligible for cancellation.
var cancellableStatuses = map[Status]bool{
	Pending:        true,
	Negotiating:    true,
	Approved:       true,
	PaymentPending: true,
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Negotiating:    "NEGOTIATING",
		Approved:       "APPROVED",
		Rejected:       "REJECTED",
		PaymentPending: "PAYMENT_PENDING",
		Paid:           "PAID",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Negotiating:    "NEGOTIATING",
		Approved:       "APPROVED",
		Rejected:       "REJECTED",
		PaymentPending: "PAYMENT_PENDING",
		Paid:           "PAID",
		Completed:      "COMPLETED",
		Cancelled:      "CANCELLED",
	}
}

// StatusFromString parses a status name as received on the wire.
// Parsing is case-insensitive. Returns an error for unknown names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the eight defined statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed || s == Cancelled
}

// IsActive reports whether an order in this status still blocks a duplicate
// order for the same buyer and listing. Paid counts as active even though it
// is no longer cancellable.
func (s Status) IsActive() bool {
	return s != Rejected && s != Cancelled && s != Completed && s != Unknown
}

// CanTransitionTo reports whether the transition from s to next is in the
// legality table. Transitions to the same status are invalid, as are
// transitions that skip intermediate states.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from s in a fresh slice.
// Terminal and unknown statuses yield an empty slice.
func (s Status) AllowedTransitions() []Status {
	allowed := allowedTransitions[s]
	result := make([]Status, len(allowed))
	copy(result, allowed)
	return result
}

// CanCancel reports whether s is in the pre-paid set
// {Pending, Negotiating, Approved, PaymentPending}.
func (s Status) CanCancel() bool {
	return cancellableStatuses[s]
}

// ValidateTransition returns an InvalidTransitionError unless the transition
// from s to next is legal.
func (s Status) ValidateTransition(next Status) error {
	if !s.CanTransitionTo(next) {
		return &InvalidTransitionError{From: s, To: next, Allowed: s.AllowedTransitions()}
	}
	return nil
}

// ValidateCancellation returns a CancellationNotAllowedError unless s is
// cancellable.
func (s Status) ValidateCancellation() error {
	if !s.CanCancel() {
		return &CancellationNotAllowedError{Current: s}
	}
	return nil
}

// InvalidTransitionError describes a rejected status change. It carries the
// attempted transition and the allowed set so callers can render actionable
// diagnostics.
type InvalidTransitionError struct {
	From    Status
	To      Status
	Allowed []Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s (allowed: %s)",
		ErrInvalidTransition, e.From, e.To, formatStatuses(e.Allowed))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// CancellationNotAllowedError describes a cancel attempt from a
// non-cancellable status.
type CancellationNotAllowedError struct {
	Current Status
}

func (e *CancellationNotAllowedError) Error() string {
	return fmt.Sprintf("%s: order is %s", ErrCancellationNotAllowed, e.Current)
}

func (e *CancellationNotAllowedError) Unwrap() error {
	return ErrCancellationNotAllowed
}

func formatStatuses(statuses []Status) string {
	if len(statuses) == 0 {
		return "none"
	}
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
