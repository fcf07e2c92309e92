package services

import (
	"errors"

	"campusmarket/internal/core/domain/model/kernel"
	"campusmarket/internal/core/domain/model/order"
)

// ErrNotAuthorized indicates the acting student lacks the role required for
// the requested transition.
var ErrNotAuthorized = errors.New("actor is not authorized for this transition")

// TransitionPolicy overlays role-based authorization on top of raw state
// machine legality. Legality ("is PENDING -> NEGOTIATING in the table?") and
// policy ("may this student drive it?") are checked as two composable steps.
//
// Current policy: Approved and Rejected are seller decisions; cancellation
// requires being a party to the order; every other legal transition may be
// driven by any resolved participant.
type TransitionPolicy struct{}

// NewTransitionPolicy creates the policy service.
func NewTransitionPolicy() *TransitionPolicy {
	return &TransitionPolicy{}
}

// AuthorizeTransition checks whether the acting student may drive the order
// to next. It assumes the transition itself has already been validated
// against the state machine.
func (p *TransitionPolicy) AuthorizeTransition(o *order.Order, actorID kernel.UUID, next order.Status) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	if (next == order.Approved || next == order.Rejected) && !o.IsSeller(actorID) {
		return ErrNotAuthorized
	}

	return nil
}

// AuthorizeCancellation checks whether the acting student may cancel the
// order. Either party may cancel; third parties may not.
func (p *TransitionPolicy) AuthorizeCancellation(o *order.Order, actorID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}

	if !o.IsParticipant(actorID) {
		return ErrNotAuthorized
	}

	return nil
}
