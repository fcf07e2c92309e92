// Package order provides domain entities and business logic for order
// management in the campus marketplace. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root linking a buyer, a seller, and a listing
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Buyer and seller must be different students
//   - Status follows a fixed workflow:
//     Pending -> Negotiating -> Approved -> PaymentPending -> Paid -> Completed,
//     with cancellation possible from any pre-paid status
//   - Rejected, Completed, and Cancelled are terminal; skipping states is not allowed
//   - The total price is a snapshot of the listing price at creation time
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
