// Package services contains domain services: business logic that spans
// aggregates or does not naturally belong to a single aggregate.
//
// TransitionPolicy decides which actor may drive which order status
// transition. It is deliberately separate from the state machine's legality
// table so raw legality and role policy can be tested and evolved
// independently.
package services
