// Package services contains domain services that implement business logic
// spanning the order aggregate and its workflow policy.
//
// The package provides the TransitionAuthority service, the single decision
// point for order status changes. It combines the workflow graph with a
// fixed role permission table and returns either an accepted Decision or a
// TransitionRejectedError explaining why the request was refused.
package services
