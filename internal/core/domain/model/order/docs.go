// Package order contains the Order aggregate, its Item entities and the Status
// lifecycle with its fixed transition table.
//
// CanTransition is a pure policy check over status names. It does no I/O and is
// shared by the aggregate (ChangeStatus) and by callers that only want to pre-validate
// a transition.
package order
