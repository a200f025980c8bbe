package order

import (
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Shipped ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the only initial status of a newly created order.
	Pending

	// Confirmed means the shop accepted the order.
	Confirmed

	// Shipped means the order left the warehouse. It can no longer be cancelled.
	Shipped

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

// allowedTransitions is the complete transition policy. A status missing from the
// map, or mapped to an empty list, has no outgoing transitions.
//
//nolint:gochecknoglobals // read-only policy table
var allowedTransitions = map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Shipped, Cancelled},
	Shipped:   {Delivered},
	Delivered: {},
	Cancelled: {},
}

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Confirmed, Shipped, Delivered, Cancelled}
}

// ParseStatus matches name case-insensitively against the valid statuses.
// Surrounding whitespace is ignored. "Unknown" is not a valid name.
//
// Example:
//
//	s, err := order.ParseStatus("shipped") // order.Shipped, nil
func ParseStatus(name string) (Status, error) {
	trimmed := strings.TrimSpace(name)
	for status, str := range getValidStatusStrings() {
		if strings.EqualFold(str, trimmed) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", name))
}

// CanTransition reports whether an order in status current may move to target.
// Both names are matched case-insensitively; an unknown name on either side yields false.
//
//	order.CanTransition("pending", "CONFIRMED") // true
//	order.CanTransition("Shipped", "Cancelled") // false
//	order.CanTransition("Pending", "Lost")      // false
func CanTransition(current, target string) bool {
	from, err := ParseStatus(current)
	if err != nil {
		return false
	}
	to, err := ParseStatus(target)
	if err != nil {
		return false
	}
	return from.CanTransitionTo(to)
}

// Validate checks if the Status value is one of the five lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo looks target up in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns a copy of the targets reachable from s.
func (s Status) AllowedTransitions() []Status {
	targets := allowedTransitions[s]
	out := make([]Status, len(targets))
	copy(out, targets)
	return out
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(allowedTransitions[s]) == 0
}
