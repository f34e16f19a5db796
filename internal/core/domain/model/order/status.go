package order

import (
	"errors"
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// ErrStatusTransitionIsForbidden marks a move that goes backwards, repeats the
// current state or leaves the terminal state.
var ErrStatusTransitionIsForbidden = errors.New("status transition is forbidden")

// Status represents the lifecycle state of an order.
//
// State transitions are linear and forward-only:
//
//	Created ──> Dispatched ──> InTransit ──> Delivered
//	   │             │                          ▲
//	   └─────────────┴──────────────────────────┘
//	          (intermediate states may be skipped)
//
// Delivered is terminal. The persisted form is the status name.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status of every new order.
	Created

	// Dispatched indicates the package has been handed over for delivery.
	Dispatched

	// InTransit indicates a drone is carrying the package.
	InTransit

	// Delivered is the terminal status.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Created:    "Created",
		Dispatched: "Dispatched",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "Created",
		Dispatched: "Dispatched",
		InTransit:  "InTransit",
		Delivered:  "Delivered",
	}
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Created, Dispatched, InTransit, Delivered}
}

// ParseStatus converts a persisted or user supplied status name into a Status.
// Matching is case-insensitive; "Unknown" and unrecognized names are rejected.
//
// Example:
//
//	s, err := order.ParseStatus("intransit") // InTransit, nil
func ParseStatus(name string) (Status, error) {
	name = strings.TrimSpace(name)
	for s, str := range getValidStatusStrings() {
		if strings.EqualFold(str, name) {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks if the Status value is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. Safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// ValidateTransition checks that moving from s to next goes strictly forward.
//
// Returns:
//   - nil when next comes after s in the lifecycle
//   - a ValueIsInvalidError when either status is not a valid lifecycle state
//   - an error wrapping both ErrStatusTransitionIsForbidden and errs.ErrValueIsInvalid
//     when next does not come after s
//
// Example:
//
//	if err := current.ValidateTransition(order.Delivered); err != nil {
//	    return err
//	}
func (s Status) ValidateTransition(next Status) error {
	if err := errors.Join(s.Validate(), next.Validate()); err != nil {
		return err
	}

	if s.IsTerminal() {
		return forbidden(fmt.Errorf("%s is terminal", s))
	}

	if next <= s {
		return forbidden(fmt.Errorf("%s cannot move back to %s", s, next))
	}

	return nil
}

func forbidden(cause error) error {
	return fmt.Errorf("%w: %w", ErrStatusTransitionIsForbidden,
		errs.NewValueIsInvalidErrorWithCause("status is invalid", cause))
}
