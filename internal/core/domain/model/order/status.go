package order

import (
	"fmt"
	"strings"

	"shipmate/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──accept──> Accepted ──deliver──> Delivered
//	   │
//	   └──expire──> Expired
//
// Accepted, Delivered and Expired never go back to Pending.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending orders have no traveller and form the pool travellers pick from.
	Pending

	// Accepted orders have exactly one traveller assigned.
	Accepted

	// Delivered is final.
	Delivered

	// Expired orders were never picked up before the TTL ran out. Final.
	Expired
)

// Reason codes attached to the conflict errors Order raises on invalid transitions.
const (
	ReasonOrderNotAvailable = "order_not_available"
	ReasonOrderNotAccepted  = "order_not_accepted"
	ReasonOrderNotYours     = "order_assigned_to_another_traveller"
	ReasonOrderNotExpirable = "order_not_expirable"
	ReasonOwnOrder          = "own_order"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Delivered: "delivered",
		Expired:   "expired",
	}
}

// ParseStatus converts the wire representation back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == strings.ToLower(strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values coming from storage or callers.
func (s Status) Validate() error {
	if s <= Unknown || s > Expired {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHaveTraveller checks that the status agrees with the traveller assignment:
// Pending and Expired orders have none, Accepted and Delivered orders must have one.
func (s Status) ValidateCanHaveTraveller(traveller bool) error {
	if traveller && (s == Pending || s == Expired) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a traveller", s),
		)
	}

	if !traveller && (s == Accepted || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no traveller", s),
		)
	}

	return nil
}

// Accept transitions Pending to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s),
		)
	}
	return Accepted, nil
}

// Deliver transitions Accepted to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s),
		)
	}
	return Delivered, nil
}

// Expire transitions Pending to Expired.
func (s Status) Expire() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to expire", s),
		)
	}
	return Expired, nil
}
