package credential

import (
	"fmt"
	"time"

	"eventsupply/internal/pkg/errs"
)

// Purpose is the specific action a credential authorizes. Credentials are
// never valid across purposes: a login code cannot confirm a delivery.
type Purpose int

const (
	// PurposeUnknown represents an invalid or undefined purpose.
	PurposeUnknown Purpose = iota

	// PurposeLogin gates actor sign-in.
	PurposeLogin

	// PurposeOrderApproval gates customer self-approval of a pending order.
	PurposeOrderApproval

	// PurposeDeliveryConfirmation gates the dispatched -> delivered transition.
	PurposeDeliveryConfirmation
)

func getPurposeStrings() map[Purpose]string {
	return map[Purpose]string{
		PurposeUnknown:              "Unknown",
		PurposeLogin:                "Login",
		PurposeOrderApproval:        "OrderApproval",
		PurposeDeliveryConfirmation: "DeliveryConfirmation",
	}
}

// Validate checks that the Purpose is one of the defined gates.
func (p Purpose) Validate() error {
	switch p {
	case PurposeLogin, PurposeOrderApproval, PurposeDeliveryConfirmation:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("purpose", fmt.Errorf("%d is not a valid purpose", p))
	}
}

// String returns the human-readable name of the purpose.
func (p Purpose) String() string {
	if str, ok := getPurposeStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// TTL returns how long a credential issued for this purpose stays claimable.
// Delivery confirmation runs on a tighter window than login and approval.
func (p Purpose) TTL() time.Duration {
	if p == PurposeDeliveryConfirmation {
		return 5 * time.Minute
	}
	return 10 * time.Minute
}
