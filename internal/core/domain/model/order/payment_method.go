package order

import (
	"fmt"

	"burgershop/internal/pkg/errs"
)

// PaymentMethod represents the payment method the customer chose when
// placing the order. Only the choice is recorded; payment capture happens
// outside this system.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// PaymentCash is payment in cash at the counter.
	PaymentCash

	// PaymentCard is payment by debit or credit card.
	PaymentCard

	// PaymentTransfer is payment by bank or mobile transfer.
	PaymentTransfer
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown:  "unknown",
		PaymentCash:     "cash",
		PaymentCard:     "card",
		PaymentTransfer: "transfer",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		PaymentCash:     "cash",
		PaymentCard:     "card",
		PaymentTransfer: "transfer",
	}
}

// PaymentMethodFromString parses a payment method from its string
// representation. An empty string is a missing required value; any other
// unrecognized string is invalid. Both are rejected before any lookup
// or write happens.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return PaymentUnknown, errs.NewValueIsRequiredError("paymentMethod")
	}
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a recognized payment method", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the lowercase name of the payment method, e.g. "cash".
// Returns "unknown" for invalid values. Implements fmt.Stringer.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}
