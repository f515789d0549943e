package validators

import "errors"

var (
	ErrQuantityTooSmall          = errors.New("quantity must be at least 1")
	ErrPaymentMethodEmpty        = errors.New("no payment method provided")
	ErrPaymentStatusInvalid      = errors.New("payment status must be 0 or 1")
	ErrConfirmationStatusInvalid = errors.New("confirmation status must be 0, 1 or 2")
)

func QuantityValidator(q int) error {
	if q < 1 {
		return ErrQuantityTooSmall
	}

	return nil
}

func PaymentMethodValidator(m string) error {
	if m == "" {
		return ErrPaymentMethodEmpty
	}

	return nil
}

func PaymentStatusValidator(s int) error {
	if s != 0 && s != 1 {
		return ErrPaymentStatusInvalid
	}

	return nil
}

func ConfirmationStatusValidator(s int) error {
	if s < 0 || s > 2 {
		return ErrConfirmationStatusInvalid
	}

	return nil
}
