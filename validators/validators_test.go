package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("user@example.com"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("longenough"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong)
}

func TestQuantityValidator(t *testing.T) {
	assert.NoError(t, QuantityValidator(1))
	assert.ErrorIs(t, QuantityValidator(0), ErrQuantityTooSmall)
	assert.ErrorIs(t, QuantityValidator(-3), ErrQuantityTooSmall)
}

func TestPaymentMethodValidator(t *testing.T) {
	assert.NoError(t, PaymentMethodValidator("transfer"))
	assert.ErrorIs(t, PaymentMethodValidator(""), ErrPaymentMethodEmpty)
}

func TestPaymentStatusValidator(t *testing.T) {
	assert.NoError(t, PaymentStatusValidator(0))
	assert.NoError(t, PaymentStatusValidator(1))
	assert.ErrorIs(t, PaymentStatusValidator(2), ErrPaymentStatusInvalid)
	assert.ErrorIs(t, PaymentStatusValidator(-1), ErrPaymentStatusInvalid)
}

func TestConfirmationStatusValidator(t *testing.T) {
	for s := 0; s <= 2; s++ {
		assert.NoError(t, ConfirmationStatusValidator(s))
	}
	assert.ErrorIs(t, ConfirmationStatusValidator(3), ErrConfirmationStatusInvalid)
	assert.ErrorIs(t, ConfirmationStatusValidator(-1), ErrConfirmationStatusInvalid)
}
