package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetPasswordHTML(t *testing.T) {
	link := "http://localhost:3000/reset-password?token=abc.def.ghi"
	body := ResetPasswordHTML("Jane Doe", link)

	assert.Contains(t, body, "Jane Doe")
	assert.Contains(t, body, `href="`+link+`"`)
	// The link is repeated as copyable text for clients that strip buttons.
	assert.Contains(t, body, "<code>"+link+"</code>")
	assert.Contains(t, body, "expire in 1 hour")
}

func TestPaymentOTPHTML(t *testing.T) {
	body := PaymentOTPHTML("482913", 45050, "Momo House")

	assert.Contains(t, body, "482913")
	assert.Contains(t, body, "Rs. 450.50")
	assert.Contains(t, body, "Momo House")
	assert.Contains(t, body, "5 minutes")
}

func TestPaymentOTPHTML_AmountPadding(t *testing.T) {
	body := PaymentOTPHTML("100000", 5, "Momo House")
	assert.Contains(t, body, "Rs. 0.05")
}
