// Package verifier holds the pluggable external verification capabilities:
// payment gateway signature checks and identity provider token checks.
package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrBadSignature = errors.New("payment signature mismatch")

// PaymentVerifier checks that a payment reported by the client is authentic
// before the account is granted premium.
type PaymentVerifier interface {
	Verify(orderID, paymentID, signature string) error
}

// RazorpayVerifier validates the Razorpay checkout signature:
// HMAC-SHA256 over "<order_id>|<payment_id>" keyed with the key secret.
type RazorpayVerifier struct {
	KeySecret string
}

func (v RazorpayVerifier) Verify(orderID, paymentID, signature string) error {
	mac := hmac.New(sha256.New, []byte(v.KeySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrBadSignature
	}
	return nil
}

// MockPaymentVerifier accepts every payment. It stands in for the gateway
// until real keys are configured and must not be used in production.
type MockPaymentVerifier struct{}

func (MockPaymentVerifier) Verify(orderID, paymentID, signature string) error {
	return nil
}
