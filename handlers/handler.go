package handlers

import (
	"strings"

	"callmeback-api/verifier"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Handler carries the shared database handle and the injected verifier
// capabilities. It is constructed once in main and owns no other state.
type Handler struct {
	DB            *gorm.DB
	Payments      verifier.PaymentVerifier
	Identity      verifier.IdentityVerifier
	RazorpayKeyID string
}

func New(db *gorm.DB, payments verifier.PaymentVerifier, identity verifier.IdentityVerifier, razorpayKeyID string) *Handler {
	return &Handler{
		DB:            db,
		Payments:      payments,
		Identity:      identity,
		RazorpayKeyID: razorpayKeyID,
	}
}

func newID() string {
	return uuid.NewString()
}

// newReferralCode generates an 8-character uppercase share code.
func newReferralCode() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:8])
}

// newOrderID mimics the gateway's order id shape: order_<12 hex chars>.
func newOrderID() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "order_" + hex[:12]
}
