package handlers

import (
	"net/http"
	"time"

	"callmeback-api/middleware"
	"callmeback-api/models"

	"github.com/gin-gonic/gin"
)

const (
	monthlyPlanDays   = 30
	quarterlyPlanDays = 90
)

type CreateOrderInput struct {
	Amount   int    `json:"amount" binding:"required"`
	PlanType string `json:"plan_type" binding:"required"`
}

type VerifyPaymentInput struct {
	OrderID   string `json:"order_id" binding:"required"`
	PaymentID string `json:"payment_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
	PlanType  string `json:"plan_type" binding:"required"` // "monthly" or "quarterly"
}

// CreateOrder hands out an order id for the checkout flow. Amount and plan
// type are pass-through: pricing policy lives with the gateway integration,
// not here. No account state changes.
func (h *Handler) CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order_id": newOrderID(),
		"amount":   input.Amount,
		"currency": "INR",
		"key":      h.RazorpayKeyID,
	})
}

// VerifyPayment upgrades the account to premium once the injected verifier
// accepts the gateway signature, then appends an audit record. A plan type
// other than "monthly" gets the quarterly expiry, matching the original
// fall-through.
func (h *Handler) VerifyPayment(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if err := h.Payments.Verify(input.OrderID, input.PaymentID, input.Signature); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment verification failed"})
		return
	}

	days := quarterlyPlanDays
	if input.PlanType == "monthly" {
		days = monthlyPlanDays
	}
	expiry := time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour)

	err := h.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"plan_type":   models.PlanPremium,
			"plan_expiry": expiry,
		}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update plan"})
		return
	}

	record := models.PaymentRecord{
		ID:         newID(),
		UserID:     user.ID,
		OrderID:    input.OrderID,
		PaymentID:  input.PaymentID,
		Signature:  input.Signature,
		PlanType:   input.PlanType,
		ExpiryDate: expiry,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.DB.Create(&record).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Payment verified successfully",
		"plan_type":   models.PlanPremium,
		"plan_expiry": expiry,
	})
}
