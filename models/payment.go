package models

import "time"

// PaymentRecord is an append-only audit log of verified payments.
// Rows are never updated after insertion.
type PaymentRecord struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"index" json:"user_id"`
	OrderID    string    `json:"order_id"`
	PaymentID  string    `json:"payment_id"`
	Signature  string    `json:"-"`
	PlanType   string    `json:"plan_type"` // "monthly" or "quarterly" as requested by the client
	ExpiryDate time.Time `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
