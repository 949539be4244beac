package models

import "time"

const (
	PlanFree    = "free"
	PlanPremium = "premium"
)

// FreeReminderLimit is the quota of non-deleted reminders on the free plan.
const FreeReminderLimit = 5

type User struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `json:"name"`
	Email        string     `gorm:"uniqueIndex" json:"email"`
	PasswordHash string     `json:"-"` // empty for accounts created via Google auth
	AuthProvider string     `json:"-"`
	PlanType     string     `json:"plan_type"`
	PlanExpiry   *time.Time `json:"plan_expiry"`

	// ReminderCount tracks non-deleted reminders. Maintained with atomic
	// increments/decrements, never recomputed by scanning reminders.
	ReminderCount int `json:"reminder_count"`

	ReferralCode        string `gorm:"uniqueIndex" json:"referral_code"`
	ReferredBy          string `gorm:"index" json:"-"`
	ReferralRewardGiven bool   `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// PremiumExpired reports whether the plan is premium with an expiry in the past.
func (u *User) PremiumExpired(now time.Time) bool {
	return u.PlanType == PlanPremium && u.PlanExpiry != nil && u.PlanExpiry.Before(now)
}
