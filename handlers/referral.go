package handlers

import (
	"log"
	"time"

	"callmeback-api/models"
)

// referralRewardThreshold is the number of referred signups that earns the
// referrer a time-boxed premium grant.
const (
	referralRewardThreshold = 5
	referralRewardDays      = 15
)

// rewardReferrerIfEligible grants the referrer 15 days of premium once their
// referral count reaches the threshold. The referral_reward_given guard in the
// WHERE clause makes the grant fire at most once per account, no matter how
// many more referrals arrive. Runs synchronously on the registration path.
func (h *Handler) rewardReferrerIfEligible(referrerID string) {
	var count int64
	if err := h.DB.Model(&models.User{}).Where("referred_by = ?", referrerID).Count(&count).Error; err != nil {
		log.Printf("referral count failed for %s: %v", referrerID, err)
		return
	}
	if count < referralRewardThreshold {
		return
	}

	expiry := time.Now().UTC().Add(referralRewardDays * 24 * time.Hour)
	res := h.DB.Model(&models.User{}).
		Where("id = ? AND referral_reward_given = ?", referrerID, false).
		Updates(map[string]interface{}{
			"plan_type":             models.PlanPremium,
			"plan_expiry":           expiry,
			"referral_reward_given": true,
		})
	if res.Error != nil {
		log.Printf("referral reward failed for %s: %v", referrerID, res.Error)
		return
	}
	if res.RowsAffected > 0 {
		log.Printf("referral reward granted to %s (%d referrals)", referrerID, count)
	}
}
