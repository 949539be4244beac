package handlers

import (
	"net/http"

	"callmeback-api/middleware"

	"github.com/gin-gonic/gin"
)

// PlanStatus reports the current plan as stored. Expiry is detected lazily at
// reminder creation, so a lapsed premium plan can still show here until the
// next creation attempt.
func (h *Handler) PlanStatus(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"plan_type":      user.PlanType,
		"plan_expiry":    user.PlanExpiry,
		"reminder_count": user.ReminderCount,
	})
}

func (h *Handler) Profile(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, userSummary(user))
}
