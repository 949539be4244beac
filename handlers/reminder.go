package handlers

import (
	"net/http"
	"time"

	"callmeback-api/middleware"
	"callmeback-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	listCap       = 100 // defensive limit, not a pagination contract
	dueSoonCap    = 10
	dueSoonWindow = time.Minute
)

type ReminderCreateInput struct {
	NameToCall  string    `json:"name_to_call" binding:"required"`
	PhoneNumber string    `json:"phone_number" binding:"required"`
	Description string    `json:"description"`
	DateTime    time.Time `json:"date_time" binding:"required"`
}

// CreateReminder inserts a new active reminder after the plan/quota gate.
//
// The gate runs in two steps. First, a premium account past its expiry is
// downgraded with a single conditional write and the request is rejected:
// the grace window just ended, even though the account is now free. Second,
// the quota slot is reserved with one conditional increment so concurrent
// requests near the limit cannot both pass a stale read.
func (h *Handler) CreateReminder(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input ReminderCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	now := time.Now().UTC()
	if user.PremiumExpired(now) {
		h.DB.Model(&models.User{}).
			Where("id = ? AND plan_type = ?", user.ID, models.PlanPremium).
			Updates(map[string]interface{}{"plan_type": models.PlanFree, "plan_expiry": nil})
		c.JSON(http.StatusForbidden, gin.H{"error": "Premium plan expired. Please renew to create more reminders."})
		return
	}

	res := h.DB.Model(&models.User{}).
		Where("id = ? AND (plan_type <> ? OR reminder_count < ?)", user.ID, models.PlanFree, models.FreeReminderLimit).
		UpdateColumn("reminder_count", gorm.Expr("reminder_count + 1"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "Free plan limit reached. Upgrade to premium for unlimited reminders."})
		return
	}

	reminder := models.Reminder{
		ID:          newID(),
		UserID:      user.ID,
		NameToCall:  input.NameToCall,
		PhoneNumber: input.PhoneNumber,
		Description: input.Description,
		DateTime:    input.DateTime,
		Status:      models.ReminderActive,
		CreatedAt:   now,
	}
	if err := h.DB.Create(&reminder).Error; err != nil {
		// Release the reserved slot so the counter stays consistent.
		h.DB.Model(&models.User{}).
			Where("id = ?", user.ID).
			UpdateColumn("reminder_count", gorm.Expr("reminder_count - 1"))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reminder"})
		return
	}

	c.JSON(http.StatusOK, reminder)
}

// ListReminders returns the account's active and triggered reminders,
// soonest first.
func (h *Handler) ListReminders(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reminders := []models.Reminder{}
	err := h.DB.
		Where("user_id = ? AND status IN ?", user.ID, []string{models.ReminderActive, models.ReminderTriggered}).
		Order("date_time asc").
		Limit(listCap).
		Find(&reminders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reminders"})
		return
	}

	c.JSON(http.StatusOK, reminders)
}

// DeleteReminder soft-deletes: the row is kept for the audit trail and only
// excluded from listings. The status guard makes a repeated delete 404 instead
// of decrementing the counter twice.
func (h *Handler) DeleteReminder(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res := h.DB.Model(&models.Reminder{}).
		Where("id = ? AND user_id = ? AND status <> ?", c.Param("id"), user.ID, models.ReminderDeleted).
		UpdateColumn("status", models.ReminderDeleted)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reminder"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	h.DB.Model(&models.User{}).
		Where("id = ?", user.ID).
		UpdateColumn("reminder_count", gorm.Expr("reminder_count - 1"))

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}

// CheckReminders is the polling primitive for an external notifier: active
// reminders due within the next minute. This service never places the call.
func (h *Handler) CheckReminders(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	now := time.Now().UTC()
	var reminders []models.Reminder
	err := h.DB.
		Where("user_id = ? AND status = ? AND date_time >= ? AND date_time <= ?",
			user.ID, models.ReminderActive, now, now.Add(dueSoonWindow)).
		Order("date_time asc").
		Limit(dueSoonCap).
		Find(&reminders).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check reminders"})
		return
	}

	due := make([]gin.H, 0, len(reminders))
	for _, r := range reminders {
		due = append(due, gin.H{
			"id":           r.ID,
			"name_to_call": r.NameToCall,
			"phone_number": r.PhoneNumber,
			"description":  r.Description,
			"date_time":    r.DateTime,
		})
	}

	c.JSON(http.StatusOK, due)
}

// CompleteReminder marks a reminder completed. Completing an unknown or
// foreign reminder is a 404, same as delete; the reminder count is unchanged
// because completed reminders still hold their quota slot.
func (h *Handler) CompleteReminder(c *gin.Context) {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	res := h.DB.Model(&models.Reminder{}).
		Where("id = ? AND user_id = ? AND status <> ?", c.Param("id"), user.ID, models.ReminderDeleted).
		UpdateColumn("status", models.ReminderCompleted)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete reminder"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder completed"})
}
