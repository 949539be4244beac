package handlers

import (
	"net/http"
	"time"

	"callmeback-api/models"
	"callmeback-api/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	ReferralCode string `json:"referral_code"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleAuthInput struct {
	IDToken string `json:"id_token" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name" binding:"required"`
}

func userSummary(u *models.User) gin.H {
	return gin.H{
		"id":             u.ID,
		"name":           u.Name,
		"email":          u.Email,
		"plan_type":      u.PlanType,
		"plan_expiry":    u.PlanExpiry,
		"reminder_count": u.ReminderCount,
		"referral_code":  u.ReferralCode,
	}
}

func (h *Handler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:           newID(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		PlanType:     models.PlanFree,
		ReferralCode: newReferralCode(),
		CreatedAt:    time.Now().UTC(),
	}

	// An unknown referral code is ignored rather than rejected: the signup
	// itself must not fail over a mistyped share link.
	var referrerID string
	if input.ReferralCode != "" {
		var referrer models.User
		if err := h.DB.Where("referral_code = ?", input.ReferralCode).First(&referrer).Error; err == nil {
			user.ReferredBy = referrer.ID
			referrerID = referrer.ID
		}
	}

	if err := h.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	if referrerID != "" {
		h.rewardReferrerIfEligible(referrerID)
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userSummary(&user)})
}

func (h *Handler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	// Same message whether the email is unknown or the password is wrong.
	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userSummary(&user)})
}

// GoogleAuth signs a user in via a Google ID token, creating the account on
// first sight. Token validation is delegated to the injected verifier.
func (h *Handler) GoogleAuth(c *gin.Context) {
	var input GoogleAuthInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	if err := h.Identity.Verify(c.Request.Context(), input.IDToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid Google token"})
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		user = models.User{
			ID:           newID(),
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: "", // no password for Google accounts
			AuthProvider: "google",
			PlanType:     models.PlanFree,
			ReferralCode: newReferralCode(),
			CreatedAt:    time.Now().UTC(),
		}
		if err := h.DB.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": userSummary(&user)})
}
