package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"callmeback-api/middleware"
	"callmeback-api/models"
	"callmeback-api/verifier"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTest builds a router backed by a fresh in-memory database with the
// same route layout as main.
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A pooled second connection would see a different in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Reminder{}, &models.PaymentRecord{}))

	h := New(db, verifier.MockPaymentVerifier{}, verifier.InsecureIdentityVerifier{}, "rzp_test_PLACEHOLDER")

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", h.Health)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/google", h.GoogleAuth)

	authed := api.Group("")
	authed.Use(middleware.JwtAuthMiddleware())
	authed.Use(middleware.CurrentUser(db))
	{
		authed.POST("/reminders/create", h.CreateReminder)
		authed.GET("/reminders/list", h.ListReminders)
		authed.GET("/reminders/check", h.CheckReminders)
		authed.GET("/reminders/export", h.ExportReminders)
		authed.DELETE("/reminders/:id", h.DeleteReminder)
		authed.POST("/reminders/:id/complete", h.CompleteReminder)
		authed.POST("/payments/create-order", h.CreateOrder)
		authed.POST("/payments/verify-payment", h.VerifyPayment)
		authed.GET("/user/plan-status", h.PlanStatus)
		authed.GET("/user/profile", h.Profile)
	}

	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
	return out
}

// registerUser creates an account through the API and returns its token and id.
func registerUser(t *testing.T, r *gin.Engine, name, email string) (token, id string) {
	t.Helper()

	resp := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	body := decodeBody(t, resp)
	token, _ = body["token"].(string)
	user, _ := body["user"].(map[string]interface{})
	id, _ = user["id"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, id)
	return token, id
}
