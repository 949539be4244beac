package main

import (
	"log"
	"os"

	"callmeback-api/database"
	"callmeback-api/handlers"
	"callmeback-api/middleware"
	"callmeback-api/verifier"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "callmeback.db"
	}
	db, err := database.Connect(dbPath)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Verifier capabilities: real implementations when keys are configured,
	// the documented stubs otherwise.
	var payments verifier.PaymentVerifier = verifier.MockPaymentVerifier{}
	if secret := os.Getenv("RAZORPAY_KEY_SECRET"); secret != "" {
		payments = verifier.RazorpayVerifier{KeySecret: secret}
	} else {
		log.Println("RAZORPAY_KEY_SECRET not set, payment verification is mocked")
	}

	var identity verifier.IdentityVerifier = verifier.InsecureIdentityVerifier{}
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		identity = verifier.GoogleVerifier{ClientID: clientID}
	} else {
		log.Println("GOOGLE_CLIENT_ID not set, Google tokens are not verified")
	}

	razorpayKeyID := os.Getenv("RAZORPAY_KEY_ID")
	if razorpayKeyID == "" {
		razorpayKeyID = "rzp_test_PLACEHOLDER"
	}

	h := handlers.New(db, payments, identity, razorpayKeyID)

	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(config))

	api := r.Group("/api")

	// Public routes
	api.GET("/", h.Root)
	api.GET("/health", h.Health)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/google", h.GoogleAuth)

	// Protected routes
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

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
