package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hungrypaws/hungry-paws-api/internal/audit"
	"github.com/hungrypaws/hungry-paws-api/internal/auth"
	"github.com/hungrypaws/hungry-paws-api/internal/config"
	"github.com/hungrypaws/hungry-paws-api/internal/handlers"
	infraRepo "github.com/hungrypaws/hungry-paws-api/internal/infra/repository"
	"github.com/hungrypaws/hungry-paws-api/internal/media"
	"github.com/hungrypaws/hungry-paws-api/internal/middleware"
	"github.com/hungrypaws/hungry-paws-api/internal/payments"
	ucBooking "github.com/hungrypaws/hungry-paws-api/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	revocations := auth.NewRevocationList(cfg)

	var photos media.Uploader
	if cfg.S3AccessKey != "" {
		photos = media.NewStorage(cfg)
	}

	var checkout *payments.Checkout
	if cfg.MercadoPagoToken != "" {
		ch, err := payments.NewCheckout(cfg.MercadoPagoToken)
		if err != nil {
			log.Printf("mercadopago disabled: %v", err)
		} else {
			checkout = ch
		}
	}

	// ======================================================
	// USE CASES — BOOKINGS
	// ======================================================
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, auditDispatcher)
	listOwnerBookingsUC := ucBooking.NewListOwnerBookings(bookingRepo)
	listAdminBookingsUC := ucBooking.NewListAdminBookings(bookingRepo)
	decideBookingUC := ucBooking.NewDecideBooking(bookingRepo, auditDispatcher)
	deleteBookingUC := ucBooking.NewDeleteBooking(bookingRepo, auditDispatcher)
	getOwnerBookingUC := ucBooking.NewGetOwnerBooking(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, auditDispatcher, revocations)
	meHandler := handlers.NewMeHandler(db)
	petHandler := handlers.NewPetHandler(db, auditDispatcher, photos)

	bookingHandler := handlers.NewBookingHandler(
		createBookingUC,
		listOwnerBookingsUC,
		deleteBookingUC,
		getOwnerBookingUC,
		checkout,
	)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		listAdminBookingsUC,
		decideBookingUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	webHandler := handlers.NewWebHandler(db)

	// ======================================================
	// WEB (HTML)
	// ======================================================
	r.GET("/", webHandler.LandingPage)

	web := r.Group("/")
	web.Use(middleware.WebAuth(cfg, revocations))
	{
		web.GET("/user", webHandler.UserDashboard)
		web.GET("/admin", webHandler.AdminDashboard)
	}

	r.POST("/logout", authHandler.LogOut)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/signup", authHandler.SignUp)
		api.POST("/login", authHandler.LogIn)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, revocations))
		{
			secured.GET("/me", meHandler.GetMe)

			// ------------------------------
			// PETS
			// ------------------------------
			secured.GET("/pets", petHandler.List)
			secured.POST("/pets", petHandler.Create)
			secured.PUT("/pets/:id", petHandler.Update)
			secured.DELETE("/pets/:id", petHandler.Delete)
			secured.POST("/pets/:id/photo", petHandler.UploadPhoto)

			// ------------------------------
			// BOOKINGS
			// ------------------------------
			secured.GET("/bookings", bookingHandler.List)
			secured.POST("/bookings", bookingHandler.Create)
			secured.DELETE("/bookings/:id", bookingHandler.Delete)
			secured.POST("/bookings/:id/checkout", bookingHandler.Checkout)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/bookings", adminBookingHandler.List)
				admin.POST("/bookings/:id/approve", adminBookingHandler.Approve)
				admin.POST("/bookings/:id/reject", adminBookingHandler.Reject)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
