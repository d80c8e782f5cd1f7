package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/tidegrove/facility-booking-backend/internal/auth"
	"github.com/tidegrove/facility-booking-backend/internal/booking"
	bookingHttp "github.com/tidegrove/facility-booking-backend/internal/booking/http"
	"github.com/tidegrove/facility-booking-backend/internal/facility"
	facilityHttp "github.com/tidegrove/facility-booking-backend/internal/facility/http"
	"github.com/tidegrove/facility-booking-backend/internal/user"
	userHttp "github.com/tidegrove/facility-booking-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	UserService     user.Service
	FacilityService facility.Service
	BookingService  booking.Service
	JWTManager      *auth.JWTManager
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Auth) and registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:3000",
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// authMiddleware: Validates if the request contains a valid JWT.
	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	// adminMiddleware: Further checks if the authenticated user has System Admin privileges.
	adminMiddleware := RequireSystemAdmin(cfg.UserService)

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewUserHandler(cfg.UserService, cfg.JWTManager)
	facilityHandler := facilityHttp.NewHandler(cfg.FacilityService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		facilityHttp.RegisterRoutes(v1, facilityHandler, authMiddleware, adminMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, authMiddleware)
	}

	return r
}
