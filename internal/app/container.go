package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tidegrove/facility-booking-backend/internal/api"
	"github.com/tidegrove/facility-booking-backend/internal/auth"
	"github.com/tidegrove/facility-booking-backend/internal/booking"
	"github.com/tidegrove/facility-booking-backend/internal/facility"
	"github.com/tidegrove/facility-booking-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
	JWTSecret    string
	JWTTTL       time.Duration
	BcryptCost   int
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Init Components
	passwordHasher := auth.NewBcryptPasswordHasherWithCost(cfg.BcryptCost)
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo, passwordHasher)

	// Facility Module
	facilityRepo := facility.NewPgxRepository(cfg.DBPool)
	facilityService := facility.NewService(facilityRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, facilityService)

	// API Router Config
	routerParams := api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		UserService:     userService,
		FacilityService: facilityService,
		BookingService:  bookingService,
		JWTManager:      jwtManager,
	}

	// Router
	router := api.NewRouter(routerParams)

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}
}
