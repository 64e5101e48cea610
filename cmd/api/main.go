package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"fieldbook/internal/clock"
	"fieldbook/internal/config"
	"fieldbook/internal/database"
	"fieldbook/internal/domain"
	"fieldbook/internal/middleware"
	"fieldbook/internal/modules/admin"
	"fieldbook/internal/modules/auth"
	"fieldbook/internal/modules/booking"
	"fieldbook/internal/modules/closure"
	"fieldbook/internal/modules/live"
	"fieldbook/internal/modules/weather"
	jwtsvc "fieldbook/internal/pkg/jwt"
	bindingvalidator "fieldbook/internal/pkg/validator"
	"fieldbook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Field{},
		&domain.Reservation{},
		&domain.Config{},
		&domain.ClosedDay{},
		&domain.ClosedSlot{},
	); err != nil {
		log.Fatal(err)
	}

	clk, err := clock.NewSystem(cfg.Timezone)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	fieldRepo := repository.NewFieldRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	configRepo := repository.NewConfigRepository(db)
	closureRepo := repository.NewClosureRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := live.NewHub()
	defer hub.Close()

	closureService := closure.NewService(closureRepo)
	reaper := booking.NewReaper(reservationRepo, configRepo, clk, cfg.ReaperCooldown)
	bookingService := booking.NewService(
		reservationRepo,
		userRepo,
		configRepo,
		closureService,
		live.NewPublisher(hub),
		reaper,
		clk,
	)
	authService := auth.NewService(userRepo, j)
	adminService := admin.NewService(userRepo, configRepo, fieldRepo)
	weatherService := weather.NewService(cfg.WeatherLat, cfg.WeatherLon, cfg.Timezone)

	authHandler := auth.NewHandler(authService)
	bookingHandler := booking.NewHandler(bookingService)
	closureHandler := closure.NewHandler(closureService)
	adminHandler := admin.NewHandler(adminService)
	weatherHandler := weather.NewHandler(weatherService)
	liveHandler := live.NewHandler(hub)

	bindingvalidator.RegisterBindingValidations()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		adminHandler.RegisterPublicRoutes(v1)
		closureHandler.RegisterPublicRoutes(v1)
		weatherHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			liveHandler.RegisterRoutes(protected)

			adminGroup := protected.Group("/admin")
			adminGroup.Use(middleware.AdminOnly())
			{
				adminHandler.RegisterAdminRoutes(adminGroup)
				closureHandler.RegisterAdminRoutes(adminGroup)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
