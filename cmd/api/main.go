package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/owm/studio-api/internal/config"
	"github.com/owm/studio-api/internal/domain/auth"
	"github.com/owm/studio-api/internal/domain/booking"
	"github.com/owm/studio-api/internal/domain/cart"
	"github.com/owm/studio-api/internal/domain/catalog"
	"github.com/owm/studio-api/internal/domain/contact"
	"github.com/owm/studio-api/internal/domain/dashboard"
	"github.com/owm/studio-api/internal/domain/profile"
	"github.com/owm/studio-api/internal/domain/review"
	"github.com/owm/studio-api/internal/domain/team"
	"github.com/owm/studio-api/internal/domain/user"
	"github.com/owm/studio-api/internal/middleware"
	"github.com/owm/studio-api/internal/pkg/database"
	"github.com/owm/studio-api/internal/pkg/email"
	"github.com/owm/studio-api/internal/pkg/imaging"
	"github.com/owm/studio-api/internal/pkg/jwt"
	pkgresponse "github.com/owm/studio-api/internal/pkg/response"
	"github.com/owm/studio-api/internal/pkg/storage"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Msg("Starting Studio API")

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres(db)

	redisClient, err := database.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer database.CloseRedis(redisClient)

	jwtService := jwt.NewService(cfg.JWTSecret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)

	store, err := newStorage(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create storage")
	}

	var emailService *email.Service
	if cfg.SendGridAPIKey != "" {
		emailService = email.NewService(email.NewSendGridClient(email.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.EmailFrom,
			FromName:  cfg.EmailFromName,
		}))
		defer emailService.Close()
	} else {
		log.Warn().Msg("SendGrid API key not set, email disabled")
	}

	// ---------- Repositories ----------
	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	cartRepo := cart.NewRepository(db)
	bookingRepo := booking.NewRepository(db)
	reviewRepo := review.NewRepository(db)
	teamRepo := team.NewRepository(db)
	contactRepo := contact.NewRepository(db)

	// ---------- Services ----------
	var authMailer auth.WelcomeMailer
	var bookingMailer booking.Mailer
	var contactNotifier contact.Notifier
	if emailService != nil {
		authMailer = emailService
		bookingMailer = emailService
		contactNotifier = emailService
	}

	authService := auth.NewService(userRepo, jwtService, redisClient, authMailer)
	processor := imaging.NewProcessor(imaging.DefaultConfig())
	profileService := profile.NewService(userRepo, store, processor)
	catalogCache := catalog.NewCache(redisClient, cfg.CatalogCacheTTL)
	catalogService := catalog.NewService(catalogRepo, catalogCache)
	cartService := cart.NewService(cartRepo, catalogRepo)
	checker := booking.NewChecker(bookingRepo)
	bookingService := booking.NewService(bookingRepo, checker, catalogRepo, cartRepo, userRepo, bookingMailer)
	dashboardService := dashboard.NewService(profileService, bookingService, cartService)
	contactService := contact.NewService(contactRepo, contactNotifier, cfg.StudioEmail)

	// ---------- Handlers ----------
	authHandler := auth.NewHandler(authService)
	profileHandler := profile.NewHandler(profileService)
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	bookingHandler := booking.NewHandler(bookingService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	reviewHandler := review.NewHandler(reviewRepo)
	teamHandler := team.NewHandler(teamRepo)
	contactHandler := contact.NewHandler(contactService)

	authMiddleware := middleware.Auth(jwtService)

	// ---------- Router ----------
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recover)
	r.Use(middleware.CORSHandler(cfg.AllowedOrigins))
	r.Use(chimw.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		pkgresponse.OK(w, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Mount("/auth", authHandler.Routes(authMiddleware))
		r.Mount("/profile", profileHandler.Routes(authMiddleware))
		r.Mount("/services", catalogHandler.Routes())
		r.Mount("/cart", cartHandler.Routes(authMiddleware))
		r.Mount("/bookings", bookingHandler.Routes(authMiddleware))
		r.Mount("/dashboard", dashboardHandler.Routes(authMiddleware))
		r.Mount("/reviews", reviewHandler.Routes(authMiddleware))
		r.Mount("/team", teamHandler.Routes())
		r.Mount("/contact", contactHandler.Routes())
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited properly")
}

func newStorage(cfg *config.Config) (storage.Storage, error) {
	if cfg.StorageBackend == "local" {
		return storage.NewLocalStorage(cfg.LocalStorageDir)
	}
	return storage.NewS3Storage(storage.Config{
		S3Endpoint:  cfg.S3Endpoint,
		S3Region:    cfg.S3Region,
		S3AccessKey: cfg.S3AccessKey,
		S3SecretKey: cfg.S3SecretKey,
		S3Bucket:    cfg.S3Bucket,
	})
}

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: "15:04:05",
		})
	}
}
