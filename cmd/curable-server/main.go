package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/curable/curable/internal/config"
	"github.com/curable/curable/internal/domain/assessment"
	"github.com/curable/curable/internal/domain/checkin"
	"github.com/curable/curable/internal/domain/emergency"
	"github.com/curable/curable/internal/domain/medication"
	"github.com/curable/curable/internal/domain/mentalhealth"
	"github.com/curable/curable/internal/domain/onboarding"
	"github.com/curable/curable/internal/domain/profile"
	"github.com/curable/curable/internal/platform/ai"
	"github.com/curable/curable/internal/platform/auth"
	"github.com/curable/curable/internal/platform/db"
	"github.com/curable/curable/internal/platform/middleware"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "curable-server",
		Short: "Curable health API server",
	}
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	return rootCmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			count, err := db.NewMigrator(pool, dir).Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			statuses, err := db.NewMigrator(pool, dir).Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Health check stays outside the authenticated group
	e.GET("/health", db.HealthHandler(pool))

	api := e.Group("/api/v1")
	api.Use(auth.Middleware(auth.Config{SigningSecret: []byte(cfg.AuthJWTSecret)}))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Repositories
	profileRepo := profile.NewRepoPG(pool)
	onboardingRepo := onboarding.NewRepoPG(pool)
	trackingRepo := checkin.NewTrackingRepoPG(pool)
	questionRepo := checkin.NewQuestionRepoPG(pool)
	weeklyRepo := checkin.NewWeeklyRepoPG(pool)
	medicationRepo := medication.NewRepoPG(pool)
	mentalHealthRepo := mentalhealth.NewRepoPG(pool)
	emergencyRepo := emergency.NewRepoPG(pool)
	assessmentRepo := assessment.NewRepoPG(pool)

	// Model client
	model := ai.NewClient(ai.Config{
		Endpoint:  cfg.ModelEndpoint,
		APIKey:    cfg.ModelAPIKey,
		Model:     cfg.ModelName,
		MaxTokens: cfg.ModelMaxTokens,
		Timeout:   time.Duration(cfg.ModelTimeoutSec) * time.Second,
	})

	// Services and handlers
	profile.NewHandler(profile.NewService(profileRepo)).RegisterRoutes(api)
	onboarding.NewHandler(onboarding.NewService(onboardingRepo, profileRepo)).RegisterRoutes(api)
	checkin.NewHandler(checkin.NewService(trackingRepo, questionRepo, weeklyRepo)).RegisterRoutes(api)
	medication.NewHandler(medication.NewService(medicationRepo)).RegisterRoutes(api)
	mentalhealth.NewHandler(mentalhealth.NewService(mentalHealthRepo)).RegisterRoutes(api)
	emergency.NewHandler(emergency.NewService(emergencyRepo)).RegisterRoutes(api)

	assessmentSvc := assessment.NewService(assessment.Sources{
		Profiles:     profileRepo,
		Tracking:     trackingRepo,
		Medications:  medicationRepo,
		MentalHealth: mentalHealthRepo,
		Emergencies:  emergencyRepo,
		Assessments:  assessmentRepo,
	}, model)
	assessment.NewHandler(assessmentSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("forced shutdown")
		return err
	}
	return nil
}
