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

	"github.com/smartdoc/smartdoc/internal/config"
	"github.com/smartdoc/smartdoc/internal/domain/drugref"
	"github.com/smartdoc/smartdoc/internal/domain/ehr"
	"github.com/smartdoc/smartdoc/internal/domain/identity"
	"github.com/smartdoc/smartdoc/internal/domain/patients"
	"github.com/smartdoc/smartdoc/internal/domain/prescriptions"
	"github.com/smartdoc/smartdoc/internal/domain/templates"
	"github.com/smartdoc/smartdoc/internal/platform/auth"
	"github.com/smartdoc/smartdoc/internal/platform/db"
	"github.com/smartdoc/smartdoc/internal/platform/middleware"
	"github.com/smartdoc/smartdoc/internal/textproc"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "smartdoc-server",
		Short: "SmartDoc clinical documentation API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the SmartDoc API server",
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

			migrator := db.NewMigrator(pool, dir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			fmt.Printf("Applied %d migration(s) successfully.\n", count)

			// The drug reference ships with the binary; migrating also
			// loads it so a fresh database can check interactions.
			seeded, err := drugref.NewService(drugref.NewDrugRepoPG(pool)).Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed drug reference: %w", err)
			}
			fmt.Printf("Seeded %d drug(s).\n", seeded)
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

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
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

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reload the drug reference data without migrating",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			svc := drugref.NewService(drugref.NewDrugRepoPG(pool))
			count, err := svc.Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed failed: %w", err)
			}

			fmt.Printf("Seeded %d drug(s).\n", count)
			return nil
		},
	}
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	// Database
	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	jwtCfg := auth.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		Issuer:   cfg.JWTIssuer,
		TokenTTL: time.Duration(cfg.TokenTTLMinutes) * time.Minute,
	}

	// Repositories
	doctorRepo := identity.NewDoctorRepoPG(pool)
	patientRepo := patients.NewPatientRepoPG(pool)
	prescriptionRepo := prescriptions.NewPrescriptionRepoPG(pool)
	templateRepo := templates.NewTemplateRepoPG(pool)
	drugRepo := drugref.NewDrugRepoPG(pool)
	ehrRepo := ehr.NewEHRRepoPG(pool)

	// Services
	identitySvc := identity.NewService(doctorRepo, jwtCfg)
	patientSvc := patients.NewService(patientRepo, textproc.NewProcessor())
	drugSvc := drugref.NewService(drugRepo)
	prescriptionSvc := prescriptions.NewService(prescriptionRepo, drugSvc)
	templateSvc := templates.NewService(templateRepo)
	ehrClient := ehr.NewClient(time.Duration(cfg.EHRTimeoutSecs) * time.Second)
	ehrSvc := ehr.NewService(ehrRepo, ehrClient, patientRepo, logger)

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// API groups. Registration and login are public; everything else sits
	// behind the JWT middleware.
	public := e.Group("/api")
	api := e.Group("/api")
	api.Use(auth.JWTMiddleware(jwtCfg))

	rateLimitCfg := middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		BurstSize:         cfg.RateLimitBurst,
	}
	if rateLimitCfg.RequestsPerSecond <= 0 {
		rateLimitCfg = middleware.DefaultRateLimitConfig()
	}
	public.Use(middleware.RateLimit(rateLimitCfg))
	api.Use(middleware.RateLimit(rateLimitCfg))

	// Health checks
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "1.0.0",
		})
	})
	e.GET("/health/db", db.HealthHandler(pool))

	// Domain routes
	identity.NewHandler(identitySvc).RegisterRoutes(public, api)
	patients.NewHandler(patientSvc).RegisterRoutes(api)
	prescriptions.NewHandler(prescriptionSvc).RegisterRoutes(api)
	templates.NewHandler(templateSvc).RegisterRoutes(api)
	drugref.NewHandler(drugSvc).RegisterRoutes(api)
	ehr.NewHandler(ehrSvc).RegisterRoutes(api)

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown error")
	}
	return nil
}
