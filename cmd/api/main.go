package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/clinicore/health-api/internal/config"
	enrollmentHandler "github.com/clinicore/health-api/internal/handler/enrollment"
	healthHandler "github.com/clinicore/health-api/internal/handler/health"
	patientHandler "github.com/clinicore/health-api/internal/handler/patient"
	programHandler "github.com/clinicore/health-api/internal/handler/program"
	"github.com/clinicore/health-api/internal/middleware"
	"github.com/clinicore/health-api/internal/model"
	"github.com/clinicore/health-api/internal/repository/memory"
	"github.com/clinicore/health-api/internal/router"
	enrollmentService "github.com/clinicore/health-api/internal/service/enrollment"
	patientService "github.com/clinicore/health-api/internal/service/patient"
	programService "github.com/clinicore/health-api/internal/service/program"
	"github.com/clinicore/health-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(nil).Fatal(err, "failed to load configuration")
	}

	zerolog.SetGlobalLevel(logger.ParseLevel(cfg.Log.Level))
	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// The stores live for the whole process; every workflow gets a handle,
	// no hidden singletons.
	patientStore := memory.NewPatientStore()
	programStore := memory.NewProgramStore()

	patientSvc := patientService.NewService(patientStore)
	programSvc := programService.NewService(programStore)
	enrollmentSvc := enrollmentService.NewService(patientStore, programStore)

	if err := seedPrograms(context.Background(), programSvc); err != nil {
		log.Fatal(err, "failed to seed sample programs")
	}

	authMiddleware := middleware.NewAPIKeyMiddleware(cfg.API.Verifier(), cfg.API.KeyHeader)

	r := router.New(
		authMiddleware,
		healthHandler.NewHandler(patientStore, programStore),
		patientHandler.NewHandler(patientSvc, enrollmentSvc),
		programHandler.NewHandler(programSvc),
		enrollmentHandler.NewHandler(enrollmentSvc),
		router.Config{
			RateLimit: rate.Limit(cfg.RateLimit.RequestsPerSecond),
			RateBurst: cfg.RateLimit.Burst,
			CORS:      middleware.DefaultCORSConfig(),
		},
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited properly")
}

// seedPrograms loads the two sample programs the catalog starts with.
func seedPrograms(ctx context.Context, svc *programService.Service) error {
	samples := []*model.CreateProgramRequest{
		{
			Name:           "Diabetes Management",
			ProgramType:    "chronic",
			TargetAgeGroup: "30-80",
			RiskFactors:    []string{"obesity", "family history"},
		},
		{
			Name:           "Child Vaccination Program",
			ProgramType:    "preventive",
			TargetAgeGroup: "0-12",
			RiskFactors:    []string{"low birth weight"},
		},
	}

	for _, req := range samples {
		if _, err := svc.Create(ctx, req); err != nil {
			return fmt.Errorf("seed %q: %w", req.Name, err)
		}
	}
	return nil
}
