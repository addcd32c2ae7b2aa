package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hrms-lite/internal/config"
	appHTTP "github.com/cmlabs-hris/hrms-lite/internal/handler/http"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/cron"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/sse"
	"github.com/cmlabs-hris/hrms-lite/internal/repository/restapi"
	attendanceService "github.com/cmlabs-hris/hrms-lite/internal/service/attendance"
	employeeService "github.com/cmlabs-hris/hrms-lite/internal/service/employee"
	healthService "github.com/cmlabs-hris/hrms-lite/internal/service/health"
	reportService "github.com/cmlabs-hris/hrms-lite/internal/service/report"
	"github.com/go-chi/httplog/v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, _ := cfg.LogLevel()
	logFormat := httplog.SchemaECS.Concise(!cfg.IsDevelopment())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	transport := apiclient.NewTransport(cfg.API.BaseURL, cfg.API.Timeout)

	employeeRepo := restapi.NewEmployeeRepository(transport)
	attendanceRepo := restapi.NewAttendanceRepository(transport)
	healthRepo := restapi.NewHealthRepository(transport)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(employeeRepo, attendanceRepo)
	hub := sse.NewHub(10)
	healthSvc := healthService.NewHealthService(healthRepo, hub)

	scheduler := cron.NewScheduler()
	if err := cron.NewHealthJobs(healthSvc, cfg.Health.Interval, cfg.Health.Timeout).RegisterJobs(scheduler); err != nil {
		slog.Error("Failed to register cron jobs", "error", err)
		os.Exit(1)
	}
	scheduler.Start(ctx)
	defer scheduler.Stop()

	clock := appHTTP.NewClock(cfg.App.Timezone)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       level,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
		},
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc, clock),
		appHTTP.NewReportHandler(reportSvc, clock),
		appHTTP.NewHealthHandler(healthSvc),
	)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		// Open event streams end when the process is signalled.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server running", "addr", "http://localhost"+cfg.Addr(), "api_base_url", cfg.API.BaseURL)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
