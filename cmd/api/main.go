package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/config"
	appHTTP "github.com/hadirhq/hadir-backend-go/internal/handler/http"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/cron"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/database"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/jwt"
	"github.com/hadirhq/hadir-backend-go/internal/repository/postgresql"
	announcementService "github.com/hadirhq/hadir-backend-go/internal/service/announcement"
	attendanceService "github.com/hadirhq/hadir-backend-go/internal/service/attendance"
	dashboardService "github.com/hadirhq/hadir-backend-go/internal/service/dashboard"
	"github.com/hadirhq/hadir-backend-go/internal/service/reconcile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	systemClock := clock.System()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	reconciler := reconcile.NewReconciler(attendanceRepo, systemClock)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, db, systemClock)
	dashboardSvc := dashboardService.NewDashboardService(employeeRepo, systemClock)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	cronHandler := appHTTP.NewCronHandler(reconciler, cfg.Cron.Secret, cfg.Database.Password != "")

	interval, err := time.ParseDuration(cfg.Cron.Interval)
	if err != nil {
		interval = time.Hour
	}
	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(reconciler, systemClock)
	attendanceJobs.RegisterJobs(scheduler, interval)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		announcementHandler,
		dashboardHandler,
		cronHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	_ = server.Close()
}
