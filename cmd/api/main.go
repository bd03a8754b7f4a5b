package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/chulcheck/attendance-backend-go/internal/config"
	appHTTP "github.com/chulcheck/attendance-backend-go/internal/handler/http"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/clock"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/cron"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/database"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/jwt"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/sse"
	"github.com/chulcheck/attendance-backend-go/internal/pkg/token"
	"github.com/chulcheck/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/chulcheck/attendance-backend-go/internal/service/attendance"
	employeeService "github.com/chulcheck/attendance-backend-go/internal/service/employee"
	statsService "github.com/chulcheck/attendance-backend-go/internal/service/stats"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	if cfg.UsingDefaultAdminPassword() {
		slog.Warn("ADMIN_PASSWORD is not set; the admin surface is protected by the shipped placeholder only")
	}

	appClock, err := clock.New(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Error loading timezone: ", err)
	}

	tokenService, err := token.NewService(cfg.Token.Secret, cfg.Token.BaseURL)
	if err != nil {
		log.Fatal("Error initializing token service: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	statsRepo := postgresql.NewStatsRepository(db)

	jwtService := jwt.NewJWTService(cfg.Token.Secret, cfg.Admin.SessionExpiration)
	feed := sse.NewHub()

	statsSvc := statsService.NewStatsService(statsRepo, sessionRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, cfg.Wage)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		appClock,
		tokenService,
		cfg.Wage,
		feed,
		employeeRepo,
		eventRepo,
		sessionRepo,
		statsSvc,
	)

	scheduler := cron.NewScheduler()
	statsJobs := cron.NewStatsJobs(employeeRepo, statsSvc, appClock)
	statsJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, feed)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	statsHandler := appHTTP.NewStatsHandler(statsSvc, appClock)
	adminHandler := appHTTP.NewAdminHandler(cfg.Admin.Password, jwtService)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		employeeHandler,
		statsHandler,
		adminHandler,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{
		Addr:              port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := server.ListenAndServe(); err != nil {
		fmt.Println("Server error:", err)
	}
}
