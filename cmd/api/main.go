package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/workfriar/timesheet-backend-go/internal/config"
	appHTTP "github.com/workfriar/timesheet-backend-go/internal/handler/http"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/cron"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/database"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/email"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/jwt"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/oauth"
	"github.com/workfriar/timesheet-backend-go/internal/pkg/sse"
	"github.com/workfriar/timesheet-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/workfriar/timesheet-backend-go/internal/service/auth"
	calendarService "github.com/workfriar/timesheet-backend-go/internal/service/calendar"
	projectService "github.com/workfriar/timesheet-backend-go/internal/service/project"
	timesheetService "github.com/workfriar/timesheet-backend-go/internal/service/timesheet"
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

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	weekWindowRepo := postgresql.NewWeekWindowRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	hub := sse.NewHub()

	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, refreshTokenRepo, GoogleService)
	calendarSvc := calendarService.NewCalendarService(weekWindowRepo, holidayRepo)
	projectSvc := projectService.NewProjectService(projectRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		timesheetRepo,
		weekWindowRepo,
		holidayRepo,
		projectRepo,
		userRepo,
		hub,
		emailService,
	)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc, JWTService, hub)

	scheduler := cron.NewScheduler()
	scheduler.AddJob("extend-week-catalog", 24*time.Hour, func(ctx context.Context) error {
		return calendarSvc.ExtendCatalog(ctx, 8)
	})
	scheduler.AddJob("flag-overdue-timesheets", 24*time.Hour, timesheetSvc.FlagOverdue)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.FrontendURL,
		cfg.App.Env,
		authHandler,
		calendarHandler,
		projectHandler,
		timesheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
