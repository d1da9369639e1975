package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/config"
	appHTTP "github.com/cmlabs-hris/checkin-analytics-go/internal/handler/http"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/database"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/repository/postgresql"
	analyticsService "github.com/cmlabs-hris/checkin-analytics-go/internal/service/analytics"
	checkInService "github.com/cmlabs-hris/checkin-analytics-go/internal/service/checkin"
	employeeService "github.com/cmlabs-hris/checkin-analytics-go/internal/service/employee"
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

	siteRepo := postgresql.NewSiteRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	checkInRepo := postgresql.NewCheckInRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	analyticsSvc := analyticsService.NewAnalyticsService(siteRepo, checkInRepo, cfg.Report)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	checkInSvc := checkInService.NewCheckInService(checkInRepo, cfg.Report)

	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	checkInHandler := appHTTP.NewCheckInHandler(checkInSvc)

	router := appHTTP.NewRouter(
		JWTService,
		analyticsHandler,
		employeeHandler,
		checkInHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
