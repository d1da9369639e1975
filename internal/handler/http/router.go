package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	analyticsHandler AnalyticsHandler,
	employeeHandler EmployeeHandler,
	checkInHandler CheckInHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "checkin-analytics"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/total", employeeHandler.GetTotal)
				r.Get("/with-site", employeeHandler.ListWithSite)
			})

			r.Route("/check-ins", func(r chi.Router) {
				r.Get("/", checkInHandler.ListRecords)
				r.Get("/times", checkInHandler.ListConvertedTimes)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/count-by-site", analyticsHandler.GetCountBySite)
				r.Get("/count-by-site-hour", analyticsHandler.GetHourlyGrid)
				r.Get("/punctuality", analyticsHandler.GetPunctuality)
				r.Get("/on-time-percentage", analyticsHandler.GetOnTimePercentage)
				r.Get("/latest-day-summary", analyticsHandler.GetLatestDaySummary)
			})
		})
	})
	return r
}
