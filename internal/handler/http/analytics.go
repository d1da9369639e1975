package http

import (
	"net/http"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/analytics"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	// GetCountBySite returns per-site attendance totals
	GetCountBySite(w http.ResponseWriter, r *http.Request)
	// GetHourlyGrid returns the site x hour grid for line charts
	GetHourlyGrid(w http.ResponseWriter, r *http.Request)
	// GetPunctuality returns per-site on-time/late splits
	GetPunctuality(w http.ResponseWriter, r *http.Request)
	// GetOnTimePercentage returns the global on-time percentage
	GetOnTimePercentage(w http.ResponseWriter, r *http.Request)
	// GetLatestDaySummary returns the summary for the most recent day
	GetLatestDaySummary(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// dateRangeFromQuery reads the shared start_date/end_date query parameters
func dateRangeFromQuery(r *http.Request) analytics.DateRangeRequest {
	return analytics.DateRangeRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}
}

// GetCountBySite handles GET /reports/count-by-site
func (h *analyticsHandlerImpl) GetCountBySite(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.CountBySite(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetHourlyGrid handles GET /reports/count-by-site-hour
func (h *analyticsHandlerImpl) GetHourlyGrid(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.HourlyGrid(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPunctuality handles GET /reports/punctuality
func (h *analyticsHandlerImpl) GetPunctuality(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.Punctuality(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetOnTimePercentage handles GET /reports/on-time-percentage
func (h *analyticsHandlerImpl) GetOnTimePercentage(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.OnTimePercentage(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLatestDaySummary handles GET /reports/latest-day-summary
func (h *analyticsHandlerImpl) GetLatestDaySummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.analyticsService.LatestDaySummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
