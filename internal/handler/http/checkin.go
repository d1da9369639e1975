package http

import (
	"net/http"

	"github.com/cmlabs-hris/checkin-analytics-go/internal/domain/checkin"
	"github.com/cmlabs-hris/checkin-analytics-go/internal/handler/http/response"
)

type CheckInHandler interface {
	// ListRecords returns raw check-in records
	ListRecords(w http.ResponseWriter, r *http.Request)
	// ListConvertedTimes returns original and local-converted timestamps
	ListConvertedTimes(w http.ResponseWriter, r *http.Request)
}

type checkInHandlerImpl struct {
	checkInService checkin.CheckInService
}

func NewCheckInHandler(checkInService checkin.CheckInService) CheckInHandler {
	return &checkInHandlerImpl{checkInService: checkInService}
}

// ListRecords handles GET /check-ins
func (h *checkInHandlerImpl) ListRecords(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkInService.ListRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListConvertedTimes handles GET /check-ins/times
func (h *checkInHandlerImpl) ListConvertedTimes(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkInService.ListConvertedTimes(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
