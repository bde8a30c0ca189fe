package check_availability

import (
	"time"

	checkAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	ResourceID     int64  `json:"resourceId"`
	AssigneeID     *int64 `json:"assigneeId,omitempty"`
	Start          string `json:"start"`
	End            string `json:"end"`
	BufferedStart  string `json:"bufferedStart"`
	BufferedEnd    string `json:"bufferedEnd"`
	Overlapping    int    `json:"overlapping"`
	Capacity       int    `json:"capacity"`
	AvailableSpots int    `json:"availableSpots"`
	Available      bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		ResourceID:     resp.ResourceID,
		Start:          resp.Start.Format(time.RFC3339),
		End:            resp.End.Format(time.RFC3339),
		BufferedStart:  resp.BufferedStart.Format(time.RFC3339),
		BufferedEnd:    resp.BufferedEnd.Format(time.RFC3339),
		Overlapping:    resp.Overlapping,
		Capacity:       resp.Capacity,
		AvailableSpots: resp.AvailableSpots,
		Available:      resp.Available,
	}
	if resp.AssigneeID > 0 {
		assigneeID := resp.AssigneeID
		result.AssigneeID = &assigneeID
	}
	return result
}
