package get_resource_bookings

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров.
// Формат даты проверяет сервис.
func ToServiceRequest(resourceID int64, query url.Values) (*models.ListByResourceRequest, error) {
	req := &models.ListByResourceRequest{
		ResourceID: resourceID,
	}

	if v := query.Get("date"); v != "" {
		req.Date = &v
	}

	if v := query.Get("assigneeId"); v != "" {
		assigneeID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.AssigneeID = &assigneeID
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("includeCancelled"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = include
	}

	return req, nil
}
