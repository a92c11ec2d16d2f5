package schedules

import (
	"context"
	"net/http"
	"net/url"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/app/services/shared/restclient"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type scheduleApiClient struct {
	Requester *restclient.Requester
	Log       *zap.Logger
}

func NewScheduleApiClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.ScheduleApiClient {
	return &scheduleApiClient{
		Requester: restclient.NewRequester(baseUrl, httpClient, logger),
		Log:       logger,
	}
}

// FindAvailable lists the slots of a specialty, or of every specialty when
// specialty is empty. The crm filter is only sent when doctorID is set.
func (c *scheduleApiClient) FindAvailable(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("scheduleApiClient.FindAvailable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialtyKey, specialty),
		zap.Stringer(constvars.LoggingDoctorIDKey, doctorID),
	)

	path := constvars.ResourceAvailableSchedules
	if specialty != "" {
		path += "/" + url.PathEscape(specialty)
	}

	var query url.Values
	if !doctorID.IsZero() {
		query = url.Values{constvars.QueryParamCRM: []string{doctorID.String()}}
	}

	var slots []models.ScheduleSlot
	err := c.Requester.FetchJSON(ctx, "scheduleApiClient.FindAvailable", constvars.ResourceNameSchedule, path, query, &slots)
	if err != nil {
		return nil, err
	}

	c.Log.Info("scheduleApiClient.FindAvailable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(slots)),
	)
	return slots, nil
}
