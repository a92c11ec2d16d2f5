package specialties

import (
	"context"
	"net/http"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/app/services/shared/restclient"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type specialtyApiClient struct {
	Requester *restclient.Requester
	Log       *zap.Logger
}

func NewSpecialtyApiClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.SpecialtyApiClient {
	return &specialtyApiClient{
		Requester: restclient.NewRequester(baseUrl, httpClient, logger),
		Log:       logger,
	}
}

func (c *specialtyApiClient) FindAll(ctx context.Context) ([]models.Specialty, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("specialtyApiClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var specialties []models.Specialty
	err := c.Requester.FetchJSON(ctx, "specialtyApiClient.FindAll", constvars.ResourceNameSpecialty, constvars.ResourceSpecialties, nil, &specialties)
	if err != nil {
		return nil, err
	}

	c.Log.Info("specialtyApiClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(specialties)),
	)
	return specialties, nil
}
