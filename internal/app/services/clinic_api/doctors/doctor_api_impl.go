package doctors

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

type doctorApiClient struct {
	Requester *restclient.Requester
	Log       *zap.Logger
}

func NewDoctorApiClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.DoctorApiClient {
	return &doctorApiClient{
		Requester: restclient.NewRequester(baseUrl, httpClient, logger),
		Log:       logger,
	}
}

func (c *doctorApiClient) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("doctorApiClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var doctors []models.Doctor
	err := c.Requester.FetchJSON(ctx, "doctorApiClient.FindAll", constvars.ResourceNameDoctor, constvars.ResourceDoctors, nil, &doctors)
	if err != nil {
		return nil, err
	}

	c.Log.Info("doctorApiClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	return doctors, nil
}
