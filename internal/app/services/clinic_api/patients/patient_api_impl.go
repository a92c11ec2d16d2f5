package patients

import (
	"context"
	"net/http"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/app/services/shared/restclient"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/dto/requests"
	"climed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientApiClient struct {
	Requester *restclient.Requester
	Log       *zap.Logger
}

func NewPatientApiClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.PatientApiClient {
	return &patientApiClient{
		Requester: restclient.NewRequester(baseUrl, httpClient, logger),
		Log:       logger,
	}
}

func (c *patientApiClient) FindAll(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientApiClient.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var patients []models.Patient
	err := c.Requester.FetchJSON(ctx, "patientApiClient.FindAll", constvars.ResourceNamePatient, constvars.ResourcePatients, nil, &patients)
	if err != nil {
		return nil, err
	}

	c.Log.Info("patientApiClient.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(patients)),
	)
	return patients, nil
}

func (c *patientApiClient) CreatePatient(ctx context.Context, request *requests.RegisterPatient) (bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("patientApiClient.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ok, err := c.Requester.Send(ctx, "patientApiClient.CreatePatient", constvars.MethodPost, constvars.ResourcePatients, request)
	if err != nil {
		return false, err
	}

	c.Log.Info("patientApiClient.CreatePatient finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, ok),
	)
	return ok, nil
}
