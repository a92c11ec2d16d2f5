package appointments

import (
	"context"
	"net/http"
	"net/url"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/app/services/shared/restclient"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/dto/requests"
	"climed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentApiClient struct {
	Requester *restclient.Requester
	Log       *zap.Logger
}

func NewAppointmentApiClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.AppointmentApiClient {
	return &appointmentApiClient{
		Requester: restclient.NewRequester(baseUrl, httpClient, logger),
		Log:       logger,
	}
}

func (c *appointmentApiClient) CreateAppointment(ctx context.Context, request *requests.ScheduleAppointment) (bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("appointmentApiClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Stringer(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	ok, err := c.Requester.Send(ctx, "appointmentApiClient.CreateAppointment", constvars.MethodPost, constvars.ResourceAppointments, request)
	if err != nil {
		return false, err
	}

	c.Log.Info("appointmentApiClient.CreateAppointment finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, ok),
	)
	return ok, nil
}

func (c *appointmentApiClient) RegisterArrival(ctx context.Context, appointmentID models.ID, request *requests.RegisterArrival) (bool, error) {
	return c.patchAppointment(ctx, "appointmentApiClient.RegisterArrival", appointmentID, request)
}

func (c *appointmentApiClient) RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, request *requests.ConsultationDetails) (bool, error) {
	return c.patchAppointment(ctx, "appointmentApiClient.RegisterConsultationDetails", appointmentID, request)
}

func (c *appointmentApiClient) patchAppointment(ctx context.Context, operation string, appointmentID models.ID, payload interface{}) (bool, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info(operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	path := constvars.ResourceAppointments + "/" + url.PathEscape(appointmentID.String())
	ok, err := c.Requester.Send(ctx, operation, constvars.MethodPatch, path, payload)
	if err != nil {
		return false, err
	}

	c.Log.Info(operation+" finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.Bool(constvars.LoggingSuccessKey, ok),
	)
	return ok, nil
}
