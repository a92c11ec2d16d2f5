// Package clinic_api is the typed client of the external clinic API. Every
// method is one unbuffered HTTP round trip: no retries, no caching, no
// idempotency keys. Repeating a mutating call may create duplicates on the
// server.
package clinic_api

import (
	"context"
	"net/http"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/app/services/clinic_api/appointments"
	"climed-service/internal/app/services/clinic_api/doctors"
	"climed-service/internal/app/services/clinic_api/patients"
	"climed-service/internal/app/services/clinic_api/schedules"
	"climed-service/internal/app/services/clinic_api/specialties"
	"climed-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type clinicApiClient struct {
	SpecialtyApiClient   contracts.SpecialtyApiClient
	DoctorApiClient      contracts.DoctorApiClient
	ScheduleApiClient    contracts.ScheduleApiClient
	PatientApiClient     contracts.PatientApiClient
	AppointmentApiClient contracts.AppointmentApiClient
}

func NewClinicApiClient(baseUrl string, httpClient *http.Client, logger *zap.Logger) contracts.ClinicAPIClient {
	return &clinicApiClient{
		SpecialtyApiClient:   specialties.NewSpecialtyApiClient(baseUrl, httpClient, logger),
		DoctorApiClient:      doctors.NewDoctorApiClient(baseUrl, httpClient, logger),
		ScheduleApiClient:    schedules.NewScheduleApiClient(baseUrl, httpClient, logger),
		PatientApiClient:     patients.NewPatientApiClient(baseUrl, httpClient, logger),
		AppointmentApiClient: appointments.NewAppointmentApiClient(baseUrl, httpClient, logger),
	}
}

func (c *clinicApiClient) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	return c.SpecialtyApiClient.FindAll(ctx)
}

func (c *clinicApiClient) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	return c.DoctorApiClient.FindAll(ctx)
}

func (c *clinicApiClient) ListAvailableSchedules(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error) {
	return c.ScheduleApiClient.FindAvailable(ctx, specialty, doctorID)
}

func (c *clinicApiClient) RegisterPatient(ctx context.Context, name, phone string) (bool, error) {
	return c.PatientApiClient.CreatePatient(ctx, &requests.RegisterPatient{
		Name:  name,
		Phone: phone,
	})
}

func (c *clinicApiClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return c.PatientApiClient.FindAll(ctx)
}

func (c *clinicApiClient) SchedulePatientAppointment(ctx context.Context, patientID, doctorID models.ID, date, time string) (bool, error) {
	return c.AppointmentApiClient.CreateAppointment(ctx, &requests.ScheduleAppointment{
		PatientID: patientID,
		DoctorID:  doctorID,
		Date:      date,
		Time:      time,
	})
}

func (c *clinicApiClient) RegisterArrival(ctx context.Context, appointmentID models.ID) (bool, error) {
	return c.AppointmentApiClient.RegisterArrival(ctx, appointmentID, &requests.RegisterArrival{Arrived: true})
}

func (c *clinicApiClient) RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, diagnosis string, amountPaid float64, paymentMethod string) (bool, error) {
	return c.AppointmentApiClient.RegisterConsultationDetails(ctx, appointmentID, &requests.ConsultationDetails{
		Diagnosis:     diagnosis,
		AmountPaid:    amountPaid,
		PaymentMethod: paymentMethod,
	})
}
