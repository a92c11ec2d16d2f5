package contracts

import (
	"context"

	"climed-service/internal/app/models"
	"climed-service/internal/pkg/dto/requests"
)

// ClinicAPIClient has one method per capability of the external clinic API.
// Read methods fail on transport, status or decoding errors. Mutating
// methods report (false, nil) when the API answers with a non-2xx status and
// (false, err) when it cannot be reached.
type ClinicAPIClient interface {
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListAvailableSchedules(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error)
	RegisterPatient(ctx context.Context, name, phone string) (bool, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	SchedulePatientAppointment(ctx context.Context, patientID, doctorID models.ID, date, time string) (bool, error)
	RegisterArrival(ctx context.Context, appointmentID models.ID) (bool, error)
	RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, diagnosis string, amountPaid float64, paymentMethod string) (bool, error)
}

type SpecialtyApiClient interface {
	FindAll(ctx context.Context) ([]models.Specialty, error)
}

type DoctorApiClient interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
}

type ScheduleApiClient interface {
	FindAvailable(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error)
}

type PatientApiClient interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	CreatePatient(ctx context.Context, request *requests.RegisterPatient) (bool, error)
}

type AppointmentApiClient interface {
	CreateAppointment(ctx context.Context, request *requests.ScheduleAppointment) (bool, error)
	RegisterArrival(ctx context.Context, appointmentID models.ID, request *requests.RegisterArrival) (bool, error)
	RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, request *requests.ConsultationDetails) (bool, error)
}
