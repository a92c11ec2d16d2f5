package contracts

import (
	"context"

	"climed-service/internal/app/models"
	"climed-service/internal/pkg/dto/requests"
)

// FrontDeskUsecase backs the front desk screens. Rejected operations come
// back as a CustomError carrying the message to show the user.
type FrontDeskUsecase interface {
	ListSpecialties(ctx context.Context) ([]models.Specialty, error)
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	ListSchedules(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) error
	ScheduleAppointment(ctx context.Context, request *requests.ScheduleAppointmentRequest) error
	ListArrivals(ctx context.Context, specialty string) ([]models.ScheduleSlot, error)
	RegisterArrival(ctx context.Context, appointmentID models.ID) error
	ViewAgenda(ctx context.Context, specialty string, doctorID models.ID) (*models.Agenda, error)
	RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, request *requests.ConsultationDetailsRequest) error
	ListPaymentMethods() []string
}
