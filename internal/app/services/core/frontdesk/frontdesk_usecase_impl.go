package frontdesk

import (
	"context"

	"climed-service/internal/app/contracts"
	"climed-service/internal/app/models"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/dto/requests"
	"climed-service/internal/pkg/exceptions"
	"climed-service/internal/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type frontDeskUsecase struct {
	ClinicAPIClient contracts.ClinicAPIClient
	Log             *zap.Logger
}

func NewFrontDeskUsecase(clinicAPIClient contracts.ClinicAPIClient, logger *zap.Logger) contracts.FrontDeskUsecase {
	return &frontDeskUsecase{
		ClinicAPIClient: clinicAPIClient,
		Log:             logger,
	}
}

func (uc *frontDeskUsecase) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ListSpecialties called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	specialties, err := uc.ClinicAPIClient.ListSpecialties(ctx)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.ListSpecialties error fetching specialties",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("frontDeskUsecase.ListSpecialties succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(specialties)),
	)
	return specialties, nil
}

func (uc *frontDeskUsecase) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	doctors, err := uc.ClinicAPIClient.ListDoctors(ctx)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.ListDoctors error fetching doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("frontDeskUsecase.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	return doctors, nil
}

func (uc *frontDeskUsecase) ListSchedules(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ListSchedules called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialtyKey, specialty),
		zap.Stringer(constvars.LoggingDoctorIDKey, doctorID),
	)

	slots, err := uc.ClinicAPIClient.ListAvailableSchedules(ctx, specialty, doctorID)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.ListSchedules error fetching schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("frontDeskUsecase.ListSchedules succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(slots)),
	)
	return slots, nil
}

func (uc *frontDeskUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ListPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.ClinicAPIClient.ListPatients(ctx)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.ListPatients error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("frontDeskUsecase.ListPatients succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(patients)),
	)
	return patients, nil
}

func (uc *frontDeskUsecase) RegisterPatient(ctx context.Context, request *requests.RegisterPatientRequest) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.RegisterPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ok, err := uc.ClinicAPIClient.RegisterPatient(ctx, request.Name, request.Phone)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.RegisterPatient error calling clinic API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		uc.Log.Warn("frontDeskUsecase.RegisterPatient rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrOperationRejected(constvars.ErrClientRegisterPatientFailed, constvars.ResourceNamePatient)
	}

	utils.LogBusinessEvent(uc.Log, "patient_registered", requestID)
	return nil
}

// ScheduleAppointment books patientID with doctorID. Date and time travel
// as given; the clinic API owns their format.
func (uc *frontDeskUsecase) ScheduleAppointment(ctx context.Context, request *requests.ScheduleAppointmentRequest) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ScheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Stringer(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	ok, err := uc.ClinicAPIClient.SchedulePatientAppointment(ctx, request.PatientID, request.DoctorID, request.Date, request.Time)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.ScheduleAppointment error calling clinic API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		uc.Log.Warn("frontDeskUsecase.ScheduleAppointment rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrOperationRejected(constvars.ErrClientScheduleAppointmentFailed, constvars.ResourceNameAppointment)
	}

	utils.LogBusinessEvent(uc.Log, "appointment_scheduled", requestID,
		zap.Stringer(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Stringer(constvars.LoggingDoctorIDKey, request.DoctorID),
	)
	return nil
}

// ListArrivals returns the booked slots of specialty, the ones a patient
// can check in for.
func (uc *frontDeskUsecase) ListArrivals(ctx context.Context, specialty string) ([]models.ScheduleSlot, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ListArrivals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialtyKey, specialty),
	)

	slots, err := uc.ClinicAPIClient.ListAvailableSchedules(ctx, specialty, models.ID{})
	if err != nil {
		uc.Log.Error("frontDeskUsecase.ListArrivals error fetching schedules",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	arrivals := make([]models.ScheduleSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.IsBooked() {
			arrivals = append(arrivals, slot)
		}
	}

	uc.Log.Info("frontDeskUsecase.ListArrivals succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(arrivals)),
	)
	return arrivals, nil
}

func (uc *frontDeskUsecase) RegisterArrival(ctx context.Context, appointmentID models.ID) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.RegisterArrival called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	ok, err := uc.ClinicAPIClient.RegisterArrival(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.RegisterArrival error calling clinic API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		uc.Log.Warn("frontDeskUsecase.RegisterArrival rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrOperationRejected(constvars.ErrClientRegisterArrivalFailed, constvars.ResourceNameArrival)
	}

	utils.LogBusinessEvent(uc.Log, "arrival_registered", requestID,
		zap.Stringer(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// ViewAgenda loads the doctors and the slots of the selection together. If
// either call fails the whole agenda fails.
func (uc *frontDeskUsecase) ViewAgenda(ctx context.Context, specialty string, doctorID models.ID) (*models.Agenda, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.ViewAgenda called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSpecialtyKey, specialty),
		zap.Stringer(constvars.LoggingDoctorIDKey, doctorID),
	)

	var (
		doctors []models.Doctor
		slots   []models.ScheduleSlot
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		doctors, err = uc.ClinicAPIClient.ListDoctors(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		slots, err = uc.ClinicAPIClient.ListAvailableSchedules(gctx, specialty, doctorID)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.Log.Error("frontDeskUsecase.ViewAgenda error building agenda",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("frontDeskUsecase.ViewAgenda succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("doctors_count", len(doctors)),
		zap.Int("schedules_count", len(slots)),
	)
	return &models.Agenda{
		Doctors:   doctors,
		Schedules: slots,
	}, nil
}

// RegisterConsultationDetails records the outcome of appointmentID. The
// payment method is not checked against PaymentMethods.
func (uc *frontDeskUsecase) RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, request *requests.ConsultationDetailsRequest) error {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("frontDeskUsecase.RegisterConsultationDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Stringer(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPaymentMethodKey, request.PaymentMethod),
	)

	ok, err := uc.ClinicAPIClient.RegisterConsultationDetails(ctx, appointmentID, request.Diagnosis, request.AmountPaid, request.PaymentMethod)
	if err != nil {
		uc.Log.Error("frontDeskUsecase.RegisterConsultationDetails error calling clinic API",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !ok {
		uc.Log.Warn("frontDeskUsecase.RegisterConsultationDetails rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return exceptions.ErrOperationRejected(constvars.ErrClientRegisterDetailsFailed, constvars.ResourceNameConsultation)
	}

	utils.LogBusinessEvent(uc.Log, "consultation_details_registered", requestID,
		zap.Stringer(constvars.LoggingAppointmentIDKey, appointmentID),
		zap.String(constvars.LoggingPaymentMethodKey, request.PaymentMethod),
	)
	return nil
}

func (uc *frontDeskUsecase) ListPaymentMethods() []string {
	methods := make([]string, len(constvars.PaymentMethods))
	copy(methods, constvars.PaymentMethods)
	return methods
}
