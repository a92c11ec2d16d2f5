package frontdesk

import (
	"context"
	"sync"

	"climed-service/internal/app/models"
)

// fakeClinicAPIClient answers with whatever the test sets and records the
// arguments it was called with.
type fakeClinicAPIClient struct {
	mu sync.Mutex

	specialties    []models.Specialty
	doctors        []models.Doctor
	slots          []models.ScheduleSlot
	patients       []models.Patient
	mutationResult bool
	readErr        error
	doctorsErr     error
	schedulesErr   error
	mutationErr    error

	scheduleCalls []scheduleCall
	registered    []string
	booked        []bookCall
	arrivals      []models.ID
	details       []detailsCall
}

type scheduleCall struct {
	Specialty string
	DoctorID  models.ID
}

type bookCall struct {
	PatientID models.ID
	DoctorID  models.ID
	Date      string
	Time      string
}

type detailsCall struct {
	AppointmentID models.ID
	Diagnosis     string
	AmountPaid    float64
	PaymentMethod string
}

func (f *fakeClinicAPIClient) ListSpecialties(ctx context.Context) ([]models.Specialty, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.specialties, nil
}

func (f *fakeClinicAPIClient) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	if f.doctorsErr != nil {
		return nil, f.doctorsErr
	}
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.doctors, nil
}

func (f *fakeClinicAPIClient) ListAvailableSchedules(ctx context.Context, specialty string, doctorID models.ID) ([]models.ScheduleSlot, error) {
	f.mu.Lock()
	f.scheduleCalls = append(f.scheduleCalls, scheduleCall{Specialty: specialty, DoctorID: doctorID})
	f.mu.Unlock()
	if f.schedulesErr != nil {
		return nil, f.schedulesErr
	}
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.slots, nil
}

func (f *fakeClinicAPIClient) ListPatients(ctx context.Context) ([]models.Patient, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.patients, nil
}

func (f *fakeClinicAPIClient) RegisterPatient(ctx context.Context, name, phone string) (bool, error) {
	f.registered = append(f.registered, name+"|"+phone)
	return f.mutationResult, f.mutationErr
}

func (f *fakeClinicAPIClient) SchedulePatientAppointment(ctx context.Context, patientID, doctorID models.ID, date, time string) (bool, error) {
	f.booked = append(f.booked, bookCall{PatientID: patientID, DoctorID: doctorID, Date: date, Time: time})
	return f.mutationResult, f.mutationErr
}

func (f *fakeClinicAPIClient) RegisterArrival(ctx context.Context, appointmentID models.ID) (bool, error) {
	f.arrivals = append(f.arrivals, appointmentID)
	return f.mutationResult, f.mutationErr
}

func (f *fakeClinicAPIClient) RegisterConsultationDetails(ctx context.Context, appointmentID models.ID, diagnosis string, amountPaid float64, paymentMethod string) (bool, error) {
	f.details = append(f.details, detailsCall{
		AppointmentID: appointmentID,
		Diagnosis:     diagnosis,
		AmountPaid:    amountPaid,
		PaymentMethod: paymentMethod,
	})
	return f.mutationResult, f.mutationErr
}
