package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	GetSpecialtiesSuccessMessage    = "specialties retrieved successfully"
	GetDoctorsSuccessMessage        = "doctors retrieved successfully"
	GetSchedulesSuccessMessage      = "schedules retrieved successfully"
	GetPatientsSuccessMessage       = "patients retrieved successfully"
	GetArrivalsSuccessMessage       = "arrivals retrieved successfully"
	GetAgendaSuccessMessage         = "agenda retrieved successfully"
	GetPaymentMethodsSuccessMessage = "payment methods retrieved successfully"

	RegisterPatientSuccessMessage     = "Patient registered successfully"
	ScheduleAppointmentSuccessMessage = "Appointment scheduled successfully"
	RegisterArrivalSuccessMessage     = "Arrival confirmed"
	RegisterDetailsSuccessMessage     = "Consultation details registered successfully"
)
