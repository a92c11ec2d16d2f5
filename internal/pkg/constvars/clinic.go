package constvars

// Resource paths of the clinic API, appended to API_URL.
const (
	ResourceSpecialties        = "/specialties"
	ResourceDoctors            = "/doctors"
	ResourceAvailableSchedules = "/available_schedules"
	ResourcePatients           = "/patients"
	ResourceAppointments       = "/appointments"
)

// Human readable resource names used in error messages.
const (
	ResourceNameSpecialty    = "specialty"
	ResourceNameDoctor       = "doctor"
	ResourceNameSchedule     = "available schedule"
	ResourceNamePatient      = "patient"
	ResourceNameAppointment  = "appointment"
	ResourceNameConsultation = "consultation details"
	ResourceNameArrival      = "arrival"
)

const (
	PaymentMethodCash       = "Dinheiro"
	PaymentMethodCreditCard = "Cartão de Crédito"
	PaymentMethodDebitCard  = "Cartão de Débito"
	PaymentMethodBoleto     = "Boleto"
)

// PaymentMethods is the list offered to front desk UIs. The clinic API is
// the one deciding whether a method is accepted.
var PaymentMethods = []string{
	PaymentMethodCash,
	PaymentMethodCreditCard,
	PaymentMethodDebitCard,
	PaymentMethodBoleto,
}
