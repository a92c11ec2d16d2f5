package models

type Specialty = string

type Doctor struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// ScheduleSlot is an appointment window of a doctor. PatientName and
// AppointmentID are set once the slot is booked.
type ScheduleSlot struct {
	ID            *ID     `json:"id,omitempty"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DoctorID      *ID     `json:"doctor_id,omitempty"`
	PatientName   *string `json:"patient_name"`
	AppointmentID *ID     `json:"appointment_id,omitempty"`
}

func (s ScheduleSlot) IsBooked() bool {
	return s.AppointmentID != nil && !s.AppointmentID.IsZero()
}

type Patient struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Appointment struct {
	ID            ID       `json:"id"`
	PatientID     ID       `json:"patient_id"`
	DoctorID      ID       `json:"doctor_id"`
	Date          string   `json:"date"`
	Time          string   `json:"time"`
	Arrived       bool     `json:"arrived"`
	Diagnosis     *string  `json:"diagnosis,omitempty"`
	AmountPaid    *float64 `json:"amount_paid,omitempty"`
	PaymentMethod *string  `json:"payment_method,omitempty"`
}

// Agenda is what the agenda screen shows: the doctors to pick from and the
// slots of the current selection.
type Agenda struct {
	Doctors   []Doctor       `json:"doctors"`
	Schedules []ScheduleSlot `json:"schedules"`
}
