package requests

import "climed-service/internal/app/models"

// Bodies sent to the clinic API.

type RegisterPatient struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ScheduleAppointment struct {
	PatientID models.ID `json:"patient_id"`
	DoctorID  models.ID `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}

type RegisterArrival struct {
	Arrived bool `json:"arrived"`
}

type ConsultationDetails struct {
	Diagnosis     string  `json:"diagnosis"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `json:"payment_method"`
}
