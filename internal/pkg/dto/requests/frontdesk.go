package requests

import "climed-service/internal/app/models"

// Bodies accepted by the front desk gateway.

type RegisterPatientRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type ScheduleAppointmentRequest struct {
	PatientID models.ID `json:"patient_id"`
	DoctorID  models.ID `json:"doctor_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}

type ConsultationDetailsRequest struct {
	Diagnosis     string  `json:"diagnosis"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentMethod string  `json:"payment_method"`
}
