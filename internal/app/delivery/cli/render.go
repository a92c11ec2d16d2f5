package cli

import (
	"io"
	"strconv"

	"climed-service/internal/app/models"

	"github.com/olekukonko/tablewriter"
)

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

func renderSpecialties(w io.Writer, specialties []models.Specialty) {
	rows := make([][]string, 0, len(specialties))
	for i, specialty := range specialties {
		rows = append(rows, []string{strconv.Itoa(i + 1), specialty})
	}
	renderTable(w, []string{"#", "Specialty"}, rows)
}

func renderDoctors(w io.Writer, doctors []models.Doctor) {
	rows := make([][]string, 0, len(doctors))
	for _, doctor := range doctors {
		rows = append(rows, []string{doctor.ID.String(), doctor.Name})
	}
	renderTable(w, []string{"CRM", "Name"}, rows)
}

func renderPatients(w io.Writer, patients []models.Patient) {
	rows := make([][]string, 0, len(patients))
	for _, patient := range patients {
		rows = append(rows, []string{patient.ID.String(), patient.Name, patient.Phone})
	}
	renderTable(w, []string{"ID", "Name", "Phone"}, rows)
}

func renderSlots(w io.Writer, slots []models.ScheduleSlot) {
	rows := make([][]string, 0, len(slots))
	for _, slot := range slots {
		rows = append(rows, []string{
			slot.StartTime,
			slot.EndTime,
			optionalID(slot.DoctorID),
			optionalString(slot.PatientName),
			optionalID(slot.AppointmentID),
		})
	}
	renderTable(w, []string{"Start", "End", "Doctor", "Patient", "Appointment"}, rows)
}

func optionalID(id *models.ID) string {
	if id == nil {
		return "-"
	}
	return id.String()
}

func optionalString(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}
