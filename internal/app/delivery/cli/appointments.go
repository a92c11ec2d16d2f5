package cli

import (
	"fmt"

	"climed-service/internal/app/models"
	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (a *app) newAppointmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointments",
		Short: "Schedule appointments and record their progress",
	}
	cmd.AddCommand(
		a.newAppointmentsScheduleCommand(),
		a.newAppointmentsArriveCommand(),
		a.newAppointmentsConsultCommand(),
	)
	return cmd
}

func (a *app) newAppointmentsScheduleCommand() *cobra.Command {
	var patientID, doctorID, date, time string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Book an appointment for a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			err = uc.ScheduleAppointment(ctx, &requests.ScheduleAppointmentRequest{
				PatientID: models.ParseID(patientID),
				DoctorID:  models.ParseID(doctorID),
				Date:      date,
				Time:      time,
			})
			if err != nil {
				return a.userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), constvars.ScheduleAppointmentSuccessMessage)
			return nil
		},
	}
	cmd.Flags().StringVar(&patientID, "patient-id", "", "patient identifier")
	cmd.Flags().StringVar(&doctorID, "doctor-id", "", "doctor identifier (CRM)")
	cmd.Flags().StringVar(&date, "date", "", "appointment date, as the clinic API expects it")
	cmd.Flags().StringVar(&time, "time", "", "appointment time, as the clinic API expects it")
	for _, name := range []string{"patient-id", "doctor-id", "date", "time"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}

func (a *app) newAppointmentsArriveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "arrive <appointment-id>",
		Short: "Confirm the patient of an appointment has arrived",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			if err := uc.RegisterArrival(ctx, models.ParseID(args[0])); err != nil {
				return a.userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), constvars.RegisterArrivalSuccessMessage)
			return nil
		},
	}
}

func (a *app) newAppointmentsConsultCommand() *cobra.Command {
	request := new(requests.ConsultationDetailsRequest)

	cmd := &cobra.Command{
		Use:   "consult <appointment-id>",
		Short: "Record diagnosis and payment of a finished consultation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			if err := uc.RegisterConsultationDetails(ctx, models.ParseID(args[0]), request); err != nil {
				return a.userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), constvars.RegisterDetailsSuccessMessage)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Diagnosis, "diagnosis", "", "diagnosis text")
	cmd.Flags().Float64Var(&request.AmountPaid, "amount-paid", 0, "amount paid by the patient")
	cmd.Flags().StringVar(&request.PaymentMethod, "payment-method", "", "payment method, see payment-methods")
	for _, name := range []string{"diagnosis", "amount-paid", "payment-method"} {
		cmd.MarkFlagRequired(name)
	}
	return cmd
}
