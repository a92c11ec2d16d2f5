package cli

import (
	"fmt"

	"climed-service/internal/app/models"

	"github.com/spf13/cobra"
)

func (a *app) newSpecialtiesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "specialties",
		Short: "List medical specialties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			specialties, err := uc.ListSpecialties(ctx)
			if err != nil {
				return a.userError(err)
			}
			renderSpecialties(cmd.OutOrStdout(), specialties)
			return nil
		},
	}
}

func (a *app) newDoctorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctors",
		Short: "List doctors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			doctors, err := uc.ListDoctors(ctx)
			if err != nil {
				return a.userError(err)
			}
			renderDoctors(cmd.OutOrStdout(), doctors)
			return nil
		},
	}
}

func (a *app) newSchedulesCommand() *cobra.Command {
	var specialty, crm string

	cmd := &cobra.Command{
		Use:   "schedules",
		Short: "List available schedule slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			slots, err := uc.ListSchedules(ctx, specialty, models.ParseID(crm))
			if err != nil {
				return a.userError(err)
			}
			renderSlots(cmd.OutOrStdout(), slots)
			return nil
		},
	}
	cmd.Flags().StringVar(&specialty, "specialty", "", "specialty to filter by, all when empty")
	cmd.Flags().StringVar(&crm, "crm", "", "doctor CRM to filter by")
	return cmd
}

func (a *app) newArrivalsCommand() *cobra.Command {
	var specialty string

	cmd := &cobra.Command{
		Use:   "arrivals",
		Short: "List booked slots waiting for check in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			arrivals, err := uc.ListArrivals(ctx, specialty)
			if err != nil {
				return a.userError(err)
			}
			renderSlots(cmd.OutOrStdout(), arrivals)
			return nil
		},
	}
	cmd.Flags().StringVar(&specialty, "specialty", "", "specialty to filter by, all when empty")
	return cmd
}

func (a *app) newAgendaCommand() *cobra.Command {
	var specialty, crm string

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show doctors and the slots of the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			agenda, err := uc.ViewAgenda(ctx, specialty, models.ParseID(crm))
			if err != nil {
				return a.userError(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Doctors")
			renderDoctors(out, agenda.Doctors)
			fmt.Fprintln(out, "Schedules")
			renderSlots(out, agenda.Schedules)
			return nil
		},
	}
	cmd.Flags().StringVar(&specialty, "specialty", "", "specialty to filter by, all when empty")
	cmd.Flags().StringVar(&crm, "crm", "", "doctor CRM to filter by")
	return cmd
}

func (a *app) newPaymentMethodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "payment-methods",
		Short: "List known payment methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			methods := uc.ListPaymentMethods()
			rows := make([][]string, 0, len(methods))
			for _, method := range methods {
				rows = append(rows, []string{method})
			}
			renderTable(cmd.OutOrStdout(), []string{"Payment method"}, rows)
			return nil
		},
	}
}
