package cli

import (
	"fmt"

	"climed-service/internal/pkg/constvars"
	"climed-service/internal/pkg/dto/requests"

	"github.com/spf13/cobra"
)

func (a *app) newPatientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List and register patients",
	}
	cmd.AddCommand(a.newPatientsListCommand(), a.newPatientsRegisterCommand())
	return cmd
}

func (a *app) newPatientsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered patients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			patients, err := uc.ListPatients(ctx)
			if err != nil {
				return a.userError(err)
			}
			renderPatients(cmd.OutOrStdout(), patients)
			return nil
		},
	}
}

func (a *app) newPatientsRegisterCommand() *cobra.Command {
	request := new(requests.RegisterPatientRequest)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := a.usecase()
			if err != nil {
				return err
			}
			ctx, cancel := a.commandContext(cmd)
			defer cancel()

			if err := uc.RegisterPatient(ctx, request); err != nil {
				return a.userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), constvars.RegisterPatientSuccessMessage)
			return nil
		},
	}
	cmd.Flags().StringVar(&request.Name, "name", "", "patient full name")
	cmd.Flags().StringVar(&request.Phone, "phone", "", "patient phone number")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("phone")
	return cmd
}
