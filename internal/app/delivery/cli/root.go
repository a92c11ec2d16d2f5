// Package cli is the command line front desk. Every command is one call to
// the front desk usecases against the configured clinic API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"climed-service/internal/app/contracts"
	"climed-service/internal/pkg/exceptions"
	"climed-service/internal/pkg/utils"

	"github.com/spf13/cobra"
)

// Version and Tag are set at build time with -ldflags.
var (
	Version = "develop"
	Tag     = "0.0.1-rc"
)

type Dependencies struct {
	FrontDeskUsecase contracts.FrontDeskUsecase
	RequestTimeout   time.Duration
}

// DependencyFactory wires the usecases. It runs only once a command that
// talks to the clinic API is executed.
type DependencyFactory func(verbose bool) (*Dependencies, error)

type app struct {
	factory DependencyFactory
	verbose bool
	deps    *Dependencies
}

func NewRootCommand(factory DependencyFactory) *cobra.Command {
	a := &app{factory: factory}

	rootCmd := &cobra.Command{
		Use:   "climed",
		Short: "Clinic front desk",
		Long: `climed runs the clinic front desk from the terminal: patients,
appointments, arrivals and consultation outcomes, all recorded in the
clinic API pointed to by API_URL.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Tag),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate("climed version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log every clinic API call to stderr")

	rootCmd.AddCommand(
		a.newSpecialtiesCommand(),
		a.newDoctorsCommand(),
		a.newSchedulesCommand(),
		a.newArrivalsCommand(),
		a.newAgendaCommand(),
		a.newPaymentMethodsCommand(),
		a.newPatientsCommand(),
		a.newAppointmentsCommand(),
	)
	return rootCmd
}

func (a *app) usecase() (contracts.FrontDeskUsecase, error) {
	if a.deps == nil {
		deps, err := a.factory(a.verbose)
		if err != nil {
			var customErr *exceptions.CustomError
			if errors.As(err, &customErr) {
				return nil, errors.New(customErr.DevMessage)
			}
			return nil, err
		}
		a.deps = deps
	}
	return a.deps.FrontDeskUsecase, nil
}

// commandContext carries a fresh request ID so the CLI calls can be told
// apart in the clinic API logs.
func (a *app) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := utils.ContextWithRequestID(cmd.Context(), utils.GenerateRequestID())
	if a.deps == nil || a.deps.RequestTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.deps.RequestTimeout)
}

// userError turns err into the message a front desk user should read.
func (a *app) userError(err error) error {
	var customErr *exceptions.CustomError
	if !errors.As(err, &customErr) {
		return err
	}
	if a.verbose {
		return fmt.Errorf("%s: %s", customErr.ClientMessage, customErr.DevMessage)
	}
	return errors.New(customErr.ClientMessage)
}
