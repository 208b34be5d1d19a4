package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"sentiment-model-cli/internal/emulator"
)

func newEmulatorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "emulator",
		Short: "Serve an in-memory stand-in for the remote API",
		Long: `emulator serves the slice of the AutoML v1beta1 REST surface this tool
uses, backed by process memory, with operations that complete after
EMULATOR_OPERATION_DELAY. Point the other commands at it:

  AUTOML_ENDPOINT=http://127.0.0.1:8287 PROJECT_ID=demo REGION_NAME=us-central1 \
    sentimentctl list-models`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return emulator.New(&a.cfg.Emulator).Run(ctx)
		},
	}
}
