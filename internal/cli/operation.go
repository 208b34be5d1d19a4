package cli

import (
	"github.com/spf13/cobra"

	"sentiment-model-cli/internal/report"
)

func newOperationStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get-operation-status OPERATION_NAME",
		Short: "Show a long-running operation's current state",
		Long: `get-operation-status fetches one snapshot of the named operation.
OPERATION_NAME is the fully qualified name printed by create-model, for
example projects/p/locations/us-central1/operations/TRN123.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := a.operations()
			if err != nil {
				return err
			}

			op, err := ops.Status(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			report.WriteOperation(cmd.OutOrStdout(), op)
			return nil
		},
	}
}

func newWaitOperationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wait-operation OPERATION_NAME",
		Short: "Block until a long-running operation completes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, err := a.operations()
			if err != nil {
				return err
			}

			op, err := ops.Wait(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			report.WriteOperation(cmd.OutOrStdout(), op)
			return nil
		},
	}
}
