package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sentiment-model-cli/internal/domain"
	"sentiment-model-cli/internal/report"
)

func newCreateModelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "create-model DATASET_ID DISPLAY_NAME",
		Short: "Train a sentiment model from a prepared dataset",
		Long: `create-model starts training a text sentiment model from an already
imported dataset. Training runs as a long-running operation; the command
returns immediately and prints the operation name to poll with
wait-operation or get-operation-status.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.models()
			if err != nil {
				return err
			}

			op, err := models.Create(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Training operation name: %s\n", op.Name)
			fmt.Fprintln(out, "Training started...")
			return nil
		},
	}
}

func newListModelsCmd(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list-models",
		Short: "List models in the configured project location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			models, err := a.models()
			if err != nil {
				return err
			}

			it := models.List(cmd.Context(), filter)
			var listed []*domain.Model
			for {
				m, err := it.Next()
				if err == domain.ErrDone {
					break
				}
				if err != nil {
					return err
				}
				listed = append(listed, m)
			}

			report.WriteModelTable(cmd.OutOrStdout(), listed)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "",
		`list filter, empty selects sentiment models ("text_sentiment_model_metadata:*")`)
	return cmd
}

func newGetModelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get-model MODEL_ID",
		Short: "Show a model's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.models()
			if err != nil {
				return err
			}

			m, err := models.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			report.WriteModel(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func newDeleteModelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-model MODEL_ID",
		Short: "Delete a model and wait for the deletion to finish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.models()
			if err != nil {
				return err
			}

			if _, err := models.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Model deleted.")
			return nil
		},
	}
}

func newDeployModelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "deploy-model MODEL_ID",
		Short: "Deploy a model for serving and wait until it is ready",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.models()
			if err != nil {
				return err
			}

			if _, err := models.Deploy(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Model deployed.")
			return nil
		},
	}
}

func newUndeployModelCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "undeploy-model MODEL_ID",
		Short: "Take a model out of serving and wait until it is undeployed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			models, err := a.models()
			if err != nil {
				return err
			}

			if _, err := models.Undeploy(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Model undeployed.")
			return nil
		},
	}
}
