package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sentiment-model-cli/internal/domain"
	"sentiment-model-cli/internal/report"
)

func newListEvaluationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list-model-evaluations MODEL_ID",
		Short: "List a model's evaluations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evals, err := a.evaluations()
			if err != nil {
				return err
			}

			it := evals.List(cmd.Context(), args[0])
			var listed []*domain.ModelEvaluation
			for {
				e, err := it.Next()
				if err == domain.ErrDone {
					break
				}
				if err != nil {
					return err
				}
				listed = append(listed, e)
			}

			report.WriteEvaluationTable(cmd.OutOrStdout(), listed)
			return nil
		},
	}
}

func newGetEvaluationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get-model-evaluation MODEL_ID EVALUATION_ID",
		Short: "Show a single evaluation's raw metric values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			evals, err := a.evaluations()
			if err != nil {
				return err
			}

			e, err := evals.Get(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			report.WriteEvaluation(cmd.OutOrStdout(), e)
			return nil
		},
	}
}

func newDisplayEvaluationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "display-evaluation MODEL_ID",
		Short: "Summarize the model's overall sentiment quality as percentages",
		Long: `display-evaluation picks the model's aggregate evaluation, the one
covering every annotation spec, and prints its sentiment metrics scaled
to percentages.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			evals, err := a.evaluations()
			if err != nil {
				return err
			}

			e, err := evals.Overall(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			metrics, ok := e.Metrics.(domain.TextSentimentEvaluationMetrics)
			if !ok {
				return fmt.Errorf("evaluation %s carries no sentiment metrics", e.ID())
			}

			report.WriteSentimentSummary(cmd.OutOrStdout(), metrics)
			return nil
		},
	}
}
