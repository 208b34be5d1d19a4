package cli

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sentiment-model-cli/internal/automl"
	"sentiment-model-cli/internal/config"
	"sentiment-model-cli/internal/usecase"
)

// app holds the configuration shared by every subcommand. Commands that talk
// to the remote API validate it lazily, so local commands such as emulator
// run without project credentials.
type app struct {
	cfg *config.Config

	project string
	region  string
}

func New() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "sentimentctl",
		Short: "Manage AutoML Natural Language sentiment models",
		Long: `sentimentctl drives the model lifecycle of a managed text sentiment
service: train models from prepared datasets, poll the resulting
long-running operations, inspect evaluations, and control deployment.

Configuration comes from the environment (PROJECT_ID, REGION_NAME,
AUTOML_ENDPOINT, ...); --project and --region override it per call.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if a.project != "" {
				cfg.Project.ID = a.project
			}
			if a.region != "" {
				cfg.Project.Region = a.region
			}
			initLogger(&cfg.Logger)
			a.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.project, "project", "", "project id (overrides PROJECT_ID)")
	root.PersistentFlags().StringVar(&a.region, "region", "", "compute region (overrides REGION_NAME)")

	root.AddCommand(
		newCreateModelCmd(a),
		newListModelsCmd(a),
		newGetModelCmd(a),
		newDeleteModelCmd(a),
		newDeployModelCmd(a),
		newUndeployModelCmd(a),
		newListEvaluationsCmd(a),
		newGetEvaluationCmd(a),
		newDisplayEvaluationCmd(a),
		newOperationStatusCmd(a),
		newWaitOperationCmd(a),
		newEmulatorCmd(a),
	)
	return root
}

func initLogger(cfg *config.LoggerConfig) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp: true,
		})
	}
}

func (a *app) validated() (*config.Config, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	return a.cfg, nil
}

func (a *app) models() (*usecase.ModelUseCase, error) {
	cfg, err := a.validated()
	if err != nil {
		return nil, err
	}
	return usecase.NewModelUseCase(automl.NewClient(&cfg.API), cfg), nil
}

func (a *app) operations() (*usecase.OperationUseCase, error) {
	cfg, err := a.validated()
	if err != nil {
		return nil, err
	}
	return usecase.NewOperationUseCase(automl.NewClient(&cfg.API), cfg), nil
}

func (a *app) evaluations() (*usecase.EvaluationUseCase, error) {
	cfg, err := a.validated()
	if err != nil {
		return nil, err
	}
	return usecase.NewEvaluationUseCase(automl.NewClient(&cfg.API), cfg), nil
}
