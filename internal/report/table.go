package report

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"sentiment-model-cli/internal/domain"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithRendition(tw.Rendition{
			Borders:  tw.BorderNone,
			Settings: tw.Settings{Separators: tw.SeparatorsNone, Lines: tw.LinesNone},
		}),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
	)

	table.Header(header)

	return table
}

func WriteModelTable(w io.Writer, models []*domain.Model) {
	table := newTable(w, []string{"ID", "Display Name", "Dataset", "Type", "Created", "Deployment"})

	for _, m := range models {
		table.Append([]string{
			m.ID(),
			m.DisplayName,
			m.DatasetID,
			modelKind(m.Metadata),
			Timestamp(m.CreateTime),
			DeploymentState(m.DeploymentState),
		})
	}

	table.Render()
}

func WriteEvaluationTable(w io.Writer, evaluations []*domain.ModelEvaluation) {
	table := newTable(w, []string{"ID", "Annotation Spec", "Type", "Examples", "Created"})

	for _, e := range evaluations {
		spec := e.AnnotationSpecID
		if e.IsOverall() {
			spec = "(overall)"
		}

		table.Append([]string{
			e.ID(),
			spec,
			metricsKind(e.Metrics),
			strconv.Itoa(int(e.EvaluatedExampleCount)),
			Timestamp(e.CreateTime),
		})
	}

	table.Render()
}

func modelKind(m domain.ModelMetadata) string {
	switch m.(type) {
	case domain.TextSentimentModelMetadata:
		return "text_sentiment"
	case domain.TextClassificationModelMetadata:
		return "text_classification"
	default:
		return "unknown"
	}
}

func metricsKind(m domain.EvaluationMetrics) string {
	switch m.(type) {
	case domain.TextSentimentEvaluationMetrics:
		return "text_sentiment"
	case domain.TextClassificationEvaluationMetrics:
		return "text_classification"
	default:
		return "unknown"
	}
}
