package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentiment-model-cli/internal/domain"
)

func TestWriteModelTable(t *testing.T) {
	var buf strings.Builder
	WriteModelTable(&buf, []*domain.Model{
		{
			Name:            "projects/p/locations/r/models/TST123",
			DisplayName:     "reviews_v1",
			DatasetID:       "TST456",
			CreateTime:      time.Unix(1234567890, 0),
			DeploymentState: domain.DeploymentStateDeployed,
			Metadata:        domain.TextSentimentModelMetadata{},
		},
		{
			Name:        "projects/p/locations/r/models/TCN789",
			DisplayName: "topics_v2",
			DatasetID:   "TCN111",
			Metadata:    domain.TextClassificationModelMetadata{ClassificationType: domain.ClassificationTypeMulticlass},
		},
	})

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "DISPLAY NAME")
	assert.Contains(t, out, "TST123")
	assert.Contains(t, out, "reviews_v1")
	assert.Contains(t, out, "text_sentiment")
	assert.Contains(t, out, "text_classification")
	assert.Contains(t, out, "2009-02-13T23:31:30Z")
	assert.Contains(t, out, "deployed")
}

func TestWriteModelTableLayout(t *testing.T) {
	var buf strings.Builder
	WriteModelTable(&buf, []*domain.Model{
		{
			Name:        "projects/p/locations/r/models/TST123",
			DisplayName: "reviews_v1",
			DatasetID:   "TST456",
			CreateTime:  time.Unix(1234567890, 0),
			Metadata:    domain.TextSentimentModelMetadata{},
		},
	})

	out := buf.String()
	for _, glyph := range []string{"|", "+", "│", "─"} {
		assert.NotContains(t, out, glyph)
	}

	// One header line, one row line, nothing else.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, strings.ToUpper(lines[0]), "DISPLAY NAME")
	assert.Contains(t, lines[1], "TST123")
	assert.Contains(t, lines[1], "reviews_v1")
	assert.Contains(t, lines[1], "2009-02-13T23:31:30Z")
}

func TestWriteModelTableEmpty(t *testing.T) {
	var buf strings.Builder
	WriteModelTable(&buf, nil)

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "ID")
	assert.NotContains(t, out, "TST")
}

func TestWriteEvaluationTable(t *testing.T) {
	var buf strings.Builder
	WriteEvaluationTable(&buf, []*domain.ModelEvaluation{
		{
			Name:                  "projects/p/locations/r/models/m/modelEvaluations/1",
			EvaluatedExampleCount: 500,
			CreateTime:            time.Unix(1234567890, 0),
			Metrics:               domain.TextSentimentEvaluationMetrics{Precision: 0.85},
		},
		{
			Name:                  "projects/p/locations/r/models/m/modelEvaluations/2",
			AnnotationSpecID:      "1001",
			EvaluatedExampleCount: 100,
			Metrics:               domain.TextSentimentEvaluationMetrics{Precision: 0.8},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "(overall)")
	assert.Contains(t, out, "1001")
	assert.Contains(t, out, "500")
}
