package emulator

import (
	"fmt"
	"strings"

	"sentiment-model-cli/internal/domain"
)

// matchFilter compiles a list filter into a predicate. Only the metadata
// presence form used by the real service is understood, for example
// "text_sentiment_model_metadata:*". An empty filter matches everything.
func matchFilter(filter string) (func(*domain.Model) bool, error) {
	filter = strings.TrimSpace(filter)
	if filter == "" {
		return func(*domain.Model) bool { return true }, nil
	}

	field, value, ok := strings.Cut(filter, ":")
	if !ok || strings.TrimSpace(value) != "*" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	switch strings.TrimSpace(field) {
	case "text_sentiment_model_metadata":
		return func(m *domain.Model) bool {
			_, ok := m.Metadata.(domain.TextSentimentModelMetadata)
			return ok
		}, nil
	case "text_classification_model_metadata":
		return func(m *domain.Model) bool {
			_, ok := m.Metadata.(domain.TextClassificationModelMetadata)
			return ok
		}, nil
	default:
		return nil, fmt.Errorf("%w: unknown field %q", ErrInvalidFilter, field)
	}
}
