package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResourcePaths(t *testing.T) {
	assert.Equal(t, "projects/prj/locations/us-central1", LocationPath("prj", "us-central1"))
	assert.Equal(t, "projects/prj/locations/us-central1/models/TST123", ModelPath("prj", "us-central1", "TST123"))
	assert.Equal(t, "projects/prj/locations/us-central1/models/TST123/modelEvaluations/777", EvaluationPath("prj", "us-central1", "TST123", "777"))
	assert.Equal(t, "projects/prj/locations/us-central1/operations/TRN42", OperationPath("prj", "us-central1", "TRN42"))
}

func TestResourcePathsAreDeterministic(t *testing.T) {
	assert.Equal(t, ModelPath("p", "r", "m"), ModelPath("p", "r", "m"))
	assert.NotEqual(t, ModelPath("p", "r", "m1"), ModelPath("p", "r", "m2"))
	assert.NotEqual(t, EvaluationPath("p", "r", "m", "e1"), EvaluationPath("p", "r", "m", "e2"))
}

func TestResourceID(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"model path", "projects/p/locations/r/models/TST123", "TST123"},
		{"evaluation path", "projects/p/locations/r/models/TST123/modelEvaluations/777", "777"},
		{"operation path", "projects/p/locations/r/operations/TRN42", "TRN42"},
		{"bare id", "TST123", "TST123"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceID(tt.in))
		})
	}
}
