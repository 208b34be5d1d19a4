package domain

import (
	"fmt"
	"strings"
)

// Resource name builders for the v1beta1 REST surface. Identical inputs
// always produce identical names; distinct identifiers never collide because
// every segment is slash-delimited.

func LocationPath(project, region string) string {
	return fmt.Sprintf("projects/%s/locations/%s", project, region)
}

func ModelPath(project, region, model string) string {
	return fmt.Sprintf("projects/%s/locations/%s/models/%s", project, region, model)
}

func EvaluationPath(project, region, model, evaluation string) string {
	return fmt.Sprintf("projects/%s/locations/%s/models/%s/modelEvaluations/%s", project, region, model, evaluation)
}

func OperationPath(project, region, operation string) string {
	return fmt.Sprintf("projects/%s/locations/%s/operations/%s", project, region, operation)
}

// ResourceID returns the final segment of a resource name, the bare
// identifier of the addressed resource.
func ResourceID(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}
