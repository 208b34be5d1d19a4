package domain

import (
	"time"
)

// Operation tracks a long-running job on the remote service. Create, deploy,
// undeploy and delete all return one; callers poll it until Done is set.
type Operation struct {
	Name            string          `json:"name"`
	Done            bool            `json:"done"`
	CreateTime      time.Time       `json:"create_time"`
	UpdateTime      time.Time       `json:"update_time"`
	ProgressPercent int             `json:"progress_percent"`
	Error           *OperationError `json:"error,omitempty"`
}

type OperationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *OperationError) Error() string {
	return e.Message
}

// Err returns the failure recorded on a completed operation, or nil when the
// operation is still running or finished cleanly.
func (o *Operation) Err() error {
	if o.Error == nil {
		return nil
	}
	return o.Error
}
