package apperr

import "time"

// Problem is the uniform error response body.
type Problem struct {
	Status    int    `json:"status"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	Detail    string `json:"detail,omitempty"`
	Instance  string `json:"instance"`
	TraceID   string `json:"traceId"`
	Timestamp string `json:"timestamp"`
}

// NewProblem builds a problem body for err. detail is only filled when
// includeDetail is set (development environments).
func NewProblem(err error, instance, traceID string, includeDetail bool) Problem {
	kind := KindOf(err)
	p := Problem{
		Status:    kind.Status(),
		Title:     kind.Title(),
		Type:      kind.Type(),
		Instance:  instance,
		TraceID:   traceID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if includeDetail {
		p.Detail = err.Error()
	}
	return p
}
