package dto

import "github.com/jsamuelsen11/dataworks/internal/domain/tabular"

// HealthResponse is the body of the liveness and readiness endpoints.
// Checks is omitted from liveness responses.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// ToHealthResponse converts checker results to a HealthResponse. A nil error
// is reported as okValue.
func ToHealthResponse(status, okValue string, results map[string]error) HealthResponse {
	checks := make(map[string]string, len(results))
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			continue
		}
		checks[name] = okValue
	}
	return HealthResponse{Status: status, Checks: checks}
}

// ToFilterCSVResponse returns rows as the response body, replacing nil with
// an empty slice so that no matches encode as [] rather than null.
func ToFilterCSVResponse(rows []tabular.Row) []tabular.Row {
	if rows == nil {
		return []tabular.Row{}
	}
	return rows
}
