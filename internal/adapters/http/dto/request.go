package dto

import (
	"strings"

	"github.com/jsamuelsen11/dataworks/internal/domain"
)

const msgRequired = "is required"

// FilterCSVRequest represents the JSON body of POST /filter_csv.
// FilterValue keeps its JSON type: strings, numbers (float64), booleans, or
// null. A missing filter_value is treated as null.
type FilterCSVRequest struct {
	CSVPath      string `json:"csv_path"`
	FilterColumn string `json:"filter_column"`
	FilterValue  any    `json:"filter_value"`
}

// Validate checks only that csv_path is present. filter_column and
// filter_value are checked by the task after the path guard, so a path
// outside the allowed root is reported as forbidden whatever the other
// fields hold. Returns a *domain.ValidationError if the check fails.
func (r *FilterCSVRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.CSVPath) == "" {
		fields["csv_path"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
