package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/dataworks/internal/adapters/http/dto"
	"github.com/jsamuelsen11/dataworks/internal/ports"
)

// FilterHandler exposes the tabular filter task over HTTP.
type FilterHandler struct {
	tasks ports.TaskService
}

// NewFilterHandler creates a new FilterHandler with the given task service.
func NewFilterHandler(tasks ports.TaskService) *FilterHandler {
	return &FilterHandler{tasks: tasks}
}

// FilterCSV handles POST /filter_csv. It responds 200 with the matching rows
// as a JSON array, 403 when csv_path is outside the allowed root, and 400
// for every other failure.
func (h *FilterHandler) FilterCSV(w http.ResponseWriter, r *http.Request) {
	var req dto.FilterCSVRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	rows, err := h.tasks.FilterTabular(r.Context(), mapFilterRequest(&req))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFilterCSVResponse(rows))
}
