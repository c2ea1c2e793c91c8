package api

import (
	"net/http"

	"github.com/joestump/replydraft/internal/scenario"
)

// listScenarios returns every reply scenario in display order.
// GET /api/v1/scenarios
//
// @Summary      List scenarios
// @Description  Returns the fixed set of reply scenarios and whether each one uses tracking details
// @Tags         Scenarios
// @Produce      json
// @Success      200  {object}  ScenarioListResponse
// @Router       /scenarios [get]
func listScenarios(w http.ResponseWriter, r *http.Request) {
	kinds := scenario.All()
	resp := ScenarioListResponse{Scenarios: make([]ScenarioResponse, 0, len(kinds))}
	for _, k := range kinds {
		resp.Scenarios = append(resp.Scenarios, ScenarioResponse{
			Slug:            k.Slug(),
			Label:           k.Label(),
			AcceptsTracking: k.AcceptsTracking(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
