// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

// ScheduleHandler serves company date assignments and their evaluation.
type ScheduleHandler struct {
	svc ports.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler with the given service port.
func NewScheduleHandler(svc ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

// ListCompanies handles GET /api/v1/projects/{projectId}/companies.
func (h *ScheduleHandler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	companies, err := h.svc.ListCompanies(r.Context(), projectID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToCompanyListResponse(companies))
}

// GetSchedule handles GET /api/v1/projects/{projectId}/schedule with
// company_id and optional sub_project_id / task_id query parameters.
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	ids, err := queryIDs(r, "company_id", "sub_project_id", "task_id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	key := schedule.Key{
		ProjectID:    projectID,
		SubProjectID: ids["sub_project_id"],
		TaskID:       ids["task_id"],
		CompanyID:    ids["company_id"],
	}
	s, err := h.svc.GetSchedule(r.Context(), key)
	if err != nil {
		dto.WriteErrorResponse(w, r, dto.InQuery(err))
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToScheduleResponse(s))
}

// SaveSchedule handles PUT /api/v1/projects/{projectId}/schedule.
func (h *ScheduleHandler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SaveScheduleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	hier, err := req.ToHierarchy()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	s, err := h.svc.SaveSchedule(r.Context(), req.Key(projectID), hier, req.ParsedLevels())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToScheduleResponse(s))
}

// ApplyBulk handles POST /api/v1/projects/{projectId}/schedule/bulk. A
// partially applied operation still answers 200; failures are listed in
// the body.
func (h *ScheduleHandler) ApplyBulk(w http.ResponseWriter, r *http.Request) {
	projectID, err := parseID(r, "projectId")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.BulkRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.ApplyBulk(r.Context(), req.ToPort(projectID))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToBulkResponse(result))
}

// Evaluate handles POST /api/v1/schedule/evaluate. The hierarchy is never
// persisted.
func (h *ScheduleHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req dto.EvaluateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	hier, err := req.ToHierarchy()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToEvaluationResponse(h.svc.EvaluateSchedule(r.Context(), hier)))
}
