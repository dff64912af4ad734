// Package http is the inbound HTTP adapter: routes, server lifecycle and the
// middleware and handler subpackages.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// NewRouter mounts the probes and the v1 schedule API behind middlewares,
// applied in the order given. Unknown routes and methods answer with
// problem documents like every other error.
func NewRouter(
	schedules *handlers.ScheduleHandler,
	probes *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("no route for %s: %w", req.URL.Path, domain.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteErrorResponse(w, req, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, dto.ErrMethodNotAllowed))
	})

	r.Get("/health/live", probes.Liveness)
	r.Get("/health/ready", probes.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/projects/{projectId}/companies", schedules.ListCompanies)

		r.Get("/projects/{projectId}/schedule", schedules.GetSchedule)
		r.Put("/projects/{projectId}/schedule", schedules.SaveSchedule)
		r.Post("/projects/{projectId}/schedule/bulk", schedules.ApplyBulk)

		r.Post("/schedule/evaluate", schedules.Evaluate)
	})

	return r
}
