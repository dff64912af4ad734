package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	companyacl "github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/clients/acl/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/clients/acl/dates"
	projectacl "github.com/jsamuelsen11/assignment-schedule-service/internal/adapters/clients/acl/project"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/project"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.PlatformClient = (*PlatformClient)(nil)
	_ ports.HealthChecker  = (*PlatformClient)(nil)
)

// PlatformClient is the outbound adapter for the platform API, which owns
// projects, companies and every stored date range.
//
// Responses are translated by the subpackages [projectacl], [companyacl]
// and [dates]; HTTP failures become domain errors via [TranslateHTTPError].
// Circuit breaking, rate limiting, retry and tracing come from the
// underlying [httpclient.Client].
type PlatformClient struct {
	http   *httpclient.Client
	req    *Requester
	logger *slog.Logger
}

// NewPlatformClient creates a PlatformClient. The client's BaseURL should
// point to the platform API root (e.g. "https://platform.example.com").
func NewPlatformClient(client *httpclient.Client, logger *slog.Logger) *PlatformClient {
	return &PlatformClient{
		http:   client,
		req:    NewRequester(client, logger),
		logger: logger,
	}
}

// GetProject fetches GET /api/v1/projects/{id}.
func (c *PlatformClient) GetProject(ctx context.Context, id int64) (*project.Project, error) {
	path := fmt.Sprintf("/api/v1/projects/%d", id)

	var dto projectacl.ProjectDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	p := projectacl.ToDomainProject(dto)
	return &p, nil
}

// ListSubProjects fetches GET /api/v1/projects/{id}/sub-projects.
func (c *PlatformClient) ListSubProjects(ctx context.Context, projectID int64) ([]project.SubProject, error) {
	path := fmt.Sprintf("/api/v1/projects/%d/sub-projects", projectID)

	var dto projectacl.SubProjectListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return projectacl.ToDomainSubProjects(projectID, dto), nil
}

// ListTasks fetches GET /api/v1/sub-projects/{id}/tasks.
func (c *PlatformClient) ListTasks(ctx context.Context, subProjectID int64) ([]project.Task, error) {
	path := fmt.Sprintf("/api/v1/sub-projects/%d/tasks", subProjectID)

	var dto projectacl.TaskListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return projectacl.ToDomainTasks(subProjectID, dto), nil
}

// ListCompanies fetches GET /api/v1/projects/{id}/companies.
func (c *PlatformClient) ListCompanies(ctx context.Context, projectID int64) ([]company.Company, error) {
	path := fmt.Sprintf("/api/v1/projects/%d/companies", projectID)

	var dto companyacl.CompanyListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		return nil, err
	}
	return companyacl.ToDomainCompanies(dto), nil
}

// GetRange fetches GET /api/v1/{resource}/{id}/dates?company_id=N. A 404
// or an empty body means nothing was stored and yields an empty range.
func (c *PlatformClient) GetRange(ctx context.Context, ref schedule.Ref) (schedule.DateRange, error) {
	path, err := dates.DatesPath(ref)
	if err != nil {
		return schedule.DateRange{}, err
	}
	q := url.Values{"company_id": []string{strconv.FormatInt(ref.CompanyID, 10)}}
	path += "?" + q.Encode()

	var dto dates.DatesDTO
	if err := c.req.Do(ctx, http.MethodGet, path, nil, &dto); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return schedule.DateRange{}, nil
		}
		return schedule.DateRange{}, err
	}

	r, err := dates.ToDomainRange(dto)
	if err != nil {
		c.logger.ErrorContext(ctx, "platform returned malformed dates",
			slog.String("operation", "GetRange"),
			slog.String("level", ref.Level.String()),
			slog.Int64("entity_id", ref.EntityID),
			slog.Int64("company_id", ref.CompanyID),
			slog.Any("error", err),
		)
		return schedule.DateRange{}, fmt.Errorf("%s %d: %w", ref.Level, ref.EntityID, err)
	}
	return r, nil
}

// SaveRange sends PUT /api/v1/{resource}/{id}/dates. The platform answers
// 200 or 204.
func (c *PlatformClient) SaveRange(ctx context.Context, ref schedule.Ref, r schedule.DateRange) error {
	path, err := dates.DatesPath(ref)
	if err != nil {
		return err
	}
	body := dates.ToSaveDatesRequest(ref.CompanyID, r)
	return c.req.Do(ctx, http.MethodPut, path, body, nil, http.StatusOK, http.StatusNoContent)
}

// Name identifies the platform API in the health registry. It matches the
// service name given to the underlying httpclient.Client.
func (c *PlatformClient) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state of the platform API
// without a network call.
func (c *PlatformClient) HealthCheck(ctx context.Context) error {
	return c.http.HealthCheck(ctx)
}
