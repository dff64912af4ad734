package ports

import (
	"context"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/project"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

// PlatformClient is the client port for the platform API that owns
// projects, companies and the stored date ranges. Implemented by the ACL
// adapter; called by the application layer.
type PlatformClient interface {
	// GetProject returns a project without its sub-projects.
	// Returns domain.ErrNotFound if the project does not exist.
	GetProject(ctx context.Context, id int64) (*project.Project, error)

	// ListSubProjects returns the sub-projects of a project, tasks not
	// populated.
	ListSubProjects(ctx context.Context, projectID int64) ([]project.SubProject, error)

	// ListTasks returns the tasks of a sub-project.
	ListTasks(ctx context.Context, subProjectID int64) ([]project.Task, error)

	// ListCompanies returns the companies eligible for assignment to a
	// project.
	ListCompanies(ctx context.Context, projectID int64) ([]company.Company, error)

	// GetRange returns the stored range of one company on one entity. A
	// range that was never stored comes back empty, not as an error.
	GetRange(ctx context.Context, ref schedule.Ref) (schedule.DateRange, error)

	// SaveRange replaces the stored range. Unset bounds are stored as null.
	SaveRange(ctx context.Context, ref schedule.Ref, r schedule.DateRange) error
}
