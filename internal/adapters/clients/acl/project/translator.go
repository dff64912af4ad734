package project

import (
	"strings"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/project"
)

// ToDomainProject converts a ProjectDTO. Sub-projects are loaded separately
// and left nil.
func ToDomainProject(dto ProjectDTO) project.Project {
	return project.Project{
		ID:   dto.ID,
		Name: strings.TrimSpace(dto.Name),
	}
}

// ToDomainSubProjects converts a sub-project listing. A sub-project sent
// without its parent id inherits projectID.
func ToDomainSubProjects(projectID int64, dto SubProjectListResponseDTO) []project.SubProject {
	out := make([]project.SubProject, len(dto.SubProjects))
	for i, sp := range dto.SubProjects {
		parent := sp.ProjectID
		if parent == 0 {
			parent = projectID
		}
		out[i] = project.SubProject{
			ID:        sp.ID,
			ProjectID: parent,
			Name:      strings.TrimSpace(sp.Name),
		}
	}
	return out
}

// ToDomainTasks converts a task listing. A task sent without its parent id
// inherits subProjectID.
func ToDomainTasks(subProjectID int64, dto TaskListResponseDTO) []project.Task {
	out := make([]project.Task, len(dto.Tasks))
	for i, t := range dto.Tasks {
		parent := t.SubProjectID
		if parent == 0 {
			parent = subProjectID
		}
		out[i] = project.Task{
			ID:           t.ID,
			SubProjectID: parent,
			Name:         strings.TrimSpace(t.Name),
		}
	}
	return out
}
