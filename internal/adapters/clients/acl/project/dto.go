// Package project translates the platform API's project, sub-project and
// task resources into the domain work-breakdown types.
package project

// ProjectDTO matches the platform Project schema.
type ProjectDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// SubProjectDTO matches the platform SubProject schema.
type SubProjectDTO struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Name      string `json:"name"`
}

// SubProjectListResponseDTO matches GET /projects/{id}/sub-projects.
type SubProjectListResponseDTO struct {
	SubProjects []SubProjectDTO `json:"sub_projects"`
	Count       int64           `json:"count"`
}

// TaskDTO matches the platform Task schema.
type TaskDTO struct {
	ID           int64  `json:"id"`
	SubProjectID int64  `json:"sub_project_id"`
	Name         string `json:"name"`
}

// TaskListResponseDTO matches GET /sub-projects/{id}/tasks.
type TaskListResponseDTO struct {
	Tasks []TaskDTO `json:"tasks"`
	Count int64     `json:"count"`
}
