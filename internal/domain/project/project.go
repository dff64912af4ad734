package project

import (
	"strings"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// Project is the top of the work-breakdown hierarchy. Companies are
// assigned to it with their own date range.
type Project struct {
	ID          int64
	Name        string
	SubProjects []SubProject
}

// SubProject is a work package beneath a project.
type SubProject struct {
	ID        int64
	ProjectID int64
	Name      string
	Tasks     []Task
}

// Task is the leaf of the hierarchy.
type Task struct {
	ID           int64
	SubProjectID int64
	Name         string
}

// Validate checks the identity fields every project read from the platform
// must carry.
func (p *Project) Validate() error {
	fields := make(map[string]string)

	if p.ID <= 0 {
		fields["id"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// SubProjectByID returns the sub-project with the given id.
func (p *Project) SubProjectByID(id int64) (SubProject, bool) {
	for _, sp := range p.SubProjects {
		if sp.ID == id {
			return sp, true
		}
	}
	return SubProject{}, false
}

// TaskIDs returns the ids of every task of sp.
func (sp SubProject) TaskIDs() []int64 {
	ids := make([]int64, len(sp.Tasks))
	for i, t := range sp.Tasks {
		ids[i] = t.ID
	}
	return ids
}
