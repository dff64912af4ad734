package dto

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustPositive = "must be positive"
)

// RangeRequest is one level's date range. Null, absent or empty bounds are
// unset.
type RangeRequest struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// toDomain parses r, reporting field errors under prefix.
func (r *RangeRequest) toDomain(prefix string, fields map[string]string) schedule.DateRange {
	if r == nil {
		return schedule.DateRange{}
	}
	rng, err := schedule.ParseRange(deref(r.StartDate), deref(r.EndDate))
	if err != nil {
		for k, v := range validationFields(err) {
			fields[prefix+"."+k] = v
		}
	}
	return rng
}

// HierarchyRequest carries the candidate ranges of all three levels.
type HierarchyRequest struct {
	Project    *RangeRequest `json:"project"`
	SubProject *RangeRequest `json:"sub_project"`
	Task       *RangeRequest `json:"task"`
}

// ToHierarchy parses every level. Malformed dates are reported together as
// a *domain.ValidationError keyed like "sub_project.end_date".
func (r *HierarchyRequest) ToHierarchy() (schedule.Hierarchy, error) {
	fields := make(map[string]string)
	h := schedule.Hierarchy{
		Project:    r.Project.toDomain(schedule.LevelProject.FieldName(), fields),
		SubProject: r.SubProject.toDomain(schedule.LevelSubProject.FieldName(), fields),
		Task:       r.Task.toDomain(schedule.LevelTask.FieldName(), fields),
	}
	if len(fields) > 0 {
		return schedule.Hierarchy{}, &domain.ValidationError{Fields: fields}
	}
	return h, nil
}

// EvaluateRequest is the body of POST /schedule/evaluate.
type EvaluateRequest struct {
	HierarchyRequest
}

// Validate checks that every supplied date parses.
func (r *EvaluateRequest) Validate() error {
	_, err := r.ToHierarchy()
	return err
}

// SaveScheduleRequest is the body of PUT /projects/{projectId}/schedule.
// Levels lists what to persist; empty means every selected level.
type SaveScheduleRequest struct {
	CompanyID    int64    `json:"company_id"`
	SubProjectID int64    `json:"sub_project_id,omitempty"`
	TaskID       int64    `json:"task_id,omitempty"`
	Levels       []string `json:"levels,omitempty"`
	HierarchyRequest
}

// Validate checks identifiers, level names and dates.
func (r *SaveScheduleRequest) Validate() error {
	fields := make(map[string]string)

	if r.CompanyID <= 0 {
		fields["company_id"] = msgRequired
	}
	if r.SubProjectID < 0 {
		fields["sub_project_id"] = msgMustPositive
	}
	if r.TaskID < 0 {
		fields["task_id"] = msgMustPositive
	}
	for _, l := range r.Levels {
		if _, ok := schedule.ParseLevel(l); !ok {
			fields["levels"] = fmt.Sprintf("invalid: %q", l)
		}
	}
	if _, err := r.ToHierarchy(); err != nil {
		for k, v := range validationFields(err) {
			fields[k] = v
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Key returns the company context addressed by r within projectID.
func (r *SaveScheduleRequest) Key(projectID int64) schedule.Key {
	return schedule.Key{
		ProjectID:    projectID,
		SubProjectID: r.SubProjectID,
		TaskID:       r.TaskID,
		CompanyID:    r.CompanyID,
	}
}

// ParsedLevels returns Levels as domain levels. Call after Validate.
func (r *SaveScheduleRequest) ParsedLevels() []schedule.Level {
	out := make([]schedule.Level, 0, len(r.Levels))
	for _, s := range r.Levels {
		if l, ok := schedule.ParseLevel(s); ok {
			out = append(out, l)
		}
	}
	return out
}

// BulkRequest is the body of POST /projects/{projectId}/schedule/bulk. A
// missing range applies the parent level's own range.
type BulkRequest struct {
	CompanyID    int64         `json:"company_id"`
	SubProjectID int64         `json:"sub_project_id,omitempty"`
	Operation    string        `json:"operation"`
	Range        *RangeRequest `json:"range,omitempty"`
	Atomic       bool          `json:"atomic,omitempty"`
}

// Validate checks identifiers, the operation name and the range dates.
func (r *BulkRequest) Validate() error {
	fields := make(map[string]string)

	if r.CompanyID <= 0 {
		fields["company_id"] = msgRequired
	}
	if r.SubProjectID < 0 {
		fields["sub_project_id"] = msgMustPositive
	}
	switch {
	case r.Operation == "":
		fields["operation"] = msgRequired
	case !schedule.BulkOperation(r.Operation).IsValid():
		fields["operation"] = fmt.Sprintf("invalid: %q", r.Operation)
	}
	r.Range.toDomain("range", fields)

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToPort converts r into the service request. Call after Validate.
func (r *BulkRequest) ToPort(projectID int64) ports.BulkRequest {
	req := ports.BulkRequest{
		Key: schedule.Key{
			ProjectID:    projectID,
			SubProjectID: r.SubProjectID,
			CompanyID:    r.CompanyID,
		},
		Operation: schedule.BulkOperation(r.Operation),
		Atomic:    r.Atomic,
	}
	if r.Range != nil {
		rng := r.Range.toDomain("range", map[string]string{})
		req.Range = &rng
	}
	return req
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// validationFields extracts the field map of a *domain.ValidationError, or
// reports err under "body".
func validationFields(err error) map[string]string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Fields
	}
	return map[string]string{"body": err.Error()}
}
