// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
	"github.com/jsamuelsen11/assignment-schedule-service/internal/ports"
)

// RangeResponse is one level's range; unset bounds are null.
type RangeResponse struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// ToRangeResponse converts a domain range.
func ToRangeResponse(r schedule.DateRange) RangeResponse {
	return RangeResponse{StartDate: dateString(r.Start), EndDate: dateString(r.End)}
}

// LevelErrorResponse is the violation reported for one level.
type LevelErrorResponse struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// PickerResponse is the selectable window of one date input.
type PickerResponse struct {
	Min      *string `json:"min"`
	Max      *string `json:"max"`
	Disabled bool    `json:"disabled"`
}

// LevelEvaluationResponse is the derived state of one level's inputs.
type LevelEvaluationResponse struct {
	Error *LevelErrorResponse `json:"error"`
	Start PickerResponse      `json:"start_picker"`
	End   PickerResponse      `json:"end_picker"`
}

// EvaluationResponse is what a form renders after every input change.
type EvaluationResponse struct {
	Valid      bool                    `json:"valid"`
	Project    LevelEvaluationResponse `json:"project"`
	SubProject LevelEvaluationResponse `json:"sub_project"`
	Task       LevelEvaluationResponse `json:"task"`
	Bulk       map[string]bool         `json:"bulk"`
}

// ToEvaluationResponse converts a domain evaluation.
func ToEvaluationResponse(ev schedule.Evaluation) EvaluationResponse {
	level := func(l schedule.Level) LevelEvaluationResponse {
		out := LevelEvaluationResponse{
			Start: toPickerResponse(ev, l, schedule.BoundaryStart),
			End:   toPickerResponse(ev, l, schedule.BoundaryEnd),
		}
		if e := ev.Result.For(l); e != nil {
			out.Error = &LevelErrorResponse{Kind: string(e.Kind), Message: e.Message}
		}
		return out
	}

	bulk := make(map[string]bool, len(ev.Bulk))
	for op, enabled := range ev.Bulk {
		bulk[op.String()] = enabled
	}

	return EvaluationResponse{
		Valid:      ev.Result.OK(),
		Project:    level(schedule.LevelProject),
		SubProject: level(schedule.LevelSubProject),
		Task:       level(schedule.LevelTask),
		Bulk:       bulk,
	}
}

func toPickerResponse(ev schedule.Evaluation, l schedule.Level, b schedule.Boundary) PickerResponse {
	c, _ := ev.Picker(l, b)
	return PickerResponse{Min: dateString(c.Min), Max: dateString(c.Max), Disabled: c.Disabled}
}

// ScheduleResponse is the stored state of one company context.
type ScheduleResponse struct {
	ProjectID    int64              `json:"project_id"`
	SubProjectID int64              `json:"sub_project_id,omitempty"`
	TaskID       int64              `json:"task_id,omitempty"`
	CompanyID    int64              `json:"company_id"`
	Project      RangeResponse      `json:"project"`
	SubProject   RangeResponse      `json:"sub_project"`
	Task         RangeResponse      `json:"task"`
	Evaluation   EvaluationResponse `json:"evaluation"`
}

// ToScheduleResponse converts a ports.Schedule.
func ToScheduleResponse(s *ports.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ProjectID:    s.Key.ProjectID,
		SubProjectID: s.Key.SubProjectID,
		TaskID:       s.Key.TaskID,
		CompanyID:    s.Key.CompanyID,
		Project:      ToRangeResponse(s.Hierarchy.Project),
		SubProject:   ToRangeResponse(s.Hierarchy.SubProject),
		Task:         ToRangeResponse(s.Hierarchy.Task),
		Evaluation:   ToEvaluationResponse(s.Evaluation),
	}
}

// RefResponse identifies one written entity.
type RefResponse struct {
	Level string `json:"level"`
	ID    int64  `json:"id"`
}

// BulkErrorItem is one failed write within a bulk operation.
type BulkErrorItem struct {
	Level   string `json:"level"`
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// BulkResponse is the result of a bulk operation.
type BulkResponse struct {
	Operation string          `json:"operation"`
	Range     RangeResponse   `json:"range"`
	Updated   []RefResponse   `json:"updated"`
	Errors    []BulkErrorItem `json:"errors"`
	Total     int             `json:"total"`
	Succeeded int             `json:"succeeded"`
	Failed    int             `json:"failed"`
}

// ToBulkResponse converts a ports.BulkResult.
func ToBulkResponse(result *ports.BulkResult) BulkResponse {
	updated := make([]RefResponse, len(result.Updated))
	for i, ref := range result.Updated {
		updated[i] = RefResponse{Level: ref.Level.String(), ID: ref.EntityID}
	}

	errs := make([]BulkErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkErrorItem{Level: e.Ref.Level.String(), ID: e.Ref.EntityID, Message: e.Err.Error()}
	}

	return BulkResponse{
		Operation: result.Operation.String(),
		Range:     ToRangeResponse(result.Range),
		Updated:   updated,
		Errors:    errs,
		Total:     len(updated) + len(errs),
		Succeeded: len(updated),
		Failed:    len(errs),
	}
}

// CompanyResponse is one assignable company.
type CompanyResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}

// CompanyListResponse lists the companies of a project.
type CompanyListResponse struct {
	Companies []CompanyResponse `json:"companies"`
	Count     int               `json:"count"`
}

// ToCompanyListResponse converts domain companies.
func ToCompanyListResponse(companies []company.Company) CompanyListResponse {
	items := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		items[i] = CompanyResponse{ID: c.ID, Name: c.Name, Country: c.Country}
	}
	return CompanyListResponse{Companies: items, Count: len(items)}
}

func dateString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := schedule.FormatDate(t)
	return &s
}
