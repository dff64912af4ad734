package schedule

import (
	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain"
)

// Key identifies one company context in the hierarchy. SubProjectID and
// TaskID are zero when that level is not selected.
type Key struct {
	ProjectID    int64
	SubProjectID int64
	TaskID       int64
	CompanyID    int64
}

// Validate checks that the key addresses a consistent context.
func (k Key) Validate() error {
	fields := make(map[string]string)

	if k.ProjectID <= 0 {
		fields["project_id"] = domain.MsgRequired
	}
	if k.CompanyID <= 0 {
		fields["company_id"] = domain.MsgRequired
	}
	if k.SubProjectID < 0 {
		fields["sub_project_id"] = "must be positive"
	}
	if k.TaskID < 0 {
		fields["task_id"] = "must be positive"
	}
	if k.TaskID > 0 && k.SubProjectID == 0 {
		fields["sub_project_id"] = "is required when task_id is set"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Selected reports whether level is addressed by k.
func (k Key) Selected(level Level) bool {
	_, ok := k.Ref(level)
	return ok
}

// Ref returns the storage reference of level within k. The second value is
// false when the level is not selected.
func (k Key) Ref(level Level) (Ref, bool) {
	var id int64
	switch level {
	case LevelProject:
		id = k.ProjectID
	case LevelSubProject:
		id = k.SubProjectID
	case LevelTask:
		id = k.TaskID
	}
	if id <= 0 {
		return Ref{}, false
	}
	return Ref{Level: level, EntityID: id, CompanyID: k.CompanyID}, true
}

// Ref addresses one stored range: the dates of a company on one entity.
type Ref struct {
	Level     Level
	EntityID  int64
	CompanyID int64
}
