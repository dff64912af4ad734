package schedule

// Level is a tier of the assignment hierarchy.
type Level string

const (
	LevelProject    Level = "main-project"
	LevelSubProject Level = "sub-project"
	LevelTask       Level = "task"
)

// Levels lists every level, parent first.
func Levels() []Level {
	return []Level{LevelProject, LevelSubProject, LevelTask}
}

// IsValid reports whether l is a known level.
func (l Level) IsValid() bool {
	switch l {
	case LevelProject, LevelSubProject, LevelTask:
		return true
	}
	return false
}

func (l Level) String() string { return string(l) }

// Parent returns the level directly above l. The project level has none.
func (l Level) Parent() (Level, bool) {
	switch l {
	case LevelSubProject:
		return LevelProject, true
	case LevelTask:
		return LevelSubProject, true
	default:
		return "", false
	}
}

// FieldName is the snake_case key used for l in field-level error maps and
// request bodies.
func (l Level) FieldName() string {
	switch l {
	case LevelProject:
		return "project"
	case LevelSubProject:
		return "sub_project"
	case LevelTask:
		return "task"
	default:
		return string(l)
	}
}

// ParseLevel accepts either the canonical name or the field name.
func ParseLevel(s string) (Level, bool) {
	for _, l := range Levels() {
		if s == string(l) || s == l.FieldName() {
			return l, true
		}
	}
	return "", false
}

// Boundary selects which side of a range a picker edits.
type Boundary string

const (
	BoundaryStart Boundary = "start"
	BoundaryEnd   Boundary = "end"
)

// Boundaries lists both boundaries in display order.
func Boundaries() []Boundary {
	return []Boundary{BoundaryStart, BoundaryEnd}
}

// IsValid reports whether b is a known boundary.
func (b Boundary) IsValid() bool {
	return b == BoundaryStart || b == BoundaryEnd
}

func (b Boundary) String() string { return string(b) }

// BulkOperation names a fan-out that applies one range to many children.
type BulkOperation string

const (
	// BulkSubProjects applies the range to every sub-project of the project.
	BulkSubProjects BulkOperation = "sub-projects"
	// BulkHierarchical applies the range to every sub-project and every task
	// beneath them.
	BulkHierarchical BulkOperation = "hierarchical"
	// BulkTasks applies the range to every task of the selected sub-project.
	BulkTasks BulkOperation = "tasks"
)

// BulkOperations lists every operation.
func BulkOperations() []BulkOperation {
	return []BulkOperation{BulkSubProjects, BulkHierarchical, BulkTasks}
}

// IsValid reports whether op is a known operation.
func (op BulkOperation) IsValid() bool {
	switch op {
	case BulkSubProjects, BulkHierarchical, BulkTasks:
		return true
	}
	return false
}

func (op BulkOperation) String() string { return string(op) }

// SourceLevel is the level whose range gates op and supplies its default
// range.
func (op BulkOperation) SourceLevel() Level {
	if op == BulkTasks {
		return LevelSubProject
	}
	return LevelProject
}

// TargetLevel is the topmost level op writes to.
func (op BulkOperation) TargetLevel() Level {
	if op == BulkTasks {
		return LevelTask
	}
	return LevelSubProject
}
