package schedule

// Picker is the constraint set of one date input.
type Picker struct {
	Level       Level
	Boundary    Boundary
	Constraints PickerConstraints
}

// Evaluation bundles everything a form needs after an input change: the
// validation result, the constraints of all six pickers and the bulk flags.
type Evaluation struct {
	Result  Result
	Pickers []Picker
	Bulk    map[BulkOperation]bool
}

// Evaluate recomputes the full derived state of h.
func (h Hierarchy) Evaluate() Evaluation {
	ev := Evaluation{
		Result:  h.Validate(),
		Pickers: make([]Picker, 0, len(Levels())*len(Boundaries())),
		Bulk:    make(map[BulkOperation]bool, len(BulkOperations())),
	}

	for _, l := range Levels() {
		for _, b := range Boundaries() {
			ev.Pickers = append(ev.Pickers, Picker{
				Level:       l,
				Boundary:    b,
				Constraints: h.PickerConstraints(l, b),
			})
		}
	}
	for _, op := range BulkOperations() {
		ev.Bulk[op] = h.BulkEnabled(op)
	}

	return ev
}

// Picker returns the constraints of one picker from ev.
func (ev Evaluation) Picker(level Level, boundary Boundary) (PickerConstraints, bool) {
	for _, p := range ev.Pickers {
		if p.Level == level && p.Boundary == boundary {
			return p.Constraints, true
		}
	}
	return PickerConstraints{}, false
}
