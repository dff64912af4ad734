package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

type levelReport struct {
	Level   string  `json:"level"`
	Start   *string `json:"start_date"`
	End     *string `json:"end_date"`
	Error   string  `json:"error,omitempty"`
	ErrKind string  `json:"error_kind,omitempty"`
}

type validateReport struct {
	Valid  bool            `json:"valid"`
	Levels []levelReport   `json:"levels"`
	Bulk   map[string]bool `json:"bulk"`
}

type pickerReport struct {
	Level    string  `json:"level"`
	Boundary string  `json:"boundary"`
	Min      *string `json:"min"`
	Max      *string `json:"max"`
	Disabled bool    `json:"disabled"`
}

type bulkReport struct {
	Operation string  `json:"operation"`
	Enabled   bool    `json:"enabled"`
	Start     *string `json:"start_date,omitempty"`
	End       *string `json:"end_date,omitempty"`
	Targets   string  `json:"targets,omitempty"`
	Error     string  `json:"error,omitempty"`
}

func newValidateReport(h schedule.Hierarchy) validateReport {
	ev := h.Evaluate()
	rep := validateReport{Valid: ev.Result.OK(), Bulk: make(map[string]bool, len(ev.Bulk))}

	for _, l := range schedule.Levels() {
		r := h.Range(l)
		lr := levelReport{Level: l.String(), Start: dateOrNil(r.Start), End: dateOrNil(r.End)}
		if e := ev.Result.For(l); e != nil {
			lr.Error, lr.ErrKind = e.Message, string(e.Kind)
		}
		rep.Levels = append(rep.Levels, lr)
	}
	for op, enabled := range ev.Bulk {
		rep.Bulk[op.String()] = enabled
	}
	return rep
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeValidateText(w io.Writer, rep validateReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, l := range rep.Levels {
		status := "ok"
		if l.Error != "" {
			status = l.Error
		}
		fmt.Fprintf(tw, "%s\t%s..%s\t%s\n", l.Level, orOpen(l.Start), orOpen(l.End), status)
	}
	for _, op := range schedule.BulkOperations() {
		fmt.Fprintf(tw, "bulk %s\t\t%s\n", op, enabledText(rep.Bulk[op.String()]))
	}
	return tw.Flush()
}

func writePickersText(w io.Writer, pickers []pickerReport) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, p := range pickers {
		if p.Disabled {
			fmt.Fprintf(tw, "%s\t%s\tdisabled\n", p.Level, p.Boundary)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\tmin=%s\tmax=%s\n", p.Level, p.Boundary, orAny(p.Min), orAny(p.Max))
	}
	return tw.Flush()
}

func writeBulkText(w io.Writer, rep bulkReport) error {
	if rep.Error != "" {
		_, err := fmt.Fprintf(w, "%s: %s\n", rep.Operation, rep.Error)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: would write %s..%s to %s\n",
		rep.Operation, orOpen(rep.Start), orOpen(rep.End), rep.Targets)
	return err
}

func dateOrNil(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := schedule.FormatDate(t)
	return &s
}

func orOpen(s *string) string {
	if s == nil {
		return "open"
	}
	return *s
}

func orAny(s *string) string {
	if s == nil {
		return "any"
	}
	return *s
}

func enabledText(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
