package dates

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/schedule"
)

// resources maps each level to its platform collection.
var resources = map[schedule.Level]string{
	schedule.LevelProject:    "projects",
	schedule.LevelSubProject: "sub-projects",
	schedule.LevelTask:       "tasks",
}

// DatesPath returns the platform path of ref's date resource, without the
// company query.
func DatesPath(ref schedule.Ref) (string, error) {
	res, ok := resources[ref.Level]
	if !ok {
		return "", fmt.Errorf("no platform resource for level %q", ref.Level)
	}
	return fmt.Sprintf("/api/v1/%s/%d/dates", res, ref.EntityID), nil
}

// ToDomainRange converts stored dates. The platform sometimes sends full
// timestamps; only the calendar date is kept.
func ToDomainRange(dto DatesDTO) (schedule.DateRange, error) {
	start, err := parseBound(dto.StartDate)
	if err != nil {
		return schedule.DateRange{}, fmt.Errorf("platform start_date: %v", err)
	}
	end, err := parseBound(dto.EndDate)
	if err != nil {
		return schedule.DateRange{}, fmt.Errorf("platform end_date: %v", err)
	}
	return schedule.DateRange{Start: start, End: end}, nil
}

// ToSaveDatesRequest builds the PUT body for one company's range.
func ToSaveDatesRequest(companyID int64, r schedule.DateRange) SaveDatesRequestDTO {
	return SaveDatesRequestDTO{
		CompanyID: companyID,
		StartDate: formatBound(r.Start),
		EndDate:   formatBound(r.End),
	}
}

func parseBound(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	v, _, _ := strings.Cut(strings.TrimSpace(*s), "T")
	return schedule.ParseDate(v)
}

func formatBound(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := schedule.FormatDate(t)
	return &s
}
