// Package dates translates the platform API's per-company date
// resources to and from domain date ranges.
package dates

// DatesDTO matches GET /{resource}/{id}/dates. Either bound may be null.
type DatesDTO struct {
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

// SaveDatesRequestDTO matches the PUT /{resource}/{id}/dates body. Unset
// bounds are sent as explicit nulls so the stored bound is cleared.
type SaveDatesRequestDTO struct {
	CompanyID int64   `json:"companyId"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
}
