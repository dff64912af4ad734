// Package company translates the platform API's company resources.
package company

// CompanyDTO matches the platform Company schema.
type CompanyDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// CompanyListResponseDTO matches GET /projects/{id}/companies.
type CompanyListResponseDTO struct {
	Companies []CompanyDTO `json:"companies"`
	Count     int64        `json:"count"`
}
