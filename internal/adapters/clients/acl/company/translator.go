package company

import (
	"strings"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
)

// ToDomainCompanies converts a company listing. Country codes are
// normalized to upper case.
func ToDomainCompanies(dto CompanyListResponseDTO) []company.Company {
	out := make([]company.Company, len(dto.Companies))
	for i, c := range dto.Companies {
		out[i] = company.Company{
			ID:      c.ID,
			Name:    strings.TrimSpace(c.Name),
			Country: strings.ToUpper(strings.TrimSpace(c.CountryCode)),
		}
	}
	return out
}
