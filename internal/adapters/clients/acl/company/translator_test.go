package company

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/assignment-schedule-service/internal/domain/company"
)

func TestToDomainCompanies(t *testing.T) {
	t.Parallel()

	got := ToDomainCompanies(CompanyListResponseDTO{
		Companies: []CompanyDTO{
			{ID: 7, Name: "Fjord Foods AS", CountryCode: "no"},
			{ID: 8, Name: " Andes Textiles ", CountryCode: ""},
		},
		Count: 2,
	})

	want := []company.Company{
		{ID: 7, Name: "Fjord Foods AS", Country: "NO"},
		{ID: 8, Name: "Andes Textiles"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToDomainCompanies() mismatch (-want +got):\n%s", diff)
	}
}

func TestToDomainCompanies_Empty(t *testing.T) {
	t.Parallel()

	got := ToDomainCompanies(CompanyListResponseDTO{})
	if got == nil || len(got) != 0 {
		t.Errorf("ToDomainCompanies(empty) = %#v, want empty non-nil slice", got)
	}
}
