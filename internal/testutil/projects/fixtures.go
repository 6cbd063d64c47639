package projects

import "github.com/Veraticus/contractor-evaluation/internal/model"

// Fixture is a named set of projects.
type Fixture int

// Fixtures.
const (
	// FixtureBasic has one project with a complete contractor record.
	FixtureBasic Fixture = iota
	// FixtureEdgeCases has projects with missing or partial contractor data.
	FixtureEdgeCases
)

// Fixture project ids.
const (
	ProjectComplete      = "a01000000000001"
	ProjectNoContractor  = "a01000000000002"
	ProjectNameOnly      = "a01000000000003"
	ProjectBlankVendorID = "a01000000000004"
)

// Projects returns fresh copies of the fixture's projects.
func (f Fixture) Projects() []*model.ProjectSnapshot {
	switch f {
	case FixtureEdgeCases:
		return []*model.ProjectSnapshot{
			{ID: ProjectNoContractor, Name: "외벽 도장"},
			{
				ID:         ProjectNameOnly,
				Name:       "창호 교체",
				Contractor: &model.ContractorAccount{Name: "Lee Windows"},
			},
			{
				ID:   ProjectBlankVendorID,
				Name: "바닥 시공",
				Contractor: &model.ContractorAccount{
					Name:        "Choi Flooring",
					Description: "   ",
				},
			},
		}
	default:
		return []*model.ProjectSnapshot{{
			ID:   ProjectComplete,
			Name: "욕실 리모델링",
			Contractor: &model.ContractorAccount{
				Name:          "Kim Construction",
				Phone:         "010-1234-5678",
				BillingStreet: "서울시 강남구 테헤란로 1",
				Description:   "김씨 인테리어",
			},
		}}
	}
}
