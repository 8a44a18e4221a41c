package talent

import (
	"testing"

	"cv-match-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func testPool() []domain.TalentRecord {
	return []domain.TalentRecord{
		{
			ID: "t1", Name: "Sipho Dlamini", Sector: "Hospitality", Headline: "Head Chef",
			Location: "Durban", TopSkills: []string{"Cooking", "Menu Planning"},
			ExperienceYears: 8, Education: "Tertiary", IsVerified: true,
			TargetRoles: []string{"Chef", "Kitchen Manager"}, HaveLicense: true, HaveCar: true,
			AvailabilityStatus: "Immediate",
			Certifications:     []string{"Food Safety Level 2"},
		},
		{
			ID: "t2", Name: "Thandi Nkosi", Sector: "Technology", Headline: "Frontend Developer",
			Location: "Cape Town", TopSkills: []string{"React", "TypeScript"},
			SkillsDetailed: []domain.SkillDetail{
				{Name: "React", Years: 5, Proficiency: "Expert"},
				{Name: "TypeScript", Years: 3, Proficiency: "Intermediate"},
			},
			ExperienceYears: 5, Education: "Tertiary", IsVerified: true,
			TargetRoles: []string{"Frontend Developer"}, HaveCar: true,
			AvailabilityStatus: "Two Weeks",
			Certifications:     []string{"AWS Certified Developer"},
		},
		{
			ID: "t3", Name: "Johan van der Merwe", Sector: "Logistics", Headline: "Fleet Supervisor",
			Location: "Johannesburg", TopSkills: []string{"Routing", "Fleet Management"},
			ExperienceYears: 12, Education: "Matric", IsVerified: false,
			TargetRoles: []string{"Fleet Manager"}, HaveLicense: true, HaveCar: true,
			AvailabilityStatus: "One Month",
		},
		{
			ID: "t4", Name: "Lerato Mokoena", Sector: "Hospitality", Headline: "Sous Chef and Baker",
			Location: "Pretoria", TopSkills: []string{"Baking", "Pastry"},
			ExperienceYears: 3, Education: "Matric", IsVerified: true,
			TargetRoles: []string{"Chef"}, HaveCar: false,
			AvailabilityStatus: "Immediate",
		},
		{
			ID: "t5", Name: "Pieter Botha", Sector: "Technology", Headline: "Backend Engineer",
			Location: "Cape Town", TopSkills: []string{"Go", "Postgres"},
			SkillsDetailed: []domain.SkillDetail{
				{Name: "Go", Years: 2, Proficiency: "Intermediate"},
			},
			ExperienceYears: 2, Education: "Tertiary", IsVerified: false,
			TargetRoles: []string{"Backend Developer"}, HaveLicense: true,
			AvailabilityStatus: "Immediate",
		},
		{
			ID: "t6", Name: "Ayanda Zulu", Sector: "Hospitality", Headline: "Pastry Chef",
			Location: "Durban North", TopSkills: []string{"Pastry", "Desserts"},
			ExperienceYears: 6, Education: "Tertiary", IsVerified: true,
			TargetRoles: []string{"Chef"}, HaveLicense: true, HaveCar: true,
			AvailabilityStatus: "Two Weeks",
		},
	}
}

func ids(records []domain.TalentRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestEmptyFilterStateMatchesAll(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{}, ""))

	assert.Equal(t, ids(pool), ids(got), "empty state must return the list unchanged, in order")
}

func TestWhitespaceSearchTermIsSkipped(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{}, "   "))
	assert.Len(t, got, len(pool))
}

func TestSentinelAllEqualsEmpty(t *testing.T) {
	pool := testPool()
	withAll := Apply(pool, BuildPredicates(domain.FilterState{Sector: "All", JobRole: "All"}, ""))
	withEmpty := Apply(pool, BuildPredicates(domain.FilterState{Sector: "", JobRole: ""}, ""))

	assert.Equal(t, ids(withEmpty), ids(withAll))
}

func TestConjunctivityOrderIndependent(t *testing.T) {
	pool := testPool()

	both := Apply(pool, BuildPredicates(domain.FilterState{Sector: "Hospitality", IsVerified: true}, ""))
	sequential := Apply(
		Apply(pool, BuildPredicates(domain.FilterState{Sector: "Hospitality"}, "")),
		BuildPredicates(domain.FilterState{IsVerified: true}, ""),
	)

	assert.Equal(t, ids(sequential), ids(both))
}

func TestBooleanFalseMeansInactive(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{IsVerified: false}, ""))
	// Unset boolean must not request "unverified only"
	assert.Len(t, got, len(pool))
}

func TestCategoricalExactMatch(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{Education: "Matric"}, ""))
	assert.Equal(t, []string{"t3", "t4"}, ids(got))

	// Case-sensitive: no lowercase match
	got = Apply(pool, BuildPredicates(domain.FilterState{Education: "matric"}, ""))
	assert.Empty(t, got)
}

func TestJobRoleMembership(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{JobRole: "Chef"}, ""))
	assert.Equal(t, []string{"t1", "t4", "t6"}, ids(got))
}

func TestLocationSubstringCaseInsensitive(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{Location: "durban"}, ""))
	// Substring: "Durban North" matches too
	assert.Equal(t, []string{"t1", "t6"}, ids(got))
}

func TestCertificationSubstring(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{Certification: "aws"}, ""))
	assert.Equal(t, []string{"t2"}, ids(got))
}

func TestCertificationFilterExcludesRecordsWithoutList(t *testing.T) {
	pool := testPool()
	got := Apply(pool, BuildPredicates(domain.FilterState{Certification: "food"}, ""))
	// t3..t6 have no certifications array and are excluded outright
	assert.Equal(t, []string{"t1"}, ids(got))
}

func TestSkillFilterYearsAndProficiency(t *testing.T) {
	pool := testPool()

	state := domain.FilterState{Skills: []domain.SkillFilter{
		{Skill: "react", MinYears: "3", Proficiency: "Expert"},
	}}
	got := Apply(pool, BuildPredicates(state, ""))
	assert.Equal(t, []string{"t2"}, ids(got))

	state.Skills[0].MinYears = "6"
	got = Apply(pool, BuildPredicates(state, ""))
	assert.Empty(t, got)
}

func TestSkillFilterUnparseableYearsMeansNoBound(t *testing.T) {
	pool := testPool()
	state := domain.FilterState{Skills: []domain.SkillFilter{
		{Skill: "go", MinYears: "a few"},
	}}
	got := Apply(pool, BuildPredicates(state, ""))
	assert.Equal(t, []string{"t5"}, ids(got))
}

func TestSkillFilterProficiencyCaseSensitive(t *testing.T) {
	pool := testPool()
	state := domain.FilterState{Skills: []domain.SkillFilter{
		{Skill: "react", Proficiency: "expert"},
	}}
	// "expert" != "Expert": the vocabulary match is exact
	assert.Empty(t, Apply(pool, BuildPredicates(state, "")))
}

func TestEmptySkillEntryIsVacuous(t *testing.T) {
	pool := testPool()
	state := domain.FilterState{Skills: []domain.SkillFilter{
		{Skill: ""},
		{Skill: "  "},
	}}
	got := Apply(pool, BuildPredicates(state, ""))
	assert.Len(t, got, len(pool))
	assert.Empty(t, BuildPredicates(state, ""), "placeholder rows must build no predicates")
}

func TestMultipleSkillRequirementsAllMustPass(t *testing.T) {
	pool := testPool()
	state := domain.FilterState{Skills: []domain.SkillFilter{
		{Skill: "react"},
		{Skill: "typescript", MinYears: "3"},
	}}
	got := Apply(pool, BuildPredicates(state, ""))
	assert.Equal(t, []string{"t2"}, ids(got))

	// Raising one requirement past the record's years excludes it even
	// though the other requirement still matches
	state.Skills[1].MinYears = "4"
	assert.Empty(t, Apply(pool, BuildPredicates(state, "")))
}

func TestSkillFilterIgnoresTopSkillsWhenDetailedMissing(t *testing.T) {
	pool := testPool()
	// t1 has "Cooking" in TopSkills but no detailed list; the detailed
	// list is authoritative for skill requirements
	state := domain.FilterState{Skills: []domain.SkillFilter{{Skill: "cooking"}}}
	assert.Empty(t, Apply(pool, BuildPredicates(state, "")))
}

func TestEndToEndScenario(t *testing.T) {
	pool := testPool()

	// Verified + has car
	state := domain.FilterState{IsVerified: true, HaveCar: true}
	got := Apply(pool, BuildPredicates(state, ""))
	assert.Equal(t, []string{"t1", "t2", "t6"}, ids(got))

	// Narrow with a text search: names/headlines/topSkills containing "chef"
	got = Apply(pool, BuildPredicates(state, "chef"))
	assert.Equal(t, []string{"t1", "t6"}, ids(got))
}

func TestDeterminism(t *testing.T) {
	pool := testPool()
	state := domain.FilterState{Sector: "Hospitality"}

	first := Apply(pool, BuildPredicates(state, "chef"))
	second := Apply(pool, BuildPredicates(state, "chef"))

	assert.Equal(t, ids(first), ids(second))
}

func TestExperienceLevelBuckets(t *testing.T) {
	pool := testPool()

	assert.Equal(t, []string{"t1", "t2", "t3", "t6"},
		ids(Apply(pool, BuildPredicates(domain.FilterState{ExperienceLevel: "Senior"}, ""))))
	assert.Equal(t, []string{"t4", "t5"},
		ids(Apply(pool, BuildPredicates(domain.FilterState{ExperienceLevel: "Mid"}, ""))))
}
