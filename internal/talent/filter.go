// Package talent implements the in-memory search engine for the recruiter
// talent pool. Filtering is a pure function: a list of independent
// predicates AND-reduced over an ordered record list, so adding a new
// filter type never touches the combination logic.
package talent

import (
	"strconv"
	"strings"

	"cv-match-backend/internal/domain"
)

// Predicate is one independent constraint on a talent record
type Predicate func(domain.TalentRecord) bool

// Apply returns the ordered sublist of records satisfying every
// predicate. This is a filter, not a re-sort: relative order is
// preserved, and the engine holds no state between calls.
func Apply(records []domain.TalentRecord, preds []Predicate) []domain.TalentRecord {
	result := make([]domain.TalentRecord, 0, len(records))
	for _, rec := range records {
		if matchesAll(rec, preds) {
			result = append(result, rec)
		}
	}
	return result
}

func matchesAll(rec domain.TalentRecord, preds []Predicate) bool {
	for _, p := range preds {
		if !p(rec) {
			return false
		}
	}
	return true
}

// BuildPredicates translates a filter state plus free-text search term
// into the predicate list. Inactive filters (sentinel "All", empty
// strings, false booleans) produce no predicate at all rather than a
// constraint that always passes, so the active-filter count is
// meaningful for auditing.
func BuildPredicates(f domain.FilterState, searchTerm string) []Predicate {
	var preds []Predicate

	if term := strings.TrimSpace(searchTerm); term != "" {
		preds = append(preds, textSearch(term))
	}

	if active(f.Sector) {
		sector := f.Sector
		preds = append(preds, func(r domain.TalentRecord) bool { return r.Sector == sector })
	}
	if active(f.Education) {
		education := f.Education
		preds = append(preds, func(r domain.TalentRecord) bool { return r.Education == education })
	}
	if active(f.JobRole) {
		// Membership only; sector/role consistency is a UI concern
		role := f.JobRole
		preds = append(preds, func(r domain.TalentRecord) bool { return containsString(r.TargetRoles, role) })
	}
	if active(f.Availability) {
		availability := f.Availability
		preds = append(preds, func(r domain.TalentRecord) bool { return r.AvailabilityStatus == availability })
	}
	if active(f.ExperienceLevel) {
		level := f.ExperienceLevel
		preds = append(preds, func(r domain.TalentRecord) bool { return matchesExperienceLevel(r.ExperienceYears, level) })
	}
	if active(f.Location) {
		loc := strings.ToLower(f.Location)
		preds = append(preds, func(r domain.TalentRecord) bool {
			return strings.Contains(strings.ToLower(r.Location), loc)
		})
	}
	if active(f.Certification) {
		preds = append(preds, certificationSearch(f.Certification))
	}

	// Boolean filters only constrain when switched on; false means
	// "don't care", not "give me unverified records"
	if f.IsVerified {
		preds = append(preds, func(r domain.TalentRecord) bool { return r.IsVerified })
	}
	if f.HaveLicense {
		preds = append(preds, func(r domain.TalentRecord) bool { return r.HaveLicense })
	}
	if f.HaveCar {
		preds = append(preds, func(r domain.TalentRecord) bool { return r.HaveCar })
	}

	for _, sf := range f.Skills {
		if strings.TrimSpace(sf.Skill) == "" {
			// Placeholder row in the UI; vacuously satisfied
			continue
		}
		preds = append(preds, skillRequirement(sf))
	}

	return preds
}

// active reports whether a categorical filter value constrains anything.
// "All" and "" are sentinels for "no constraint", never literal matches.
func active(value string) bool {
	return value != "" && value != domain.FilterAll
}

// textSearch matches the term case-insensitively against name, headline
// or any top skill
func textSearch(term string) Predicate {
	needle := strings.ToLower(term)
	return func(r domain.TalentRecord) bool {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			return true
		}
		if strings.Contains(strings.ToLower(r.Headline), needle) {
			return true
		}
		for _, s := range r.TopSkills {
			if strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
		return false
	}
}

// certificationSearch matches the needle against any certification entry.
// Records without a certifications list are excluded while the constraint
// is active.
func certificationSearch(needle string) Predicate {
	lower := strings.ToLower(needle)
	return func(r domain.TalentRecord) bool {
		for _, cert := range r.Certifications {
			if strings.Contains(strings.ToLower(cert), lower) {
				return true
			}
		}
		return false
	}
}

// skillRequirement matches one skill requirement against the detailed
// skill list, which is authoritative over TopSkills. The skill name is a
// case-insensitive substring match; years and proficiency are additional
// conditions on the matched entry.
func skillRequirement(sf domain.SkillFilter) Predicate {
	name := strings.ToLower(strings.TrimSpace(sf.Skill))
	minYears, hasMin := parseMinYears(sf.MinYears)
	proficiency := sf.Proficiency

	return func(r domain.TalentRecord) bool {
		for _, detail := range r.SkillsDetailed {
			if !strings.Contains(strings.ToLower(detail.Name), name) {
				continue
			}
			if hasMin && detail.Years < minYears {
				continue
			}
			if proficiency != "" && detail.Proficiency != proficiency {
				continue
			}
			return true
		}
		return false
	}
}

// parseMinYears reads the form value; anything unparseable means no
// lower bound rather than an error
func parseMinYears(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	years, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return years, true
}

// matchesExperienceLevel buckets total years into the coarse levels the
// search UI offers
func matchesExperienceLevel(years int, level string) bool {
	switch level {
	case "Entry":
		return years < 2
	case "Mid":
		return years >= 2 && years < 5
	case "Senior":
		return years >= 5
	}
	return true
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
