package domain

import (
	"context"
	"time"
)

// FilterAll is the sentinel meaning "this filter is inactive". An empty
// string means the same thing; neither is ever matched literally.
const FilterAll = "All"

// Skill proficiency vocabulary used by detailed skill filters
const (
	ProficiencyBeginner     = "Beginner"
	ProficiencyIntermediate = "Intermediate"
	ProficiencyExpert       = "Expert"
)

// SkillDetail is one entry of a talent's detailed skill list. When
// present, the detailed list is authoritative over TopSkills for
// skill-based filtering.
type SkillDetail struct {
	Name        string `json:"name"`
	Years       int    `json:"years"`
	Proficiency string `json:"proficiency"`
}

// TalentRecord is one row of the recruiter-facing talent pool
type TalentRecord struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	Sector             string        `json:"sector"`
	Headline           string        `json:"headline"`
	Location           string        `json:"location"`
	TopSkills          []string      `json:"topSkills"`
	SkillsDetailed     []SkillDetail `json:"skillsDetailed,omitempty"`
	ExperienceYears    int           `json:"experienceYears"`
	Education          string        `json:"education"`
	IsVerified         bool          `json:"isVerified"`
	TargetRoles        []string      `json:"targetRoles"`
	HaveLicense        bool          `json:"haveLicense"`
	HaveCar            bool          `json:"haveCar"`
	AvailabilityStatus string        `json:"availabilityStatus"`
	Certifications     []string      `json:"certifications,omitempty"`
}

// SkillFilter is one independent, AND-ed skill requirement. An entry with
// an empty Skill is a placeholder row and always passes. MinYears stays a
// string straight from the form; unparseable input means no lower bound.
type SkillFilter struct {
	Skill       string `json:"skill"`
	MinYears    string `json:"minYears"`
	Proficiency string `json:"proficiency"`
}

// FilterState is a search session's full filter selection. Every field is
// an independent constraint; the zero value matches everything.
type FilterState struct {
	Sector          string        `json:"sector"`
	JobRole         string        `json:"jobRole"`
	Education       string        `json:"education"`
	ExperienceLevel string        `json:"experienceLevel"`
	Location        string        `json:"location"`
	Availability    string        `json:"availability"`
	IsVerified      bool          `json:"isVerified"`
	HaveLicense     bool          `json:"haveLicense"`
	HaveCar         bool          `json:"haveCar"`
	Certification   string        `json:"certification"`
	Skills          []SkillFilter `json:"skills"`
}

// TalentSearchRequest is the search endpoint's payload
type TalentSearchRequest struct {
	Filters    FilterState `json:"filters"`
	SearchTerm string      `json:"search_term"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
}

// TalentExportRequest configures a pool export
type TalentExportRequest struct {
	Filters    FilterState `json:"filters"`
	SearchTerm string      `json:"search_term"`
	Columns    []string    `json:"columns"`
	Format     string      `json:"format"` // "xlsx" or "csv"
}

// TalentExportColumns lists all exportable columns
var TalentExportColumns = []string{
	"name",
	"sector",
	"headline",
	"location",
	"top_skills",
	"experience_years",
	"education",
	"is_verified",
	"target_roles",
	"have_license",
	"have_car",
	"availability_status",
	"certifications",
}

// TalentFilterOptions contains the reference data the search UI offers
type TalentFilterOptions struct {
	Sectors         []string            `json:"sectors"`
	RolesBySector   map[string][]string `json:"roles_by_sector"`
	EducationLevels []string            `json:"education_levels"`
	Locations       []string            `json:"locations"`
	Proficiencies   []string            `json:"proficiencies"`
}

// TalentGroup is a recruiter's saved candidate group
type TalentGroup struct {
	ID          int64     `json:"id"`
	RecruiterID string    `json:"recruiter_id"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	MemberIDs   []string  `json:"member_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type TalentRepository interface {
	// FetchPool returns the full ordered talent pool; filtering is in-memory
	FetchPool(ctx context.Context) ([]TalentRecord, error)

	CreateGroup(ctx context.Context, group *TalentGroup) error
	ListGroups(ctx context.Context, recruiterID string) ([]TalentGroup, error)
	GetGroup(ctx context.Context, recruiterID string, id int64) (*TalentGroup, error)
	DeleteGroup(ctx context.Context, recruiterID string, id int64) error
	AddGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error
	RemoveGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error
}

type TalentUsecase interface {
	Search(ctx context.Context, req TalentSearchRequest) (*PaginatedResult[TalentRecord], error)
	FilterOptions(ctx context.Context) (*TalentFilterOptions, error)
	Export(ctx context.Context, req TalentExportRequest) ([]byte, string, error)

	CreateGroup(ctx context.Context, group *TalentGroup) error
	ListGroups(ctx context.Context, recruiterID string) ([]TalentGroup, error)
	DeleteGroup(ctx context.Context, recruiterID string, id int64) error
	AddGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error
	RemoveGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error
}
