package domain

import "context"

// Skill category defaults. Skills saved before categories existed carry
// no category at all; they land in the "Other Skills" bucket on read.
const (
	DefaultSkillCategory = "Other Skills"
	SoftSkillCategory    = "Soft Skills"
)

// Skill is the canonical shape every renderer and template consumes.
// Storage may still hold legacy shapes (bare strings, partial objects);
// those are canonicalized at load time, never migrated in place.
type Skill struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	MinYears    int    `json:"minYears"`
	Category    string `json:"category"`
	IsSoftSkill bool   `json:"isSoftSkill"`
}

// Language is the canonical language entry. Legacy rows may use "name"
// for the language and "level" for proficiency; the canonical form always
// exposes "language" and "proficiency".
type Language struct {
	ID          int64  `json:"id,omitempty"`
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

type SkillRepository interface {
	ListSkills(ctx context.Context, userID string) ([]Skill, error)
	AddSkill(ctx context.Context, userID string, skill Skill) (int64, error)
	UpdateSkill(ctx context.Context, userID string, skill Skill) error
	// DeleteSkill removes by id when id > 0, otherwise by name/user pair
	DeleteSkill(ctx context.Context, userID string, id int64, name string) error

	ListLanguages(ctx context.Context, userID string) ([]Language, error)
	AddLanguage(ctx context.Context, userID string, lang Language) (int64, error)
	DeleteLanguage(ctx context.Context, userID string, id int64, language string) error
}
