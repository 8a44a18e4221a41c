// Package normalize coerces heterogeneous stored representations of
// skills, languages and credentials into the canonical shapes in domain.
// Profile data has been through several schema generations (bare strings,
// objects with renamed keys, AI-imported blobs); every read path goes
// through here so renderers and templates never see a missing field.
//
// All functions are pure read-time transforms: they never mutate their
// input and never touch storage, which keeps whatever legacy shape was
// saved intact.
package normalize

import (
	"encoding/json"
	"strconv"
	"strings"

	"cv-match-backend/internal/domain"
)

// Skill canonicalizes any value claiming to be a skill. A bare string s
// becomes {Name: s, MinYears: 0, Category: "Other Skills"}. Malformed
// input (nil, wrong type) degrades to the defaulted shape rather than
// failing: a display layer must never crash on a missing field.
func Skill(v interface{}) domain.Skill {
	switch val := v.(type) {
	case string:
		return domain.Skill{
			Name:     val,
			MinYears: 0,
			Category: domain.DefaultSkillCategory,
		}
	case domain.Skill:
		return withSkillDefaults(val)
	case *domain.Skill:
		if val == nil {
			return withSkillDefaults(domain.Skill{})
		}
		return withSkillDefaults(*val)
	case map[string]interface{}:
		return withSkillDefaults(domain.Skill{
			ID:          asID(val["id"]),
			Name:        asString(val["name"]),
			MinYears:    asInt(val["minYears"]),
			Category:    asString(val["category"]),
			IsSoftSkill: asBool(val["isSoftSkill"]),
		})
	case json.RawMessage:
		return skillFromJSON(val)
	case []byte:
		return skillFromJSON(val)
	default:
		return withSkillDefaults(domain.Skill{})
	}
}

// Language canonicalizes any value claiming to be a language entry.
// Resolution order is fixed: the modern keys ("language", "proficiency")
// win; the legacy keys ("name", "level") are read only when the modern
// key is absent or falsy.
func Language(v interface{}) domain.Language {
	switch val := v.(type) {
	case string:
		return domain.Language{Language: val}
	case domain.Language:
		return val
	case *domain.Language:
		if val == nil {
			return domain.Language{}
		}
		return *val
	case map[string]interface{}:
		lang := asString(val["language"])
		if lang == "" {
			lang = asString(val["name"])
		}
		prof := asString(val["proficiency"])
		if prof == "" {
			prof = asString(val["level"])
		}
		return domain.Language{
			ID:          asID(val["id"]),
			Language:    lang,
			Proficiency: prof,
		}
	case json.RawMessage:
		return languageFromJSON(val)
	case []byte:
		return languageFromJSON(val)
	default:
		return domain.Language{}
	}
}

// Credential canonicalizes any value claiming to be a credential. The
// type defaults to education and the qualification level to the shared
// "Tertiary" constant; IsVerified is always derived from the document
// URL, never trusted from the stored value.
func Credential(v interface{}) domain.Credential {
	var cred domain.Credential
	switch val := v.(type) {
	case domain.Credential:
		cred = val
	case *domain.Credential:
		if val != nil {
			cred = *val
		}
	case map[string]interface{}:
		cred = domain.Credential{
			ID:                 asID(val["id"]),
			UserID:             asString(val["user_id"]),
			Type:               asString(val["type"]),
			Title:              asString(val["title"]),
			Issuer:             asString(val["issuer"]),
			Date:               asString(val["date"]),
			QualificationLevel: asString(val["qualification_level"]),
			DocumentURL:        asString(val["document_url"]),
		}
	case json.RawMessage:
		return credentialFromJSON(val)
	case []byte:
		return credentialFromJSON(val)
	}
	return withCredentialDefaults(cred)
}

// IsSoftSkill reports whether a skill belongs to the soft list. The flag
// and the category are two independent truth sources; either suffices and
// no reconciliation between them is performed.
func IsSoftSkill(s domain.Skill) bool {
	return s.IsSoftSkill || s.Category == domain.SoftSkillCategory
}

// SkillGroup is one category block of technical skills
type SkillGroup struct {
	Category string         `json:"category"`
	Skills   []domain.Skill `json:"skills"`
}

// Join renders the group's skill names with the compact-template separator
func (g SkillGroup) Join() string {
	names := make([]string, 0, len(g.Skills))
	for _, s := range g.Skills {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}

// GroupSkills partitions technical skills by category, preserving
// first-seen category order. Soft skills are excluded; they render as a
// separate flat list (see SoftSkills).
func GroupSkills(skills []domain.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)

	for _, raw := range skills {
		s := Skill(raw)
		if IsSoftSkill(s) {
			continue
		}
		i, ok := index[s.Category]
		if !ok {
			groups = append(groups, SkillGroup{Category: s.Category})
			i = len(groups) - 1
			index[s.Category] = i
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}

	return groups
}

// SoftSkills returns the flat, ungrouped soft-skill list
func SoftSkills(skills []domain.Skill) []domain.Skill {
	var soft []domain.Skill
	for _, raw := range skills {
		s := Skill(raw)
		if IsSoftSkill(s) {
			soft = append(soft, s)
		}
	}
	return soft
}

// SkillList decodes a stored JSON array of skill values of any vintage.
// Undecodable input yields an empty list, never an error.
func SkillList(data []byte) []domain.Skill {
	raw := decodeList(data)
	skills := make([]domain.Skill, 0, len(raw))
	for _, v := range raw {
		skills = append(skills, Skill(v))
	}
	return skills
}

// LanguageList decodes a stored JSON array of language values
func LanguageList(data []byte) []domain.Language {
	raw := decodeList(data)
	langs := make([]domain.Language, 0, len(raw))
	for _, v := range raw {
		langs = append(langs, Language(v))
	}
	return langs
}

// CredentialList decodes a stored JSON array of credential values
func CredentialList(data []byte) []domain.Credential {
	raw := decodeList(data)
	creds := make([]domain.Credential, 0, len(raw))
	for _, v := range raw {
		creds = append(creds, Credential(v))
	}
	return creds
}

func decodeList(data []byte) []interface{} {
	if len(data) == 0 {
		return nil
	}
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	return raw
}

func skillFromJSON(data []byte) domain.Skill {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return withSkillDefaults(domain.Skill{})
	}
	return Skill(v)
}

func languageFromJSON(data []byte) domain.Language {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Language{}
	}
	return Language(v)
}

func credentialFromJSON(data []byte) domain.Credential {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return withCredentialDefaults(domain.Credential{})
	}
	return Credential(v)
}

func withSkillDefaults(s domain.Skill) domain.Skill {
	if s.Category == "" {
		s.Category = domain.DefaultSkillCategory
	}
	if s.MinYears < 0 {
		s.MinYears = 0
	}
	return s
}

func withCredentialDefaults(c domain.Credential) domain.Credential {
	if c.Type == "" {
		c.Type = domain.CredentialEducation
	}
	if c.QualificationLevel == "" {
		c.QualificationLevel = domain.DefaultQualificationLevel
	}
	c.IsVerified = strings.TrimSpace(c.DocumentURL) != ""
	return c
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

// asInt accepts JSON numbers and numeric strings; anything else is zero
func asInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
			return i
		}
	}
	return 0
}

func asID(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
