package normalize

import (
	"encoding/json"
	"testing"

	"cv-match-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSkillFromLegacyString(t *testing.T) {
	got := Skill("Welding")

	assert.Equal(t, domain.Skill{
		Name:        "Welding",
		MinYears:    0,
		Category:    "Other Skills",
		IsSoftSkill: false,
	}, got)
}

func TestSkillIdempotence(t *testing.T) {
	inputs := []interface{}{
		"Plumbing",
		domain.Skill{Name: "Go", MinYears: 3, Category: "Programming"},
		map[string]interface{}{"name": "Excel", "minYears": float64(2)},
	}

	for _, in := range inputs {
		once := Skill(in)
		twice := Skill(once)
		assert.Equal(t, once, twice)
	}
}

func TestSkillFromPartialObject(t *testing.T) {
	got := Skill(map[string]interface{}{"name": "React"})
	assert.Equal(t, "React", got.Name)
	assert.Equal(t, "Other Skills", got.Category)
	assert.Equal(t, 0, got.MinYears)

	// minYears may arrive as a JSON number or a form string
	assert.Equal(t, 5, Skill(map[string]interface{}{"name": "Go", "minYears": float64(5)}).MinYears)
	assert.Equal(t, 5, Skill(map[string]interface{}{"name": "Go", "minYears": "5"}).MinYears)
	assert.Equal(t, 0, Skill(map[string]interface{}{"name": "Go", "minYears": "lots"}).MinYears)
}

func TestSkillMalformedInputDoesNotPanic(t *testing.T) {
	for _, in := range []interface{}{nil, 42, []string{"x"}, json.RawMessage("not json")} {
		got := Skill(in)
		assert.Equal(t, "Other Skills", got.Category)
		assert.False(t, got.IsSoftSkill)
	}
}

func TestLanguageKeyPrecedence(t *testing.T) {
	// Modern key wins over the legacy key
	got := Language(map[string]interface{}{"language": "Zulu", "name": "Should Not Win"})
	assert.Equal(t, "Zulu", got.Language)

	// Legacy key used only when the modern key is absent
	got = Language(map[string]interface{}{"name": "Xhosa"})
	assert.Equal(t, "Xhosa", got.Language)

	got = Language(map[string]interface{}{"language": "Afrikaans", "level": "Fluent"})
	assert.Equal(t, "Fluent", got.Proficiency)

	got = Language(map[string]interface{}{"proficiency": "Native", "level": "Should Not Win"})
	assert.Equal(t, "Native", got.Proficiency)
}

func TestLanguageFromLegacyString(t *testing.T) {
	got := Language("English")
	assert.Equal(t, domain.Language{Language: "English", Proficiency: ""}, got)
}

func TestCredentialVerificationDerivedFromDocumentURL(t *testing.T) {
	verified := Credential(map[string]interface{}{
		"type":         "certification",
		"title":        "First Aid Level 1",
		"document_url": "https://storage.example.com/docs/first-aid.pdf",
	})
	assert.True(t, verified.IsVerified)

	unverified := Credential(map[string]interface{}{
		"type":  "certification",
		"title": "First Aid Level 1",
	})
	assert.False(t, unverified.IsVerified)

	// Whitespace-only URL does not count as proof
	blank := Credential(map[string]interface{}{"title": "X", "document_url": "   "})
	assert.False(t, blank.IsVerified)

	// A stored isVerified flag is never trusted over the derived value
	spoofed := Credential(domain.Credential{Title: "X", IsVerified: true})
	assert.False(t, spoofed.IsVerified)
}

func TestCredentialDefaults(t *testing.T) {
	got := Credential(map[string]interface{}{"title": "BSc Computer Science"})
	assert.Equal(t, domain.CredentialEducation, got.Type)
	assert.Equal(t, domain.DefaultQualificationLevel, got.QualificationLevel)
	assert.Equal(t, "Tertiary", got.QualificationLevel)
}

func TestIsSoftSkillEitherFlagSuffices(t *testing.T) {
	assert.True(t, IsSoftSkill(domain.Skill{Name: "Teamwork", IsSoftSkill: true}))
	assert.True(t, IsSoftSkill(domain.Skill{Name: "Leadership", Category: "Soft Skills"}))
	assert.True(t, IsSoftSkill(domain.Skill{Name: "Both", Category: "Soft Skills", IsSoftSkill: true}))
	assert.False(t, IsSoftSkill(domain.Skill{Name: "Go", Category: "Programming"}))
}

func TestGroupSkillsPreservesFirstSeenOrder(t *testing.T) {
	skills := []domain.Skill{
		{Name: "Go", Category: "Programming"},
		{Name: "Forklift", Category: "Machinery"},
		{Name: "Python", Category: "Programming"},
		{Name: "Teamwork", Category: "Soft Skills"},
		{Name: "Typing"}, // no category -> Other Skills
	}

	groups := GroupSkills(skills)

	assert.Len(t, groups, 3)
	assert.Equal(t, "Programming", groups[0].Category)
	assert.Equal(t, "Machinery", groups[1].Category)
	assert.Equal(t, "Other Skills", groups[2].Category)

	// Soft skills never appear in the grouped output
	for _, g := range groups {
		for _, s := range g.Skills {
			assert.False(t, IsSoftSkill(s))
		}
	}

	assert.Equal(t, "Go, Python", groups[0].Join())
}

func TestSoftSkillsFlatList(t *testing.T) {
	skills := []domain.Skill{
		{Name: "Go", Category: "Programming"},
		{Name: "Teamwork", IsSoftSkill: true},
		{Name: "Patience", Category: "Soft Skills"},
	}

	soft := SoftSkills(skills)
	assert.Len(t, soft, 2)
	assert.Equal(t, "Teamwork", soft[0].Name)
	assert.Equal(t, "Patience", soft[1].Name)
}

func TestSkillListDecodesMixedVintages(t *testing.T) {
	data := []byte(`["Welding", {"name":"Go","minYears":4,"category":"Programming"}, null]`)

	skills := SkillList(data)

	assert.Len(t, skills, 3)
	assert.Equal(t, "Welding", skills[0].Name)
	assert.Equal(t, 4, skills[1].MinYears)
	// Garbage element degrades to the defaulted shape
	assert.Equal(t, "Other Skills", skills[2].Category)
}

func TestListDecodersTolerateGarbage(t *testing.T) {
	assert.Empty(t, SkillList([]byte("not json")))
	assert.Empty(t, LanguageList(nil))
	assert.Empty(t, CredentialList([]byte(`{"not":"an array"}`)))
}

func TestLanguageListLegacyShapes(t *testing.T) {
	data := []byte(`["Sotho", {"name":"Xhosa","level":"Fluent"}, {"language":"English","proficiency":"Native"}]`)

	langs := LanguageList(data)

	assert.Equal(t, []domain.Language{
		{Language: "Sotho", Proficiency: ""},
		{Language: "Xhosa", Proficiency: "Fluent"},
		{Language: "English", Proficiency: "Native"},
	}, langs)
}
