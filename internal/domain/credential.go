package domain

import "context"

// Credential types stored in the unified qualifications table
const (
	CredentialEducation     = "education"
	CredentialCertification = "certification"
	CredentialHighSchool    = "high_school"
)

// DefaultQualificationLevel is shared between the create flow and the
// profile-load reconstruction so the two paths cannot drift.
const DefaultQualificationLevel = "Tertiary"

// Credential is an education, certification or high-school record.
// A credential is verified iff it carries a document URL: attaching proof
// is the verification signal, there is no separate review step.
type Credential struct {
	ID                 int64  `json:"id"`
	UserID             string `json:"user_id"`
	Type               string `json:"type"`
	Title              string `json:"title"`
	Issuer             string `json:"issuer"`
	Date               string `json:"date"`
	QualificationLevel string `json:"qualification_level,omitempty"`
	DocumentURL        string `json:"document_url,omitempty"`
	IsVerified         bool   `json:"isVerified"`
}

type CredentialRepository interface {
	ListByUser(ctx context.Context, userID string) ([]Credential, error)
	GetByID(ctx context.Context, id int64) (*Credential, error)
	Create(ctx context.Context, cred *Credential) error
	Update(ctx context.Context, cred *Credential) error
	Delete(ctx context.Context, userID string, id int64) error
}

type CredentialUsecase interface {
	List(ctx context.Context, userID string) ([]Credential, error)
	Add(ctx context.Context, cred *Credential) error
	Update(ctx context.Context, cred *Credential) error
	Delete(ctx context.Context, userID string, id int64) error
	// AttachDocument sets the document URL, flipping the credential to verified
	AttachDocument(ctx context.Context, userID string, id int64, documentURL string) error
}
