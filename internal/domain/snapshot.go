package domain

import "context"

// Snapshot slot names. Each profile section mirrors into its own fixed
// slot so the CV tailoring flow can read a recent copy without touching
// the primary store.
const (
	SlotBasicInfo    = "basic_info"
	SlotSkills       = "skills"
	SlotExperience   = "experience"
	SlotCredentials  = "credentials"
	SlotProjects     = "projects"
	SlotLanguages    = "languages"
	SlotReferences   = "references"
	SlotMatric       = "matric"
	SlotMasterCVText = "master_cv_text"
)

// SnapshotStore is the one-way, best-effort mirror of profile sections.
// Writes are last-write-wins with no expiry and no read-back check; a
// failed write is logged by the caller and otherwise ignored.
type SnapshotStore interface {
	SyncSection(ctx context.Context, userID, slot string, value interface{}) error
	// SyncCredentials recomputes the derived combined-credentials slot from
	// its two sources; the combined list is never stored independently.
	SyncCredentials(ctx context.Context, userID string, education, certifications []Credential) error
	ReadSection(ctx context.Context, userID, slot string) ([]byte, error)
	LastSyncedAt(ctx context.Context, userID, slot string) (string, error)
}
