package usecase

import (
	"context"
	"strings"

	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/logger"
)

type credentialUsecase struct {
	credRepo  domain.CredentialRepository
	snapshots domain.SnapshotStore
}

func NewCredentialUsecase(credRepo domain.CredentialRepository, snapshots domain.SnapshotStore) domain.CredentialUsecase {
	return &credentialUsecase{credRepo: credRepo, snapshots: snapshots}
}

func (u *credentialUsecase) List(ctx context.Context, userID string) ([]domain.Credential, error) {
	creds, err := u.credRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return creds, nil
}

func (u *credentialUsecase) Add(ctx context.Context, cred *domain.Credential) error {
	if strings.TrimSpace(cred.Title) == "" {
		return apperror.BadRequest("credential title is required")
	}
	switch cred.Type {
	case "", domain.CredentialEducation, domain.CredentialCertification, domain.CredentialHighSchool:
	default:
		return apperror.BadRequest("unknown credential type")
	}

	if err := u.credRepo.Create(ctx, cred); err != nil {
		return apperror.Internal(err)
	}
	cred.IsVerified = strings.TrimSpace(cred.DocumentURL) != ""
	u.resyncCredentials(ctx, cred.UserID)
	return nil
}

func (u *credentialUsecase) Update(ctx context.Context, cred *domain.Credential) error {
	existing, err := u.credRepo.GetByID(ctx, cred.ID)
	if err != nil {
		return apperror.Internal(err)
	}
	if existing == nil || existing.UserID != cred.UserID {
		return apperror.NotFound("credential not found")
	}

	if err := u.credRepo.Update(ctx, cred); err != nil {
		return wrapRepoError(err, "credential not found")
	}
	cred.IsVerified = strings.TrimSpace(cred.DocumentURL) != ""
	u.resyncCredentials(ctx, cred.UserID)
	return nil
}

func (u *credentialUsecase) Delete(ctx context.Context, userID string, id int64) error {
	if err := u.credRepo.Delete(ctx, userID, id); err != nil {
		return wrapRepoError(err, "credential not found")
	}
	u.resyncCredentials(ctx, userID)
	return nil
}

// AttachDocument stores the uploaded proof's URL on the credential.
// A non-empty document URL is the verification signal; there is no
// separate review step.
func (u *credentialUsecase) AttachDocument(ctx context.Context, userID string, id int64, documentURL string) error {
	if strings.TrimSpace(documentURL) == "" {
		return apperror.BadRequest("document url is required")
	}

	cred, err := u.credRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if cred == nil || cred.UserID != userID {
		return apperror.NotFound("credential not found")
	}

	cred.DocumentURL = documentURL
	if err := u.credRepo.Update(ctx, cred); err != nil {
		return apperror.Internal(err)
	}
	u.resyncCredentials(ctx, userID)
	return nil
}

// resyncCredentials rebuilds the combined credentials slot from both
// sources after any change to either. Best-effort like every mirror write.
func (u *credentialUsecase) resyncCredentials(ctx context.Context, userID string) {
	if u.snapshots == nil {
		return
	}

	creds, err := u.credRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Warn("snapshot reload failed", "slot", domain.SlotCredentials, "error", err)
		return
	}

	education := []domain.Credential{}
	certifications := []domain.Credential{}
	for _, c := range creds {
		if c.Type == domain.CredentialCertification {
			certifications = append(certifications, c)
		} else {
			education = append(education, c)
		}
	}

	if err := u.snapshots.SyncCredentials(ctx, userID, education, certifications); err != nil {
		logger.Log.Warn("snapshot sync failed", "slot", domain.SlotCredentials, "user_id", userID, "error", err)
	}
}
