package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cv-match-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// qualificationRepository backs the credentials section with one unified
// table; education, certifications and high-school records share the
// schema and are discriminated by type.
type qualificationRepository struct {
	db *pgxpool.Pool
}

func NewQualificationRepository(db *pgxpool.Pool) domain.CredentialRepository {
	return &qualificationRepository{db: db}
}

func (r *qualificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Credential, error) {
	query := `
		SELECT id, user_id, COALESCE(type, ''), title, COALESCE(issuer, ''), COALESCE(date, ''),
		       COALESCE(qualification_level, ''), COALESCE(document_url, '')
		FROM qualifications WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch qualifications: %w", err)
	}
	defer rows.Close()

	creds := []domain.Credential{}
	for rows.Next() {
		var c domain.Credential
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.Title, &c.Issuer, &c.Date,
			&c.QualificationLevel, &c.DocumentURL); err != nil {
			return nil, err
		}
		applyCredentialDefaults(&c)
		creds = append(creds, c)
	}
	return creds, rows.Err()
}

func (r *qualificationRepository) GetByID(ctx context.Context, id int64) (*domain.Credential, error) {
	query := `
		SELECT id, user_id, COALESCE(type, ''), title, COALESCE(issuer, ''), COALESCE(date, ''),
		       COALESCE(qualification_level, ''), COALESCE(document_url, '')
		FROM qualifications WHERE id = $1`

	var c domain.Credential
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.UserID, &c.Type, &c.Title, &c.Issuer, &c.Date,
		&c.QualificationLevel, &c.DocumentURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	applyCredentialDefaults(&c)
	return &c, nil
}

func (r *qualificationRepository) Create(ctx context.Context, cred *domain.Credential) error {
	if cred.Type == "" {
		cred.Type = domain.CredentialEducation
	}
	if cred.QualificationLevel == "" {
		cred.QualificationLevel = domain.DefaultQualificationLevel
	}

	query := `
		INSERT INTO qualifications (user_id, type, title, issuer, date, qualification_level, document_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	return r.db.QueryRow(ctx, query,
		cred.UserID, cred.Type, cred.Title, cred.Issuer, cred.Date,
		cred.QualificationLevel, cred.DocumentURL,
	).Scan(&cred.ID)
}

func (r *qualificationRepository) Update(ctx context.Context, cred *domain.Credential) error {
	query := `
		UPDATE qualifications
		SET type=$1, title=$2, issuer=$3, date=$4, qualification_level=$5, document_url=$6
		WHERE id=$7 AND user_id=$8`

	tag, err := r.db.Exec(ctx, query,
		cred.Type, cred.Title, cred.Issuer, cred.Date,
		cred.QualificationLevel, cred.DocumentURL, cred.ID, cred.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *qualificationRepository) Delete(ctx context.Context, userID string, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM qualifications WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// applyCredentialDefaults mirrors normalize.Credential for rows coming
// straight out of the table: type and level get their defaults and the
// verified flag is always derived from the document URL
func applyCredentialDefaults(c *domain.Credential) {
	if c.Type == "" {
		c.Type = domain.CredentialEducation
	}
	if c.QualificationLevel == "" {
		c.QualificationLevel = domain.DefaultQualificationLevel
	}
	c.IsVerified = strings.TrimSpace(c.DocumentURL) != ""
}
