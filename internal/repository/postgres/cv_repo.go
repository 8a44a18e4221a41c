package postgres

import (
	"context"
	"errors"
	"fmt"

	"cv-match-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type cvRepository struct {
	db *pgxpool.Pool
}

func NewCVRepository(db *pgxpool.Pool) domain.CVRepository {
	return &cvRepository{db: db}
}

func (r *cvRepository) Create(ctx context.Context, cv *domain.GeneratedCV) error {
	query := `
		INSERT INTO generated_cvs (user_id, title, template, job_url, job_text, ats_score, ats_feedback, content, pdf_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at`

	return r.db.QueryRow(ctx, query,
		cv.UserID, cv.Title, cv.Template, cv.JobURL, cv.JobText,
		cv.ATSScore, pq.Array(cv.ATSFeedback), []byte(cv.Content), cv.PDFURL,
	).Scan(&cv.ID, &cv.CreatedAt)
}

func (r *cvRepository) ListByUser(ctx context.Context, userID string) ([]domain.GeneratedCV, error) {
	// The list view skips the content blob; it is only needed on detail
	query := `
		SELECT id, user_id, title, template, COALESCE(job_url, ''), ats_score,
		       COALESCE(ats_feedback, '{}'), COALESCE(pdf_url, ''), created_at
		FROM generated_cvs WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch generated CVs: %w", err)
	}
	defer rows.Close()

	cvs := []domain.GeneratedCV{}
	for rows.Next() {
		var cv domain.GeneratedCV
		var feedback []string
		err := rows.Scan(
			&cv.ID, &cv.UserID, &cv.Title, &cv.Template, &cv.JobURL,
			&cv.ATSScore, pq.Array(&feedback), &cv.PDFURL, &cv.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		cv.ATSFeedback = feedback
		cvs = append(cvs, cv)
	}
	return cvs, rows.Err()
}

func (r *cvRepository) GetByID(ctx context.Context, userID string, id int64) (*domain.GeneratedCV, error) {
	query := `
		SELECT id, user_id, title, template, COALESCE(job_url, ''), COALESCE(job_text, ''),
		       ats_score, COALESCE(ats_feedback, '{}'), content, COALESCE(pdf_url, ''), created_at
		FROM generated_cvs WHERE id = $1 AND user_id = $2`

	var cv domain.GeneratedCV
	var feedback []string
	var content []byte
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&cv.ID, &cv.UserID, &cv.Title, &cv.Template, &cv.JobURL, &cv.JobText,
		&cv.ATSScore, pq.Array(&feedback), &content, &cv.PDFURL, &cv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	cv.ATSFeedback = feedback
	cv.Content = content
	return &cv, nil
}

func (r *cvRepository) Delete(ctx context.Context, userID string, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM generated_cvs WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
