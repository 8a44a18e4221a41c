package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cv-match-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		SELECT user_id, COALESCE(full_name, ''), COALESCE(email, ''), COALESCE(phone, ''),
		       COALESCE(location, ''), COALESCE(headline, ''), COALESCE(summary, ''),
		       COALESCE(photo_url, ''), created_at, updated_at
		FROM profiles WHERE user_id = $1`

	var p domain.Profile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.FullName, &p.Email, &p.Phone,
		&p.Location, &p.Headline, &p.Summary,
		&p.PhotoURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (user_id, full_name, email, phone, location, headline, summary, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			email     = EXCLUDED.email,
			phone     = EXCLUDED.phone,
			location  = EXCLUDED.location,
			headline  = EXCLUDED.headline,
			summary   = EXCLUDED.summary,
			photo_url = EXCLUDED.photo_url,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.Email, profile.Phone,
		profile.Location, profile.Headline, profile.Summary, profile.PhotoURL,
	)
	return err
}

// =================================================================================================
// Work Experiences
// =================================================================================================

func (r *profileRepository) ListExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	query := `SELECT id, user_id, company_name, job_title, start_date, end_date, COALESCE(description, '')
	          FROM work_experiences WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch work experiences: %w", err)
	}
	defer rows.Close()

	experiences := []domain.WorkExperience{}
	for rows.Next() {
		var w domain.WorkExperience
		var startDate, endDate *time.Time
		if err := rows.Scan(&w.ID, &w.UserID, &w.CompanyName, &w.JobTitle, &startDate, &endDate, &w.Description); err != nil {
			return nil, err
		}
		if startDate != nil {
			w.StartDate = startDate.Format("2006-01-02")
		}
		if endDate != nil {
			ed := endDate.Format("2006-01-02")
			w.EndDate = &ed
		}
		experiences = append(experiences, w)
	}
	return experiences, rows.Err()
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *domain.WorkExperience) error {
	query := `INSERT INTO work_experiences (user_id, company_name, job_title, start_date, end_date, description)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		exp.UserID, exp.CompanyName, exp.JobTitle, exp.StartDate, exp.EndDate, exp.Description,
	).Scan(&exp.ID)
}

func (r *profileRepository) UpdateExperience(ctx context.Context, exp *domain.WorkExperience) error {
	query := `UPDATE work_experiences SET company_name=$1, job_title=$2, start_date=$3, end_date=$4, description=$5
	          WHERE id=$6 AND user_id=$7`
	tag, err := r.db.Exec(ctx, query,
		exp.CompanyName, exp.JobTitle, exp.StartDate, exp.EndDate, exp.Description, exp.ID, exp.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteExperience(ctx context.Context, userID string, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_experiences WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// =================================================================================================
// Projects
// =================================================================================================

func (r *profileRepository) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	query := `SELECT id, user_id, name, COALESCE(description, ''), COALESCE(link, '')
	          FROM projects WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Link); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *profileRepository) AddProject(ctx context.Context, project *domain.Project) error {
	query := `INSERT INTO projects (user_id, name, description, link) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRow(ctx, query, project.UserID, project.Name, project.Description, project.Link).Scan(&project.ID)
}

func (r *profileRepository) UpdateProject(ctx context.Context, project *domain.Project) error {
	query := `UPDATE projects SET name=$1, description=$2, link=$3 WHERE id=$4 AND user_id=$5`
	tag, err := r.db.Exec(ctx, query, project.Name, project.Description, project.Link, project.ID, project.UserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *profileRepository) DeleteProject(ctx context.Context, userID string, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// =================================================================================================
// References
// =================================================================================================

func (r *profileRepository) ListReferences(ctx context.Context, userID string) ([]domain.Reference, error) {
	query := `SELECT id, user_id, name, COALESCE(relationship, ''), COALESCE(company, ''),
	                 COALESCE(email, ''), COALESCE(phone, '')
	          FROM references_list WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch references: %w", err)
	}
	defer rows.Close()

	refs := []domain.Reference{}
	for rows.Next() {
		var ref domain.Reference
		if err := rows.Scan(&ref.ID, &ref.UserID, &ref.Name, &ref.Relationship, &ref.Company, &ref.Email, &ref.Phone); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *profileRepository) AddReference(ctx context.Context, ref *domain.Reference) error {
	query := `INSERT INTO references_list (user_id, name, relationship, company, email, phone)
	          VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		ref.UserID, ref.Name, ref.Relationship, ref.Company, ref.Email, ref.Phone,
	).Scan(&ref.ID)
}

func (r *profileRepository) DeleteReference(ctx context.Context, userID string, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM references_list WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// =================================================================================================
// Matric Results
// =================================================================================================

func (r *profileRepository) GetMatric(ctx context.Context, userID string) (*domain.MatricRecord, error) {
	query := `SELECT user_id, COALESCE(school, ''), COALESCE(completion_year, 0), COALESCE(subjects, '[]'::jsonb)
	          FROM matric_results WHERE user_id = $1`

	var record domain.MatricRecord
	var subjectsJSON []byte
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&record.UserID, &record.School, &record.CompletionYear, &subjectsJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	// Subject rows are stored as a JSONB array; a corrupt blob degrades
	// to an empty subject list rather than failing the profile load
	if err := json.Unmarshal(subjectsJSON, &record.Subjects); err != nil {
		record.Subjects = []domain.MatricSubject{}
	}
	return &record, nil
}

func (r *profileRepository) UpsertMatric(ctx context.Context, record *domain.MatricRecord) error {
	subjectsJSON, err := json.Marshal(record.Subjects)
	if err != nil {
		return fmt.Errorf("failed to encode matric subjects: %w", err)
	}

	query := `
		INSERT INTO matric_results (user_id, school, completion_year, subjects, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			school = EXCLUDED.school,
			completion_year = EXCLUDED.completion_year,
			subjects = EXCLUDED.subjects,
			updated_at = NOW()`

	_, err = r.db.Exec(ctx, query, record.UserID, record.School, record.CompletionYear, subjectsJSON)
	return err
}
