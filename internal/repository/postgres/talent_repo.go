package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cv-match-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type talentRepository struct {
	db *pgxpool.Pool
}

func NewTalentRepository(db *pgxpool.Pool) domain.TalentRepository {
	return &talentRepository{db: db}
}

// FetchPool assembles the full ordered talent pool from the profile
// tables. Filtering happens in memory afterwards, so this query carries
// no WHERE clauses beyond candidate visibility; ordering is stable by
// user id so repeated searches see the same sequence.
func (r *talentRepository) FetchPool(ctx context.Context) ([]domain.TalentRecord, error) {
	query := `
		SELECT p.user_id, COALESCE(p.full_name, ''), COALESCE(t.sector, ''), COALESCE(p.headline, ''),
		       COALESCE(p.location, ''), COALESCE(t.top_skills, '{}'), COALESCE(t.skills_detailed, '[]'::jsonb),
		       COALESCE(t.experience_years, 0), COALESCE(t.education_level, ''), COALESCE(t.is_verified, false),
		       COALESCE(t.target_roles, '{}'), COALESCE(t.have_license, false), COALESCE(t.have_car, false),
		       COALESCE(t.availability_status, ''), t.certifications
		FROM profiles p
		JOIN talent_listings t ON t.user_id = p.user_id
		WHERE t.is_listed = true
		ORDER BY p.user_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch talent pool: %w", err)
	}
	defer rows.Close()

	pool := []domain.TalentRecord{}
	for rows.Next() {
		var rec domain.TalentRecord
		var topSkills, targetRoles []string
		var certifications []string
		var skillsDetailedJSON []byte

		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Sector, &rec.Headline,
			&rec.Location, pq.Array(&topSkills), &skillsDetailedJSON,
			&rec.ExperienceYears, &rec.Education, &rec.IsVerified,
			pq.Array(&targetRoles), &rec.HaveLicense, &rec.HaveCar,
			&rec.AvailabilityStatus, pq.Array(&certifications),
		)
		if err != nil {
			return nil, err
		}

		rec.TopSkills = topSkills
		rec.TargetRoles = targetRoles
		rec.Certifications = certifications
		// Detailed skills are optional; a corrupt blob leaves the record
		// usable for everything except skill requirements
		if err := json.Unmarshal(skillsDetailedJSON, &rec.SkillsDetailed); err != nil {
			rec.SkillsDetailed = nil
		}

		pool = append(pool, rec)
	}
	return pool, rows.Err()
}

// =================================================================================================
// Saved Groups
// =================================================================================================

func (r *talentRepository) CreateGroup(ctx context.Context, group *domain.TalentGroup) error {
	query := `INSERT INTO talent_groups (recruiter_id, name, created_at, updated_at)
	          VALUES ($1, $2, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query, group.RecruiterID, group.Name).
		Scan(&group.ID, &group.CreatedAt, &group.UpdatedAt)
}

func (r *talentRepository) ListGroups(ctx context.Context, recruiterID string) ([]domain.TalentGroup, error) {
	query := `
		SELECT g.id, g.recruiter_id, g.name, g.created_at, g.updated_at,
		       COALESCE(array_agg(m.talent_id) FILTER (WHERE m.talent_id IS NOT NULL), '{}')
		FROM talent_groups g
		LEFT JOIN talent_group_members m ON m.group_id = g.id
		WHERE g.recruiter_id = $1
		GROUP BY g.id
		ORDER BY g.created_at DESC`

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch groups: %w", err)
	}
	defer rows.Close()

	groups := []domain.TalentGroup{}
	for rows.Next() {
		var g domain.TalentGroup
		var members []string
		if err := rows.Scan(&g.ID, &g.RecruiterID, &g.Name, &g.CreatedAt, &g.UpdatedAt, pq.Array(&members)); err != nil {
			return nil, err
		}
		g.MemberIDs = members
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (r *talentRepository) GetGroup(ctx context.Context, recruiterID string, id int64) (*domain.TalentGroup, error) {
	query := `
		SELECT g.id, g.recruiter_id, g.name, g.created_at, g.updated_at,
		       COALESCE(array_agg(m.talent_id) FILTER (WHERE m.talent_id IS NOT NULL), '{}')
		FROM talent_groups g
		LEFT JOIN talent_group_members m ON m.group_id = g.id
		WHERE g.id = $1 AND g.recruiter_id = $2
		GROUP BY g.id`

	var g domain.TalentGroup
	var members []string
	err := r.db.QueryRow(ctx, query, id, recruiterID).
		Scan(&g.ID, &g.RecruiterID, &g.Name, &g.CreatedAt, &g.UpdatedAt, pq.Array(&members))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	g.MemberIDs = members
	return &g, nil
}

func (r *talentRepository) DeleteGroup(ctx context.Context, recruiterID string, id int64) error {
	// Members go first; no FK cascade is assumed
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM talent_group_members WHERE group_id=$1`, id); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, `DELETE FROM talent_groups WHERE id=$1 AND recruiter_id=$2`, id, recruiterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit(ctx)
}

func (r *talentRepository) AddGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error {
	// Ownership check rides inside the insert
	query := `
		INSERT INTO talent_group_members (group_id, talent_id)
		SELECT g.id, $3 FROM talent_groups g WHERE g.id = $1 AND g.recruiter_id = $2
		ON CONFLICT (group_id, talent_id) DO NOTHING`

	tag, err := r.db.Exec(ctx, query, groupID, recruiterID, talentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		// Either the group is not theirs or the member already exists;
		// distinguish so duplicates stay idempotent
		group, gerr := r.GetGroup(ctx, recruiterID, groupID)
		if gerr != nil {
			return gerr
		}
		if group == nil {
			return domain.ErrNotFound
		}
	}
	return nil
}

func (r *talentRepository) RemoveGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error {
	query := `
		DELETE FROM talent_group_members m
		USING talent_groups g
		WHERE m.group_id = g.id AND g.id = $1 AND g.recruiter_id = $2 AND m.talent_id = $3`

	tag, err := r.db.Exec(ctx, query, groupID, recruiterID, talentID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
