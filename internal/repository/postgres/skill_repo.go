package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"cv-match-backend/internal/domain"
	"cv-match-backend/internal/normalize"

	"github.com/jackc/pgx/v5/pgxpool"
)

// skillRepository stores skills and languages as one JSONB value per row.
// The value column keeps whatever shape was originally saved (bare
// strings, legacy keys, canonical objects); rows are canonicalized on
// read and never migrated in place.
type skillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) ListSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	query := `SELECT id, value FROM skills WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch skills: %w", err)
	}
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		var id int64
		var value []byte
		if err := rows.Scan(&id, &value); err != nil {
			return nil, err
		}
		s := normalize.Skill(json.RawMessage(value))
		s.ID = id
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

func (r *skillRepository) AddSkill(ctx context.Context, userID string, skill domain.Skill) (int64, error) {
	skill.ID = 0
	value, err := json.Marshal(skill)
	if err != nil {
		return 0, fmt.Errorf("failed to encode skill: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO skills (user_id, value) VALUES ($1, $2) RETURNING id`,
		userID, value,
	).Scan(&id)
	return id, err
}

func (r *skillRepository) UpdateSkill(ctx context.Context, userID string, skill domain.Skill) error {
	id := skill.ID
	skill.ID = 0
	value, err := json.Marshal(skill)
	if err != nil {
		return fmt.Errorf("failed to encode skill: %w", err)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE skills SET value=$1 WHERE id=$2 AND user_id=$3`,
		value, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepository) DeleteSkill(ctx context.Context, userID string, id int64, name string) error {
	if id > 0 {
		tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id=$1 AND user_id=$2`, id, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	}

	// Legacy rows may be a bare JSON string or an object with a name key
	tag, err := r.db.Exec(ctx,
		`DELETE FROM skills WHERE user_id=$1 AND (value->>'name' = $2 OR value #>> '{}' = $2)`,
		userID, name,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepository) ListLanguages(ctx context.Context, userID string) ([]domain.Language, error) {
	query := `SELECT id, value FROM languages WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch languages: %w", err)
	}
	defer rows.Close()

	langs := []domain.Language{}
	for rows.Next() {
		var id int64
		var value []byte
		if err := rows.Scan(&id, &value); err != nil {
			return nil, err
		}
		l := normalize.Language(json.RawMessage(value))
		l.ID = id
		langs = append(langs, l)
	}
	return langs, rows.Err()
}

func (r *skillRepository) AddLanguage(ctx context.Context, userID string, lang domain.Language) (int64, error) {
	lang.ID = 0
	value, err := json.Marshal(lang)
	if err != nil {
		return 0, fmt.Errorf("failed to encode language: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO languages (user_id, value) VALUES ($1, $2) RETURNING id`,
		userID, value,
	).Scan(&id)
	return id, err
}

func (r *skillRepository) DeleteLanguage(ctx context.Context, userID string, id int64, language string) error {
	if id > 0 {
		tag, err := r.db.Exec(ctx, `DELETE FROM languages WHERE id=$1 AND user_id=$2`, id, userID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrNotFound
		}
		return nil
	}

	// Match modern and legacy key names plus the bare-string vintage
	tag, err := r.db.Exec(ctx,
		`DELETE FROM languages WHERE user_id=$1
		   AND (value->>'language' = $2 OR value->>'name' = $2 OR value #>> '{}' = $2)`,
		userID, language,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
