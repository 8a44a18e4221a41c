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

type interviewRepository struct {
	db *pgxpool.Pool
}

func NewInterviewRepository(db *pgxpool.Pool) domain.InterviewRepository {
	return &interviewRepository{db: db}
}

func (r *interviewRepository) CreateSession(ctx context.Context, session *domain.InterviewSession) error {
	query := `INSERT INTO interview_sessions (user_id, role, questions, created_at)
	          VALUES ($1, $2, $3, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		session.UserID, session.Role, pq.Array(session.Questions),
	).Scan(&session.ID, &session.CreatedAt)
}

func (r *interviewRepository) GetSession(ctx context.Context, userID string, id int64) (*domain.InterviewSession, error) {
	query := `SELECT id, user_id, role, COALESCE(questions, '{}'), created_at
	          FROM interview_sessions WHERE id = $1 AND user_id = $2`

	var s domain.InterviewSession
	var questions []string
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&s.ID, &s.UserID, &s.Role, pq.Array(&questions), &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	s.Questions = questions
	return &s, nil
}

func (r *interviewRepository) SaveAnswer(ctx context.Context, answer *domain.InterviewAnswer) error {
	query := `INSERT INTO interview_answers (session_id, question, score, feedback, created_at)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		answer.SessionID, answer.Question, answer.Score, answer.Feedback,
	).Scan(&answer.ID, &answer.CreatedAt)
}

func (r *interviewRepository) ListAnswers(ctx context.Context, sessionID int64) ([]domain.InterviewAnswer, error) {
	query := `SELECT id, session_id, question, score, COALESCE(feedback, ''), created_at
	          FROM interview_answers WHERE session_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch interview answers: %w", err)
	}
	defer rows.Close()

	answers := []domain.InterviewAnswer{}
	for rows.Next() {
		var a domain.InterviewAnswer
		if err := rows.Scan(&a.ID, &a.SessionID, &a.Question, &a.Score, &a.Feedback, &a.CreatedAt); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}
