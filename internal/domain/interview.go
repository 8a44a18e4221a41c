package domain

import (
	"context"
	"time"
)

// InterviewSession is one practice run: a role plus generated questions
type InterviewSession struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	Questions []string  `json:"questions"`
	CreatedAt time.Time `json:"created_at"`
}

// InterviewAnswer is the analyzed feedback for one recorded answer
type InterviewAnswer struct {
	ID        int64     `json:"id"`
	SessionID int64     `json:"session_id"`
	Question  string    `json:"question"`
	Score     float64   `json:"score"`
	Feedback  string    `json:"feedback"`
	CreatedAt time.Time `json:"created_at"`
}

type InterviewRepository interface {
	CreateSession(ctx context.Context, session *InterviewSession) error
	GetSession(ctx context.Context, userID string, id int64) (*InterviewSession, error)
	SaveAnswer(ctx context.Context, answer *InterviewAnswer) error
	ListAnswers(ctx context.Context, sessionID int64) ([]InterviewAnswer, error)
}

type InterviewUsecase interface {
	StartSession(ctx context.Context, userID, role string) (*InterviewSession, error)
	// AnalyzeAnswer submits a recorded answer and stores the returned feedback
	AnalyzeAnswer(ctx context.Context, userID string, sessionID int64, question string, audio []byte, contentType string) (*InterviewAnswer, error)
	GetSession(ctx context.Context, userID string, id int64) (*InterviewSession, []InterviewAnswer, error)
}
