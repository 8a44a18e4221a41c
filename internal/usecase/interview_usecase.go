package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/logger"
)

type interviewUsecase struct {
	interviewRepo domain.InterviewRepository
	profiles      domain.ProfileUsecase
	aiSvc         AIService
}

func NewInterviewUsecase(interviewRepo domain.InterviewRepository, profiles domain.ProfileUsecase, aiSvc AIService) domain.InterviewUsecase {
	return &interviewUsecase{
		interviewRepo: interviewRepo,
		profiles:      profiles,
		aiSvc:         aiSvc,
	}
}

func (u *interviewUsecase) StartSession(ctx context.Context, userID, role string) (*domain.InterviewSession, error) {
	if strings.TrimSpace(role) == "" {
		return nil, apperror.BadRequest("role is required")
	}

	// Question generation works without a profile; it just gets less
	// specific, so a missing profile is not an error here
	var profileJSON json.RawMessage
	if master, err := u.profiles.GetMasterProfile(ctx, userID); err == nil {
		profileJSON, _ = json.Marshal(master)
	} else {
		logger.Log.Warn("interview profile load failed", "user_id", userID, "error", err)
	}

	questions, err := u.aiSvc.InterviewQuestions(ctx, role, profileJSON)
	if err != nil {
		return nil, apperror.New(502, "question generation failed", err)
	}
	if len(questions) == 0 {
		return nil, apperror.New(502, "question generation returned nothing", nil)
	}

	session := &domain.InterviewSession{
		UserID:    userID,
		Role:      role,
		Questions: questions,
	}
	if err := u.interviewRepo.CreateSession(ctx, session); err != nil {
		return nil, apperror.Internal(err)
	}
	return session, nil
}

func (u *interviewUsecase) AnalyzeAnswer(ctx context.Context, userID string, sessionID int64, question string, audio []byte, contentType string) (*domain.InterviewAnswer, error) {
	if len(audio) == 0 {
		return nil, apperror.BadRequest("audio recording is required")
	}

	session, err := u.interviewRepo.GetSession(ctx, userID, sessionID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if session == nil {
		return nil, apperror.NotFound("interview session not found")
	}

	analysis, err := u.aiSvc.AnalyzeAnswer(ctx, question, audio, contentType)
	if err != nil {
		return nil, apperror.New(502, "answer analysis failed", err)
	}

	answer := &domain.InterviewAnswer{
		SessionID: sessionID,
		Question:  question,
		Score:     analysis.Score,
		Feedback:  analysis.Feedback,
	}
	if err := u.interviewRepo.SaveAnswer(ctx, answer); err != nil {
		return nil, apperror.Internal(err)
	}
	return answer, nil
}

func (u *interviewUsecase) GetSession(ctx context.Context, userID string, id int64) (*domain.InterviewSession, []domain.InterviewAnswer, error) {
	session, err := u.interviewRepo.GetSession(ctx, userID, id)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	if session == nil {
		return nil, nil, apperror.NotFound("interview session not found")
	}

	answers, err := u.interviewRepo.ListAnswers(ctx, id)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}
	return session, answers, nil
}
