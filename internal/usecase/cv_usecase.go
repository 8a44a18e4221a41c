package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/ai"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/audit"
	"cv-match-backend/pkg/logger"
	"cv-match-backend/pkg/renderer"
)

// AIService is the slice of the AI client the usecases consume
type AIService interface {
	OptimizeCV(ctx context.Context, req ai.OptimizeRequest) (*ai.OptimizeResponse, error)
	ScoreCV(ctx context.Context, cv json.RawMessage, jobText string) (*ai.ATSScore, error)
	CleanCV(ctx context.Context, rawText string) (json.RawMessage, error)
	RevampProfile(ctx context.Context, profile json.RawMessage) (json.RawMessage, error)
	InterviewQuestions(ctx context.Context, role string, profile json.RawMessage) ([]string, error)
	AnalyzeAnswer(ctx context.Context, question string, audio []byte, contentType string) (*ai.AnswerAnalysis, error)
}

// JobScraper extracts requirement lines from a job posting URL
type JobScraper interface {
	Scrape(ctx context.Context, jobURL string) ([]string, error)
}

// PDFRenderer turns a tailored CV document into a stored PDF
type PDFRenderer interface {
	Render(ctx context.Context, req renderer.RenderRequest) (*renderer.RenderResult, error)
}

type cvUsecase struct {
	cvRepo    domain.CVRepository
	profiles  domain.ProfileUsecase
	snapshots domain.SnapshotStore
	aiSvc     AIService
	scraper   JobScraper
	renderer  PDFRenderer
	auditLog  *audit.Logger
}

func NewCVUsecase(
	cvRepo domain.CVRepository,
	profiles domain.ProfileUsecase,
	snapshots domain.SnapshotStore,
	aiSvc AIService,
	jobScraper JobScraper,
	pdfRenderer PDFRenderer,
	auditLog *audit.Logger,
) domain.CVUsecase {
	return &cvUsecase{
		cvRepo:    cvRepo,
		profiles:  profiles,
		snapshots: snapshots,
		aiSvc:     aiSvc,
		scraper:   jobScraper,
		renderer:  pdfRenderer,
		auditLog:  auditLog,
	}
}

// Tailor runs the full generation pipeline: profile assembly, job
// requirements, AI optimization, ATS scoring, PDF render, persistence.
// When both a URL and pasted text are supplied the pasted text wins and
// the scraper is skipped.
func (u *cvUsecase) Tailor(ctx context.Context, req domain.TailorRequest) (*domain.GeneratedCV, error) {
	if !domain.ValidTemplate(req.Template) {
		return nil, apperror.BadRequest("unknown template")
	}
	jobText := strings.TrimSpace(req.JobText)
	if jobText == "" && strings.TrimSpace(req.JobURL) == "" {
		return nil, apperror.BadRequest("a job url or pasted job description is required")
	}

	profileJSON, err := u.assembleProfile(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	var requirements []string
	if jobText == "" {
		requirements, err = u.scraper.Scrape(ctx, req.JobURL)
		if err != nil {
			return nil, apperror.New(502, "could not read the job posting", err)
		}
	}

	optimized, err := u.aiSvc.OptimizeCV(ctx, ai.OptimizeRequest{
		Profile:      profileJSON,
		Requirements: requirements,
		JobText:      jobText,
	})
	if err != nil {
		return nil, apperror.New(502, "cv optimization failed", err)
	}

	cv := &domain.GeneratedCV{
		UserID:   req.UserID,
		Title:    req.Title,
		Template: req.Template,
		JobURL:   req.JobURL,
		JobText:  jobText,
		Content:  optimized.CV,
	}

	// Scoring is advisory; a scoring failure degrades to an unscored CV
	// rather than losing the generated document
	if score, err := u.aiSvc.ScoreCV(ctx, optimized.CV, jobText); err != nil {
		logger.Log.Warn("ats scoring failed", "user_id", req.UserID, "error", err)
	} else {
		cv.ATSScore = score.Score
		cv.ATSFeedback = score.Feedback
	}

	rendered, err := u.renderer.Render(ctx, renderer.RenderRequest{CV: optimized.CV, Template: req.Template})
	if err != nil {
		return nil, apperror.New(502, "pdf rendering failed", err)
	}
	cv.PDFURL = rendered.PDFURL

	if err := u.cvRepo.Create(ctx, cv); err != nil {
		return nil, apperror.Internal(err)
	}

	u.auditLog.Log(audit.Event{
		Event:     audit.EventCVGenerated,
		UserID:    req.UserID,
		RequestID: requestIDFrom(ctx),
		Details:   map[string]interface{}{"cv_id": cv.ID, "template": cv.Template},
	})
	return cv, nil
}

func (u *cvUsecase) List(ctx context.Context, userID string) ([]domain.GeneratedCV, error) {
	cvs, err := u.cvRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cvs, nil
}

func (u *cvUsecase) Get(ctx context.Context, userID string, id int64) (*domain.GeneratedCV, error) {
	cv, err := u.cvRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if cv == nil {
		return nil, apperror.NotFound("cv not found")
	}
	return cv, nil
}

func (u *cvUsecase) Delete(ctx context.Context, userID string, id int64) error {
	if err := u.cvRepo.Delete(ctx, userID, id); err != nil {
		return wrapRepoError(err, "cv not found")
	}
	return nil
}

// Import stores the pasted master CV text and returns the AI-parsed
// structured profile. The raw blob is saved first so a parsing failure
// never loses the user's paste.
func (u *cvUsecase) Import(ctx context.Context, userID, rawText string) (json.RawMessage, error) {
	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, apperror.BadRequest("cv text is required")
	}

	if err := u.profiles.SaveMasterCVText(ctx, userID, rawText); err != nil {
		return nil, err
	}

	parsed, err := u.aiSvc.CleanCV(ctx, rawText)
	if err != nil {
		return nil, apperror.New(502, "cv parsing failed", err)
	}
	return parsed, nil
}

func (u *cvUsecase) Revamp(ctx context.Context, userID string) (json.RawMessage, error) {
	profileJSON, err := u.assembleProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	suggestions, err := u.aiSvc.RevampProfile(ctx, profileJSON)
	if err != nil {
		return nil, apperror.New(502, "profile revamp failed", err)
	}
	return suggestions, nil
}

// assembleProfile builds the profile document the AI service consumes.
// Snapshot slots are tried first; any gap falls back to a full load from
// the primary store, which also repopulates the mirror indirectly on the
// next mutation.
func (u *cvUsecase) assembleProfile(ctx context.Context, userID string) (json.RawMessage, error) {
	if doc := u.profileFromSnapshot(ctx, userID); doc != nil {
		return doc, nil
	}

	master, err := u.profiles.GetMasterProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(master)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return data, nil
}

func (u *cvUsecase) profileFromSnapshot(ctx context.Context, userID string) json.RawMessage {
	if u.snapshots == nil {
		return nil
	}

	slots := map[string]string{
		"profile":     domain.SlotBasicInfo,
		"skills":      domain.SlotSkills,
		"experiences": domain.SlotExperience,
		"credentials": domain.SlotCredentials,
		"projects":    domain.SlotProjects,
		"languages":   domain.SlotLanguages,
		"references":  domain.SlotReferences,
		"matric":      domain.SlotMatric,
	}

	doc := map[string]json.RawMessage{}
	for field, slot := range slots {
		data, err := u.snapshots.ReadSection(ctx, userID, slot)
		if err != nil {
			logger.Log.Warn("snapshot read failed", "slot", slot, "error", err)
			return nil
		}
		if data == nil {
			// Basic info is the anchor; without it the mirror is unusable
			if slot == domain.SlotBasicInfo {
				return nil
			}
			continue
		}
		doc[field] = data
	}

	assembled, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	return assembled
}
