package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/ai"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/audit"
	"cv-match-backend/pkg/logger"
	"cv-match-backend/pkg/renderer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// =================================================================================================
// Mocks
// =================================================================================================

type MockCredentialRepo struct{ mock.Mock }

func (m *MockCredentialRepo) ListByUser(ctx context.Context, userID string) ([]domain.Credential, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Credential), args.Error(1)
}
func (m *MockCredentialRepo) GetByID(ctx context.Context, id int64) (*domain.Credential, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Credential), args.Error(1)
}
func (m *MockCredentialRepo) Create(ctx context.Context, cred *domain.Credential) error {
	return m.Called(ctx, cred).Error(0)
}
func (m *MockCredentialRepo) Update(ctx context.Context, cred *domain.Credential) error {
	return m.Called(ctx, cred).Error(0)
}
func (m *MockCredentialRepo) Delete(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockSnapshotStore struct{ mock.Mock }

func (m *MockSnapshotStore) SyncSection(ctx context.Context, userID, slot string, value interface{}) error {
	return m.Called(ctx, userID, slot, value).Error(0)
}
func (m *MockSnapshotStore) SyncCredentials(ctx context.Context, userID string, education, certifications []domain.Credential) error {
	return m.Called(ctx, userID, education, certifications).Error(0)
}
func (m *MockSnapshotStore) ReadSection(ctx context.Context, userID, slot string) ([]byte, error) {
	args := m.Called(ctx, userID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
func (m *MockSnapshotStore) LastSyncedAt(ctx context.Context, userID, slot string) (string, error) {
	args := m.Called(ctx, userID, slot)
	return args.String(0), args.Error(1)
}

type MockTalentRepo struct{ mock.Mock }

func (m *MockTalentRepo) FetchPool(ctx context.Context) ([]domain.TalentRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.TalentRecord), args.Error(1)
}
func (m *MockTalentRepo) CreateGroup(ctx context.Context, group *domain.TalentGroup) error {
	return m.Called(ctx, group).Error(0)
}
func (m *MockTalentRepo) ListGroups(ctx context.Context, recruiterID string) ([]domain.TalentGroup, error) {
	args := m.Called(ctx, recruiterID)
	return args.Get(0).([]domain.TalentGroup), args.Error(1)
}
func (m *MockTalentRepo) GetGroup(ctx context.Context, recruiterID string, id int64) (*domain.TalentGroup, error) {
	args := m.Called(ctx, recruiterID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TalentGroup), args.Error(1)
}
func (m *MockTalentRepo) DeleteGroup(ctx context.Context, recruiterID string, id int64) error {
	return m.Called(ctx, recruiterID, id).Error(0)
}
func (m *MockTalentRepo) AddGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error {
	return m.Called(ctx, recruiterID, groupID, talentID).Error(0)
}
func (m *MockTalentRepo) RemoveGroupMember(ctx context.Context, recruiterID string, groupID int64, talentID string) error {
	return m.Called(ctx, recruiterID, groupID, talentID).Error(0)
}

type MockCVRepo struct{ mock.Mock }

func (m *MockCVRepo) Create(ctx context.Context, cv *domain.GeneratedCV) error {
	return m.Called(ctx, cv).Error(0)
}
func (m *MockCVRepo) ListByUser(ctx context.Context, userID string) ([]domain.GeneratedCV, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.GeneratedCV), args.Error(1)
}
func (m *MockCVRepo) GetByID(ctx context.Context, userID string, id int64) (*domain.GeneratedCV, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedCV), args.Error(1)
}
func (m *MockCVRepo) Delete(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockProfileUsecase struct{ mock.Mock }

func (m *MockProfileUsecase) GetMasterProfile(ctx context.Context, userID string) (*domain.MasterProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MasterProfile), args.Error(1)
}
func (m *MockProfileUsecase) UpdateBasicInfo(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileUsecase) AddExperience(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockProfileUsecase) UpdateExperience(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockProfileUsecase) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockProfileUsecase) AddProject(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProfileUsecase) UpdateProject(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProfileUsecase) DeleteProject(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockProfileUsecase) AddReference(ctx context.Context, ref *domain.Reference) error {
	return m.Called(ctx, ref).Error(0)
}
func (m *MockProfileUsecase) DeleteReference(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockProfileUsecase) UpsertMatric(ctx context.Context, record *domain.MatricRecord) error {
	return m.Called(ctx, record).Error(0)
}
func (m *MockProfileUsecase) AddSkill(ctx context.Context, userID string, skill domain.Skill) error {
	return m.Called(ctx, userID, skill).Error(0)
}
func (m *MockProfileUsecase) UpdateSkill(ctx context.Context, userID string, skill domain.Skill) error {
	return m.Called(ctx, userID, skill).Error(0)
}
func (m *MockProfileUsecase) DeleteSkill(ctx context.Context, userID string, id int64, name string) error {
	return m.Called(ctx, userID, id, name).Error(0)
}
func (m *MockProfileUsecase) AddLanguage(ctx context.Context, userID string, lang domain.Language) error {
	return m.Called(ctx, userID, lang).Error(0)
}
func (m *MockProfileUsecase) DeleteLanguage(ctx context.Context, userID string, id int64, language string) error {
	return m.Called(ctx, userID, id, language).Error(0)
}
func (m *MockProfileUsecase) SaveMasterCVText(ctx context.Context, userID, text string) error {
	return m.Called(ctx, userID, text).Error(0)
}

type MockAIService struct{ mock.Mock }

func (m *MockAIService) OptimizeCV(ctx context.Context, req ai.OptimizeRequest) (*ai.OptimizeResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.OptimizeResponse), args.Error(1)
}
func (m *MockAIService) ScoreCV(ctx context.Context, cv json.RawMessage, jobText string) (*ai.ATSScore, error) {
	args := m.Called(ctx, cv, jobText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.ATSScore), args.Error(1)
}
func (m *MockAIService) CleanCV(ctx context.Context, rawText string) (json.RawMessage, error) {
	args := m.Called(ctx, rawText)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
func (m *MockAIService) RevampProfile(ctx context.Context, profile json.RawMessage) (json.RawMessage, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}
func (m *MockAIService) InterviewQuestions(ctx context.Context, role string, profile json.RawMessage) ([]string, error) {
	args := m.Called(ctx, role, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockAIService) AnalyzeAnswer(ctx context.Context, question string, audio []byte, contentType string) (*ai.AnswerAnalysis, error) {
	args := m.Called(ctx, question, audio, contentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ai.AnswerAnalysis), args.Error(1)
}

type MockScraper struct{ mock.Mock }

func (m *MockScraper) Scrape(ctx context.Context, jobURL string) ([]string, error) {
	args := m.Called(ctx, jobURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockRenderer struct{ mock.Mock }

func (m *MockRenderer) Render(ctx context.Context, req renderer.RenderRequest) (*renderer.RenderResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*renderer.RenderResult), args.Error(1)
}

// =================================================================================================
// Credential usecase
// =================================================================================================

func TestAttachDocumentRejectsForeignCredential(t *testing.T) {
	credRepo := new(MockCredentialRepo)
	uc := NewCredentialUsecase(credRepo, nil)

	credRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Credential{ID: 7, UserID: "owner-user"}, nil)

	err := uc.AttachDocument(context.Background(), "attacker-user", 7, "https://cdn.example.com/doc.pdf")

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, 404, appErr.Code)
	credRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAttachDocumentUpdatesOwnCredential(t *testing.T) {
	credRepo := new(MockCredentialRepo)
	snapshots := new(MockSnapshotStore)
	uc := NewCredentialUsecase(credRepo, snapshots)

	credRepo.On("GetByID", mock.Anything, int64(7)).
		Return(&domain.Credential{ID: 7, UserID: "user-1", Type: domain.CredentialCertification}, nil)
	credRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Credential) bool {
		return c.DocumentURL == "https://cdn.example.com/doc.pdf"
	})).Return(nil)
	credRepo.On("ListByUser", mock.Anything, "user-1").
		Return([]domain.Credential{{ID: 7, UserID: "user-1", Type: domain.CredentialCertification, DocumentURL: "https://cdn.example.com/doc.pdf", IsVerified: true}}, nil)
	snapshots.On("SyncCredentials", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil)

	err := uc.AttachDocument(context.Background(), "user-1", 7, "https://cdn.example.com/doc.pdf")

	assert.NoError(t, err)
	snapshots.AssertCalled(t, "SyncCredentials", mock.Anything, "user-1", mock.Anything, mock.Anything)
}

func TestCredentialSnapshotFailureDoesNotFailWrite(t *testing.T) {
	credRepo := new(MockCredentialRepo)
	snapshots := new(MockSnapshotStore)
	uc := NewCredentialUsecase(credRepo, snapshots)

	credRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	credRepo.On("ListByUser", mock.Anything, "user-1").Return([]domain.Credential{}, nil)
	snapshots.On("SyncCredentials", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	err := uc.Add(context.Background(), &domain.Credential{UserID: "user-1", Title: "BSc"})

	assert.NoError(t, err, "mirror writes are best-effort")
}

// =================================================================================================
// Talent usecase
// =================================================================================================

func talentPoolFixture(n int) []domain.TalentRecord {
	pool := make([]domain.TalentRecord, 0, n)
	for i := 0; i < n; i++ {
		pool = append(pool, domain.TalentRecord{
			ID:     string(rune('a' + i)),
			Name:   "Talent",
			Sector: "Technology",
		})
	}
	return pool
}

func TestSearchPagination(t *testing.T) {
	repo := new(MockTalentRepo)
	uc := NewTalentUsecase(repo, audit.Default(), 0)

	repo.On("FetchPool", mock.Anything).Return(talentPoolFixture(45), nil)

	result, err := uc.Search(context.Background(), domain.TalentSearchRequest{Page: 3, PageSize: 20})

	assert.NoError(t, err)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.TotalPages)
	assert.Len(t, result.Data, 5)
}

func TestSearchDefaultsPageSize(t *testing.T) {
	repo := new(MockTalentRepo)
	uc := NewTalentUsecase(repo, audit.Default(), 0)

	repo.On("FetchPool", mock.Anything).Return(talentPoolFixture(30), nil)

	result, err := uc.Search(context.Background(), domain.TalentSearchRequest{})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Page)
	assert.Len(t, result.Data, 20)
}

func TestExportRejectsUnknownColumn(t *testing.T) {
	repo := new(MockTalentRepo)
	uc := NewTalentUsecase(repo, audit.Default(), 0)

	_, _, err := uc.Export(context.Background(), domain.TalentExportRequest{
		Columns: []string{"name", "password_hash"},
	})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "FetchPool", mock.Anything)
}

func TestExportCapsRows(t *testing.T) {
	repo := new(MockTalentRepo)
	uc := NewTalentUsecase(repo, audit.Default(), 10)

	repo.On("FetchPool", mock.Anything).Return(talentPoolFixture(25), nil)

	data, filename, err := uc.Export(context.Background(), domain.TalentExportRequest{
		Format:  "csv",
		Columns: []string{"name", "sector"},
	})

	assert.NoError(t, err)
	assert.Contains(t, filename, ".csv")
	// Header plus capped rows plus trailing newline
	lines := 0
	for _, b := range data {
		if b == '\n' {
			lines++
		}
	}
	assert.Equal(t, 11, lines)
}

func TestCreateGroupRequiresName(t *testing.T) {
	repo := new(MockTalentRepo)
	uc := NewTalentUsecase(repo, audit.Default(), 0)

	err := uc.CreateGroup(context.Background(), &domain.TalentGroup{RecruiterID: "r1", Name: "   "})

	assert.Error(t, err)
	repo.AssertNotCalled(t, "CreateGroup", mock.Anything, mock.Anything)
}

// =================================================================================================
// CV usecase
// =================================================================================================

func TestTailorPastedTextSkipsScraper(t *testing.T) {
	cvRepo := new(MockCVRepo)
	profiles := new(MockProfileUsecase)
	snapshots := new(MockSnapshotStore)
	aiSvc := new(MockAIService)
	jobScraper := new(MockScraper)
	pdf := new(MockRenderer)

	uc := NewCVUsecase(cvRepo, profiles, snapshots, aiSvc, jobScraper, pdf, audit.Default())

	snapshots.On("ReadSection", mock.Anything, "user-1", mock.Anything).Return(nil, nil)
	profiles.On("GetMasterProfile", mock.Anything, "user-1").
		Return(&domain.MasterProfile{Profile: domain.Profile{UserID: "user-1", FullName: "Test User"}}, nil)
	aiSvc.On("OptimizeCV", mock.Anything, mock.MatchedBy(func(req ai.OptimizeRequest) bool {
		return req.JobText == "We need a Go engineer" && len(req.Requirements) == 0
	})).Return(&ai.OptimizeResponse{CV: json.RawMessage(`{"summary":"tailored"}`)}, nil)
	aiSvc.On("ScoreCV", mock.Anything, mock.Anything, mock.Anything).
		Return(&ai.ATSScore{Score: 82, Feedback: []string{"good keyword coverage"}}, nil)
	pdf.On("Render", mock.Anything, mock.Anything).Return(&renderer.RenderResult{PDFURL: "https://cdn/cv.pdf"}, nil)
	cvRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	cv, err := uc.Tailor(context.Background(), domain.TailorRequest{
		UserID:   "user-1",
		Title:    "Go Engineer CV",
		Template: domain.TemplateModern,
		JobURL:   "https://jobs.example.com/123",
		JobText:  "We need a Go engineer",
	})

	assert.NoError(t, err)
	assert.Equal(t, 82.0, cv.ATSScore)
	assert.Equal(t, "https://cdn/cv.pdf", cv.PDFURL)
	jobScraper.AssertNotCalled(t, "Scrape", mock.Anything, mock.Anything)
}

func TestImportSavesRawTextBeforeParsing(t *testing.T) {
	profiles := new(MockProfileUsecase)
	aiSvc := new(MockAIService)

	uc := NewCVUsecase(new(MockCVRepo), profiles, nil, aiSvc, new(MockScraper), new(MockRenderer), audit.Default())

	profiles.On("SaveMasterCVText", mock.Anything, "user-1", "John Doe\nChef, Durban").Return(nil)
	aiSvc.On("CleanCV", mock.Anything, "John Doe\nChef, Durban").
		Return(json.RawMessage(`{"profile":{"full_name":"John Doe"}}`), nil)

	parsed, err := uc.Import(context.Background(), "user-1", "  John Doe\nChef, Durban  ")

	assert.NoError(t, err)
	assert.JSONEq(t, `{"profile":{"full_name":"John Doe"}}`, string(parsed))
	profiles.AssertExpectations(t)
}

func TestImportParsingFailureKeepsRawText(t *testing.T) {
	profiles := new(MockProfileUsecase)
	aiSvc := new(MockAIService)

	uc := NewCVUsecase(new(MockCVRepo), profiles, nil, aiSvc, new(MockScraper), new(MockRenderer), audit.Default())

	profiles.On("SaveMasterCVText", mock.Anything, "user-1", "raw text").Return(nil)
	aiSvc.On("CleanCV", mock.Anything, "raw text").Return(nil, errors.New("service down"))

	_, err := uc.Import(context.Background(), "user-1", "raw text")

	assert.Error(t, err)
	profiles.AssertCalled(t, "SaveMasterCVText", mock.Anything, "user-1", "raw text")
}

func TestImportRejectsEmptyText(t *testing.T) {
	uc := NewCVUsecase(new(MockCVRepo), new(MockProfileUsecase), nil, new(MockAIService), new(MockScraper), new(MockRenderer), audit.Default())

	_, err := uc.Import(context.Background(), "user-1", "   ")

	assert.Error(t, err)
}

func TestTailorRejectsUnknownTemplate(t *testing.T) {
	uc := NewCVUsecase(new(MockCVRepo), new(MockProfileUsecase), nil, new(MockAIService), new(MockScraper), new(MockRenderer), audit.Default())

	_, err := uc.Tailor(context.Background(), domain.TailorRequest{
		UserID: "user-1", Title: "x", Template: "fancy", JobText: "text",
	})

	assert.Error(t, err)
}

func TestTailorScoringFailureDegrades(t *testing.T) {
	cvRepo := new(MockCVRepo)
	profiles := new(MockProfileUsecase)
	aiSvc := new(MockAIService)
	pdf := new(MockRenderer)

	uc := NewCVUsecase(cvRepo, profiles, nil, aiSvc, new(MockScraper), pdf, audit.Default())

	profiles.On("GetMasterProfile", mock.Anything, "user-1").
		Return(&domain.MasterProfile{}, nil)
	aiSvc.On("OptimizeCV", mock.Anything, mock.Anything).
		Return(&ai.OptimizeResponse{CV: json.RawMessage(`{}`)}, nil)
	aiSvc.On("ScoreCV", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("scorer timeout"))
	pdf.On("Render", mock.Anything, mock.Anything).Return(&renderer.RenderResult{PDFURL: "u"}, nil)
	cvRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	cv, err := uc.Tailor(context.Background(), domain.TailorRequest{
		UserID: "user-1", Title: "x", Template: domain.TemplateMinimalist, JobText: "text",
	})

	assert.NoError(t, err)
	assert.Zero(t, cv.ATSScore)
	assert.Empty(t, cv.ATSFeedback)
}

// =================================================================================================
// Profile usecase snapshot behavior
// =================================================================================================

type MockProfileRepo struct{ mock.Mock }

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) ListExperiences(ctx context.Context, userID string) ([]domain.WorkExperience, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.WorkExperience), args.Error(1)
}
func (m *MockProfileRepo) AddExperience(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockProfileRepo) UpdateExperience(ctx context.Context, exp *domain.WorkExperience) error {
	return m.Called(ctx, exp).Error(0)
}
func (m *MockProfileRepo) DeleteExperience(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockProfileRepo) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Project), args.Error(1)
}
func (m *MockProfileRepo) AddProject(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProfileRepo) UpdateProject(ctx context.Context, project *domain.Project) error {
	return m.Called(ctx, project).Error(0)
}
func (m *MockProfileRepo) DeleteProject(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockProfileRepo) ListReferences(ctx context.Context, userID string) ([]domain.Reference, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Reference), args.Error(1)
}
func (m *MockProfileRepo) AddReference(ctx context.Context, ref *domain.Reference) error {
	return m.Called(ctx, ref).Error(0)
}
func (m *MockProfileRepo) DeleteReference(ctx context.Context, userID string, id int64) error {
	return m.Called(ctx, userID, id).Error(0)
}
func (m *MockProfileRepo) GetMatric(ctx context.Context, userID string) (*domain.MatricRecord, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatricRecord), args.Error(1)
}
func (m *MockProfileRepo) UpsertMatric(ctx context.Context, record *domain.MatricRecord) error {
	return m.Called(ctx, record).Error(0)
}

type MockSkillRepo struct{ mock.Mock }

func (m *MockSkillRepo) ListSkills(ctx context.Context, userID string) ([]domain.Skill, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) AddSkill(ctx context.Context, userID string, skill domain.Skill) (int64, error) {
	args := m.Called(ctx, userID, skill)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSkillRepo) UpdateSkill(ctx context.Context, userID string, skill domain.Skill) error {
	return m.Called(ctx, userID, skill).Error(0)
}
func (m *MockSkillRepo) DeleteSkill(ctx context.Context, userID string, id int64, name string) error {
	return m.Called(ctx, userID, id, name).Error(0)
}
func (m *MockSkillRepo) ListLanguages(ctx context.Context, userID string) ([]domain.Language, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Language), args.Error(1)
}
func (m *MockSkillRepo) AddLanguage(ctx context.Context, userID string, lang domain.Language) (int64, error) {
	args := m.Called(ctx, userID, lang)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSkillRepo) DeleteLanguage(ctx context.Context, userID string, id int64, language string) error {
	return m.Called(ctx, userID, id, language).Error(0)
}

func TestAddSkillSyncsSnapshot(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	skillRepo := new(MockSkillRepo)
	credRepo := new(MockCredentialRepo)
	snapshots := new(MockSnapshotStore)

	uc := NewProfileUsecase(profileRepo, skillRepo, credRepo, snapshots)

	skillRepo.On("AddSkill", mock.Anything, "user-1", mock.Anything).Return(int64(1), nil)
	skillRepo.On("ListSkills", mock.Anything, "user-1").
		Return([]domain.Skill{{ID: 1, Name: "Go", Category: "Programming"}}, nil)
	snapshots.On("SyncSection", mock.Anything, "user-1", domain.SlotSkills, mock.Anything).Return(nil)

	err := uc.AddSkill(context.Background(), "user-1", domain.Skill{Name: "Go", Category: "Programming"})

	assert.NoError(t, err)
	snapshots.AssertCalled(t, "SyncSection", mock.Anything, "user-1", domain.SlotSkills, mock.Anything)
}

func TestAddSkillSnapshotFailureIsSwallowed(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	skillRepo := new(MockSkillRepo)
	snapshots := new(MockSnapshotStore)

	uc := NewProfileUsecase(profileRepo, skillRepo, new(MockCredentialRepo), snapshots)

	skillRepo.On("AddSkill", mock.Anything, "user-1", mock.Anything).Return(int64(1), nil)
	skillRepo.On("ListSkills", mock.Anything, "user-1").Return([]domain.Skill{}, nil)
	snapshots.On("SyncSection", mock.Anything, "user-1", domain.SlotSkills, mock.Anything).
		Return(errors.New("redis down"))

	err := uc.AddSkill(context.Background(), "user-1", domain.Skill{Name: "Go"})

	assert.NoError(t, err)
}

func TestGetMasterProfileSplitsCredentials(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	skillRepo := new(MockSkillRepo)
	credRepo := new(MockCredentialRepo)

	uc := NewProfileUsecase(profileRepo, skillRepo, credRepo, nil)

	profileRepo.On("GetByUserID", mock.Anything, "user-1").
		Return(&domain.Profile{UserID: "user-1", FullName: "Test User"}, nil)
	profileRepo.On("ListExperiences", mock.Anything, "user-1").Return([]domain.WorkExperience{}, nil)
	profileRepo.On("ListProjects", mock.Anything, "user-1").Return([]domain.Project{}, nil)
	profileRepo.On("ListReferences", mock.Anything, "user-1").Return([]domain.Reference{}, nil)
	profileRepo.On("GetMatric", mock.Anything, "user-1").Return(nil, nil)
	skillRepo.On("ListSkills", mock.Anything, "user-1").Return([]domain.Skill{}, nil)
	skillRepo.On("ListLanguages", mock.Anything, "user-1").Return([]domain.Language{}, nil)
	credRepo.On("ListByUser", mock.Anything, "user-1").Return([]domain.Credential{
		{ID: 1, Type: domain.CredentialEducation, Title: "BSc"},
		{ID: 2, Type: domain.CredentialCertification, Title: "AWS SAA"},
		{ID: 3, Type: domain.CredentialHighSchool, Title: "Matric"},
	}, nil)

	master, err := uc.GetMasterProfile(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Len(t, master.Education, 2)
	assert.Len(t, master.Certifications, 1)
	assert.Equal(t, "AWS SAA", master.Certifications[0].Title)
}

func TestGetMasterProfileRefreshesSnapshotSlots(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	skillRepo := new(MockSkillRepo)
	credRepo := new(MockCredentialRepo)
	snapshots := new(MockSnapshotStore)

	uc := NewProfileUsecase(profileRepo, skillRepo, credRepo, snapshots)

	profileRepo.On("GetByUserID", mock.Anything, "user-1").
		Return(&domain.Profile{UserID: "user-1", FullName: "Test User"}, nil)
	profileRepo.On("ListExperiences", mock.Anything, "user-1").Return([]domain.WorkExperience{}, nil)
	profileRepo.On("ListProjects", mock.Anything, "user-1").Return([]domain.Project{}, nil)
	profileRepo.On("ListReferences", mock.Anything, "user-1").Return([]domain.Reference{}, nil)
	profileRepo.On("GetMatric", mock.Anything, "user-1").
		Return(&domain.MatricRecord{UserID: "user-1", School: "Local High"}, nil)
	skillRepo.On("ListSkills", mock.Anything, "user-1").Return([]domain.Skill{}, nil)
	skillRepo.On("ListLanguages", mock.Anything, "user-1").Return([]domain.Language{}, nil)
	credRepo.On("ListByUser", mock.Anything, "user-1").Return([]domain.Credential{
		{ID: 1, Type: domain.CredentialEducation, Title: "BSc"},
	}, nil)
	snapshots.On("SyncSection", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil)
	snapshots.On("SyncCredentials", mock.Anything, "user-1", mock.Anything, mock.Anything).Return(nil)

	_, err := uc.GetMasterProfile(context.Background(), "user-1")

	assert.NoError(t, err)
	for _, slot := range []string{
		domain.SlotBasicInfo, domain.SlotExperience, domain.SlotProjects,
		domain.SlotReferences, domain.SlotSkills, domain.SlotLanguages,
		domain.SlotMatric,
	} {
		snapshots.AssertCalled(t, "SyncSection", mock.Anything, "user-1", slot, mock.Anything)
	}
	snapshots.AssertCalled(t, "SyncCredentials", mock.Anything, "user-1", mock.Anything, mock.Anything)
}

func TestGetMasterProfileSnapshotFailureIsSwallowed(t *testing.T) {
	profileRepo := new(MockProfileRepo)
	skillRepo := new(MockSkillRepo)
	credRepo := new(MockCredentialRepo)
	snapshots := new(MockSnapshotStore)

	uc := NewProfileUsecase(profileRepo, skillRepo, credRepo, snapshots)

	profileRepo.On("GetByUserID", mock.Anything, "user-1").
		Return(&domain.Profile{UserID: "user-1"}, nil)
	profileRepo.On("ListExperiences", mock.Anything, "user-1").Return([]domain.WorkExperience{}, nil)
	profileRepo.On("ListProjects", mock.Anything, "user-1").Return([]domain.Project{}, nil)
	profileRepo.On("ListReferences", mock.Anything, "user-1").Return([]domain.Reference{}, nil)
	profileRepo.On("GetMatric", mock.Anything, "user-1").Return(nil, nil)
	skillRepo.On("ListSkills", mock.Anything, "user-1").Return([]domain.Skill{}, nil)
	skillRepo.On("ListLanguages", mock.Anything, "user-1").Return([]domain.Language{}, nil)
	credRepo.On("ListByUser", mock.Anything, "user-1").Return([]domain.Credential{}, nil)
	snapshots.On("SyncSection", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(errors.New("redis down"))
	snapshots.On("SyncCredentials", mock.Anything, "user-1", mock.Anything, mock.Anything).
		Return(errors.New("redis down"))

	master, err := uc.GetMasterProfile(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", master.Profile.UserID)
}
