package v1

import (
	"net/http"
	"time"

	"cv-match-backend/config"
	"cv-match-backend/internal/delivery/http/middleware"
	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/internal/usecase"
	"cv-match-backend/pkg/auth"
	"cv-match-backend/pkg/storage"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ProfileUC    domain.ProfileUsecase
	CredentialUC domain.CredentialUsecase
	CVUC         domain.CVUsecase
	InterviewUC  domain.InterviewUsecase
	TalentUC     domain.TalentUsecase
	JobScraper   usecase.JobScraper
	Storage      *storage.Client
	JWKSProvider *auth.Provider
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global middlewares; CORS must be first
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))
	r.Use(middleware.ErrorHandler())

	aiLimiterCfg := middleware.AIRateLimitConfig(deps.Config.RateLimitAIThreshold, window)
	aiLimiterCfg.FailClosed = deps.Config.RateLimitFailClosed
	aiLimiter := middleware.RateLimitMiddleware(aiLimiterCfg)
	uploadLimiter := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	v1 := r.Group("/v1")

	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.JWKSProvider, deps.Config, deps.AuthUC))
	{
		NewAuthHandler(protected, deps.AuthUC)
		NewProfileHandler(protected, deps.ProfileUC)
		NewCredentialHandler(protected, deps.CredentialUC, deps.Storage, uploadLimiter)
		NewCVHandler(protected, deps.CVUC, deps.JobScraper, aiLimiter)
		NewInterviewHandler(protected, deps.InterviewUC, aiLimiter)

		// Talent pool is recruiter/admin only
		recruiters := protected.Group("")
		recruiters.Use(middleware.RequireRoles(domain.RoleRecruiter, domain.RoleAdmin))
		NewTalentHandler(recruiters, deps.TalentUC)
	}

	return r
}
