package v1

import (
	"net/http"

	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/internal/usecase"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/scraper"

	"github.com/gin-gonic/gin"
)

type CVHandler struct {
	cvUC       domain.CVUsecase
	jobScraper usecase.JobScraper
}

func NewCVHandler(r *gin.RouterGroup, cvUC domain.CVUsecase, jobScraper usecase.JobScraper, aiLimiter gin.HandlerFunc) {
	handler := &CVHandler{cvUC: cvUC, jobScraper: jobScraper}

	cv := r.Group("/cv")
	{
		cv.POST("/tailor", aiLimiter, handler.Tailor)
		cv.GET("", handler.List)
		cv.GET("/:id", handler.Get)
		cv.DELETE("/:id", handler.Delete)
		cv.POST("/scrape", handler.Scrape)
		cv.POST("/import", aiLimiter, handler.Import)
		cv.POST("/revamp", aiLimiter, handler.Revamp)
	}
}

// Tailor godoc
// @Summary      Generate a tailored CV
// @Description  Runs the full pipeline: profile assembly, job requirements, AI optimization, ATS scoring and PDF rendering
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        body  body  domain.TailorRequest  true  "Tailoring request"
// @Success      201  {object}  response.Response{data=domain.GeneratedCV}
// @Failure      400  {object}  response.Response
// @Router       /cv/tailor [post]
// @Security     BearerAuth
func (h *CVHandler) Tailor(c *gin.Context) {
	var req domain.TailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("invalid tailoring payload"))
		return
	}
	req.UserID = c.GetString(string(domain.KeyUserID))

	cv, err := h.cvUC.Tailor(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "CV generated", cv)
}

// List godoc
// @Summary      List generated CVs
// @Tags         cv
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.GeneratedCV}
// @Router       /cv [get]
// @Security     BearerAuth
func (h *CVHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	cvs, err := h.cvUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Generated CVs", cvs)
}

func (h *CVHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	cv, err := h.cvUC.Get(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Generated CV", cv)
}

func (h *CVHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.cvUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV deleted", nil)
}

// Scrape godoc
// @Summary      Preview a job posting's requirements
// @Description  Scrapes the URL and returns requirement lines grouped by section with their tags
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        body  body  object{url=string}  true  "Job posting URL"
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /cv/scrape [post]
// @Security     BearerAuth
func (h *CVHandler) Scrape(c *gin.Context) {
	var body struct {
		URL string `json:"url" binding:"required,url"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("a valid job posting url is required"))
		return
	}

	lines, err := h.jobScraper.Scrape(c.Request.Context(), body.URL)
	if err != nil {
		c.Error(apperror.New(http.StatusBadGateway, "could not read the job posting", err))
		return
	}

	groups := scraper.Parse(lines)
	response.Success(c, http.StatusOK, "Job requirements", gin.H{
		"groups":       groups,
		"requirements": scraper.Flatten(groups),
	})
}

// Import godoc
// @Summary      Import a pasted master CV
// @Description  Saves the raw text and returns the parsed structured profile
// @Tags         cv
// @Accept       json
// @Produce      json
// @Param        body  body  object{text=string}  true  "Raw CV text"
// @Success      200  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /cv/import [post]
// @Security     BearerAuth
func (h *CVHandler) Import(c *gin.Context) {
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("cv text is required"))
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	parsed, err := h.cvUC.Import(c.Request.Context(), userID, body.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV parsed", parsed)
}

// Revamp godoc
// @Summary      Get AI improvement suggestions for the master profile
// @Tags         cv
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /cv/revamp [post]
// @Security     BearerAuth
func (h *CVHandler) Revamp(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	suggestions, err := h.cvUC.Revamp(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Revamp suggestions", suggestions)
}
