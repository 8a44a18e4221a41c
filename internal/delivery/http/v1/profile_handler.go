package v1

import (
	"net/http"
	"strconv"

	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	profiles := r.Group("/profiles")
	{
		profiles.GET("/me/full", handler.GetMasterProfile)
		profiles.PUT("/me", handler.UpdateBasicInfo)
		profiles.PUT("/me/cv-text", handler.SaveMasterCVText)

		profiles.POST("/me/experiences", handler.AddExperience)
		profiles.PUT("/me/experiences/:id", handler.UpdateExperience)
		profiles.DELETE("/me/experiences/:id", handler.DeleteExperience)

		profiles.POST("/me/projects", handler.AddProject)
		profiles.PUT("/me/projects/:id", handler.UpdateProject)
		profiles.DELETE("/me/projects/:id", handler.DeleteProject)

		profiles.POST("/me/references", handler.AddReference)
		profiles.DELETE("/me/references/:id", handler.DeleteReference)

		profiles.PUT("/me/matric", handler.UpsertMatric)

		profiles.POST("/me/skills", handler.AddSkill)
		profiles.PUT("/me/skills/:id", handler.UpdateSkill)
		profiles.DELETE("/me/skills/:id", handler.DeleteSkill)

		profiles.POST("/me/languages", handler.AddLanguage)
		profiles.DELETE("/me/languages/:id", handler.DeleteLanguage)
	}
}

// GetMasterProfile godoc
// @Summary      Get the full master profile
// @Description  Returns every profile section, canonicalized
// @Tags         profiles
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.MasterProfile}
// @Failure      404  {object}  response.Response
// @Router       /profiles/me/full [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMasterProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	master, err := h.profileUC.GetMasterProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Master profile", master)
}

// UpdateBasicInfo godoc
// @Summary      Update basic info
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  domain.Profile  true  "Basic info"
// @Success      200  {object}  response.Response
// @Router       /profiles/me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateBasicInfo(c *gin.Context) {
	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest("invalid profile payload"))
		return
	}
	profile.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpdateBasicInfo(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}

// SaveMasterCVText godoc
// @Summary      Save the pasted master CV text
// @Tags         profiles
// @Accept       json
// @Success      200  {object}  response.Response
// @Router       /profiles/me/cv-text [put]
// @Security     BearerAuth
func (h *ProfileHandler) SaveMasterCVText(c *gin.Context) {
	var body struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("cv text is required"))
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.SaveMasterCVText(c.Request.Context(), userID, body.Text); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV text saved", nil)
}

// AddExperience godoc
// @Summary      Add a work experience
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  domain.WorkExperience  true  "Experience"
// @Success      201  {object}  response.Response{data=domain.WorkExperience}
// @Router       /profiles/me/experiences [post]
// @Security     BearerAuth
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	var exp domain.WorkExperience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest("invalid experience payload"))
		return
	}
	exp.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddExperience(c.Request.Context(), &exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Experience added", exp)
}

func (h *ProfileHandler) UpdateExperience(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var exp domain.WorkExperience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest("invalid experience payload"))
		return
	}
	exp.ID = id
	exp.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpdateExperience(c.Request.Context(), &exp); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience updated", exp)
}

func (h *ProfileHandler) DeleteExperience(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.DeleteExperience(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Experience deleted", nil)
}

func (h *ProfileHandler) AddProject(c *gin.Context) {
	var project domain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.Error(apperror.BadRequest("invalid project payload"))
		return
	}
	project.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddProject(c.Request.Context(), &project); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project added", project)
}

func (h *ProfileHandler) UpdateProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var project domain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.Error(apperror.BadRequest("invalid project payload"))
		return
	}
	project.ID = id
	project.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpdateProject(c.Request.Context(), &project); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project updated", project)
}

func (h *ProfileHandler) DeleteProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.DeleteProject(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Project deleted", nil)
}

func (h *ProfileHandler) AddReference(c *gin.Context) {
	var ref domain.Reference
	if err := c.ShouldBindJSON(&ref); err != nil {
		c.Error(apperror.BadRequest("invalid reference payload"))
		return
	}
	ref.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddReference(c.Request.Context(), &ref); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Reference added", ref)
}

func (h *ProfileHandler) DeleteReference(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.DeleteReference(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference deleted", nil)
}

// UpsertMatric godoc
// @Summary      Save matric results
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        body  body  domain.MatricRecord  true  "Matric record"
// @Success      200  {object}  response.Response{data=domain.MatricRecord}
// @Router       /profiles/me/matric [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpsertMatric(c *gin.Context) {
	var record domain.MatricRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.Error(apperror.BadRequest("invalid matric payload"))
		return
	}
	record.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpsertMatric(c.Request.Context(), &record); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Matric results saved", record)
}

func (h *ProfileHandler) AddSkill(c *gin.Context) {
	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.Error(apperror.BadRequest("invalid skill payload"))
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddSkill(c.Request.Context(), userID, skill); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Skill added", skill)
}

func (h *ProfileHandler) UpdateSkill(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var skill domain.Skill
	if err := c.ShouldBindJSON(&skill); err != nil {
		c.Error(apperror.BadRequest("invalid skill payload"))
		return
	}
	skill.ID = id
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.UpdateSkill(c.Request.Context(), userID, skill); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill updated", skill)
}

// DeleteSkill accepts either a numeric id or, for legacy rows that were
// saved before ids existed, ?name=<skill name> with :id set to 0
func (h *ProfileHandler) DeleteSkill(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	name := c.Query("name")
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.DeleteSkill(c.Request.Context(), userID, id, name); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skill deleted", nil)
}

func (h *ProfileHandler) AddLanguage(c *gin.Context) {
	var lang domain.Language
	if err := c.ShouldBindJSON(&lang); err != nil {
		c.Error(apperror.BadRequest("invalid language payload"))
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.AddLanguage(c.Request.Context(), userID, lang); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Language added", lang)
}

func (h *ProfileHandler) DeleteLanguage(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	language := c.Query("language")
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.profileUC.DeleteLanguage(c.Request.Context(), userID, id, language); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Language deleted", nil)
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("invalid id")
	}
	return id, nil
}
