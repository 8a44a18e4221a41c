package v1

import (
	"fmt"
	"net/http"

	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TalentHandler struct {
	talentUC domain.TalentUsecase
}

func NewTalentHandler(r *gin.RouterGroup, talentUC domain.TalentUsecase) {
	handler := &TalentHandler{talentUC: talentUC}

	talent := r.Group("/talent")
	{
		talent.POST("/search", handler.Search)
		talent.GET("/filter-options", handler.FilterOptions)
		talent.POST("/export", handler.Export)

		talent.POST("/groups", handler.CreateGroup)
		talent.GET("/groups", handler.ListGroups)
		talent.DELETE("/groups/:id", handler.DeleteGroup)
		talent.POST("/groups/:id/members", handler.AddGroupMember)
		talent.DELETE("/groups/:id/members/:talentID", handler.RemoveGroupMember)
	}
}

// Search godoc
// @Summary      Search the talent pool
// @Description  Applies the filter selection and free-text search, AND-combined, with pagination
// @Tags         talent
// @Accept       json
// @Produce      json
// @Param        body  body  domain.TalentSearchRequest  true  "Search request"
// @Success      200  {object}  response.Response{data=domain.PaginatedResult[domain.TalentRecord]}
// @Router       /talent/search [post]
// @Security     BearerAuth
func (h *TalentHandler) Search(c *gin.Context) {
	var req domain.TalentSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("invalid search payload"))
		return
	}

	result, err := h.talentUC.Search(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Search results", result)
}

// FilterOptions godoc
// @Summary      Get search filter reference data
// @Tags         talent
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.TalentFilterOptions}
// @Router       /talent/filter-options [get]
// @Security     BearerAuth
func (h *TalentHandler) FilterOptions(c *gin.Context) {
	options, err := h.talentUC.FilterOptions(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Filter options", options)
}

// Export godoc
// @Summary      Export matching talent records
// @Description  Same filter pipeline as search; returns an xlsx or csv attachment
// @Tags         talent
// @Accept       json
// @Produce      application/octet-stream
// @Param        body  body  domain.TalentExportRequest  true  "Export request"
// @Success      200  {file}  binary
// @Router       /talent/export [post]
// @Security     BearerAuth
func (h *TalentHandler) Export(c *gin.Context) {
	var req domain.TalentExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("invalid export payload"))
		return
	}

	data, filename, err := h.talentUC.Export(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	if req.Format == "csv" {
		contentType = "text/csv"
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, data)
}

func (h *TalentHandler) CreateGroup(c *gin.Context) {
	var group domain.TalentGroup
	if err := c.ShouldBindJSON(&group); err != nil {
		c.Error(apperror.BadRequest("invalid group payload"))
		return
	}
	group.RecruiterID = c.GetString(string(domain.KeyUserID))

	if err := h.talentUC.CreateGroup(c.Request.Context(), &group); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Group created", group)
}

func (h *TalentHandler) ListGroups(c *gin.Context) {
	recruiterID := c.GetString(string(domain.KeyUserID))

	groups, err := h.talentUC.ListGroups(c.Request.Context(), recruiterID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Saved groups", groups)
}

func (h *TalentHandler) DeleteGroup(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	recruiterID := c.GetString(string(domain.KeyUserID))

	if err := h.talentUC.DeleteGroup(c.Request.Context(), recruiterID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Group deleted", nil)
}

func (h *TalentHandler) AddGroupMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var body struct {
		TalentID string `json:"talent_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("talent_id is required"))
		return
	}
	recruiterID := c.GetString(string(domain.KeyUserID))

	if err := h.talentUC.AddGroupMember(c.Request.Context(), recruiterID, id, body.TalentID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Member added", nil)
}

func (h *TalentHandler) RemoveGroupMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	recruiterID := c.GetString(string(domain.KeyUserID))
	talentID := c.Param("talentID")

	if err := h.talentUC.RemoveGroupMember(c.Request.Context(), recruiterID, id, talentID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Member removed", nil)
}
