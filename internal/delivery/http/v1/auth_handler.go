package v1

import (
	"net/http"

	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(r *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &AuthHandler{authUC: authUC}

	auth := r.Group("/auth")
	{
		auth.GET("/me", handler.Me)
		auth.PUT("/users/:id/role", handler.AssignRole)
	}
}

// Me godoc
// @Summary      Get current user
// @Description  Returns the authenticated user with their database role
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Current user", user)
}

// AssignRole godoc
// @Summary      Assign a role to a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "User ID"
// @Param        body  body  object{role=string}  true  "Role assignment"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /auth/users/{id}/role [put]
// @Security     BearerAuth
func (h *AuthHandler) AssignRole(c *gin.Context) {
	if c.GetString(string(domain.KeyUserRole)) != domain.RoleAdmin {
		c.Error(apperror.Forbidden("only admins can assign roles"))
		return
	}

	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("role is required"))
		return
	}

	if err := h.authUC.AssignRole(c.Request.Context(), c.Param("id"), body.Role); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Role updated", nil)
}
