package v1

import (
	"io"
	"net/http"
	"strconv"

	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const maxAudioSize = 25 << 20 // 25 MB

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
}

func NewInterviewHandler(r *gin.RouterGroup, interviewUC domain.InterviewUsecase, aiLimiter gin.HandlerFunc) {
	handler := &InterviewHandler{interviewUC: interviewUC}

	interviews := r.Group("/interviews")
	{
		interviews.POST("/questions", aiLimiter, handler.StartSession)
		interviews.POST("/answers", aiLimiter, handler.AnalyzeAnswer)
		interviews.GET("/:id", handler.GetSession)
	}
}

// StartSession godoc
// @Summary      Start an interview practice session
// @Description  Generates practice questions for a target role
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        body  body  object{role=string}  true  "Target role"
// @Success      201  {object}  response.Response{data=domain.InterviewSession}
// @Router       /interviews/questions [post]
// @Security     BearerAuth
func (h *InterviewHandler) StartSession(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.Error(apperror.BadRequest("role is required"))
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	session, err := h.interviewUC.StartSession(c.Request.Context(), userID, body.Role)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Interview session started", session)
}

// AnalyzeAnswer godoc
// @Summary      Submit a recorded answer for analysis
// @Tags         interviews
// @Accept       multipart/form-data
// @Produce      json
// @Param        session_id  formData  string  true  "Session ID"
// @Param        question    formData  string  true  "Question being answered"
// @Param        audio       formData  file    true  "Recorded answer"
// @Success      200  {object}  response.Response{data=domain.InterviewAnswer}
// @Router       /interviews/answers [post]
// @Security     BearerAuth
func (h *InterviewHandler) AnalyzeAnswer(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	sessionID, err := strconv.ParseInt(c.PostForm("session_id"), 10, 64)
	if err != nil || sessionID <= 0 {
		c.Error(apperror.BadRequest("invalid session id"))
		return
	}
	question := c.PostForm("question")
	if question == "" {
		c.Error(apperror.BadRequest("question is required"))
		return
	}

	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.Error(apperror.BadRequest("audio recording is required"))
		return
	}
	if fileHeader.Size > maxAudioSize {
		c.Error(apperror.BadRequest("audio exceeds the 25MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	answer, err := h.interviewUC.AnalyzeAnswer(c.Request.Context(), userID, sessionID, question, audio, contentType)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Answer analyzed", answer)
}

// GetSession godoc
// @Summary      Get an interview session with its analyzed answers
// @Tags         interviews
// @Produce      json
// @Param        id  path  string  true  "Session ID"
// @Success      200  {object}  response.Response
// @Router       /interviews/{id} [get]
// @Security     BearerAuth
func (h *InterviewHandler) GetSession(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	session, answers, err := h.interviewUC.GetSession(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview session", gin.H{
		"session": session,
		"answers": answers,
	})
}
