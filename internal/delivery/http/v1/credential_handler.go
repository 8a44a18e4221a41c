package v1

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cv-match-backend/internal/delivery/http/response"
	"cv-match-backend/internal/domain"
	"cv-match-backend/pkg/apperror"
	"cv-match-backend/pkg/audit"
	"cv-match-backend/pkg/logger"
	"cv-match-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

const (
	maxDocumentSize   = 10 << 20 // 10 MB
	imageMaxDimension = 2000
	imageQuality      = 80
)

var allowedDocumentTypes = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/png":       "png",
}

type CredentialHandler struct {
	credentialUC domain.CredentialUsecase
	storage      *storage.Client
}

func NewCredentialHandler(r *gin.RouterGroup, credentialUC domain.CredentialUsecase, storageClient *storage.Client, uploadLimiter gin.HandlerFunc) {
	handler := &CredentialHandler{credentialUC: credentialUC, storage: storageClient}

	credentials := r.Group("/credentials")
	{
		credentials.GET("", handler.List)
		credentials.POST("", handler.Add)
		credentials.PUT("/:id", handler.Update)
		credentials.DELETE("/:id", handler.Delete)
		credentials.POST("/:id/document", uploadLimiter, handler.UploadDocument)
	}
}

// List godoc
// @Summary      List credentials
// @Description  Returns the caller's education, certification and high-school records
// @Tags         credentials
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Credential}
// @Router       /credentials [get]
// @Security     BearerAuth
func (h *CredentialHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	creds, err := h.credentialUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Credentials", creds)
}

func (h *CredentialHandler) Add(c *gin.Context) {
	var cred domain.Credential
	if err := c.ShouldBindJSON(&cred); err != nil {
		c.Error(apperror.BadRequest("invalid credential payload"))
		return
	}
	cred.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.credentialUC.Add(c.Request.Context(), &cred); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Credential added", cred)
}

func (h *CredentialHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var cred domain.Credential
	if err := c.ShouldBindJSON(&cred); err != nil {
		c.Error(apperror.BadRequest("invalid credential payload"))
		return
	}
	cred.ID = id
	cred.UserID = c.GetString(string(domain.KeyUserID))

	if err := h.credentialUC.Update(c.Request.Context(), &cred); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Credential updated", cred)
}

func (h *CredentialHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.credentialUC.Delete(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Credential deleted", nil)
}

// UploadDocument godoc
// @Summary      Upload a proof document for a credential
// @Description  Accepts a PDF or image; images are compressed before storage. Attaching the document marks the credential verified.
// @Tags         credentials
// @Accept       multipart/form-data
// @Produce      json
// @Param        id        path      string  true  "Credential ID"
// @Param        document  formData  file    true  "Document file (PDF, JPEG or PNG)"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /credentials/{id}/document [post]
// @Security     BearerAuth
func (h *CredentialHandler) UploadDocument(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}
	userID := c.GetString(string(domain.KeyUserID))

	fileHeader, err := c.FormFile("document")
	if err != nil {
		c.Error(apperror.BadRequest("document file is required"))
		return
	}
	if fileHeader.Size > maxDocumentSize {
		c.Error(apperror.BadRequest("document exceeds the 10MB limit"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	// Sniff the real content type; the client-supplied header is not trusted
	contentType := http.DetectContentType(data)
	ext, ok := allowedDocumentTypes[contentType]
	if !ok {
		c.Error(apperror.BadRequest("only PDF, JPEG and PNG documents are accepted"))
		return
	}

	if strings.HasPrefix(contentType, "image/") {
		compressed, err := storage.CompressImage(data, imageMaxDimension, imageQuality)
		if err != nil {
			logger.Log.Warn("image compression failed, storing original", "error", err)
		} else {
			data = compressed
			contentType = "image/jpeg"
			ext = "jpg"
		}
	}

	key := fmt.Sprintf("credentials/%s/%d_%d_%s.%s",
		userID, id, time.Now().Unix(), storage.SanitizeFilename(fileHeader.Filename), ext)

	url, err := h.storage.Upload(c.Request.Context(), key, data, contentType)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if err := h.credentialUC.AttachDocument(c.Request.Context(), userID, id, url); err != nil {
		c.Error(err)
		return
	}

	requestID, _ := c.Get("RequestID")
	reqIDStr, _ := requestID.(string)
	audit.Default().Log(audit.Event{
		Event:     audit.EventDocumentUploaded,
		UserID:    userID,
		RequestID: reqIDStr,
		Details:   map[string]interface{}{"credential_id": id, "content_type": contentType},
	})

	response.Success(c, http.StatusOK, "Document uploaded", gin.H{"document_url": url})
}
