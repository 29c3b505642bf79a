package handler

import (
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/panmitra/form49a-service/client"
	"github.com/panmitra/form49a-service/dto"
	"github.com/panmitra/form49a-service/service"
)

// VerifyHandler cross-checks uploaded proof documents against the
// application record they were submitted for.
type VerifyHandler struct {
	store         *client.StoreClient
	verifyService *service.VerifyService
}

func NewVerifyHandler(store *client.StoreClient, verifyService *service.VerifyService) *VerifyHandler {
	return &VerifyHandler{
		store:         store,
		verifyService: verifyService,
	}
}

// VerifyDocument handles the POST /documents/verify endpoint
func (h *VerifyHandler) VerifyDocument(c *gin.Context) {
	log.Println("Received document verification request")

	file, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "A proof document file is required", err)
		return
	}

	req := dto.VerifyRequest{
		ApplicationID: c.PostForm("application_id"),
		File:          file,
	}
	if err := req.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = inferMimeType(file.Filename)
	}
	if !isValidMimeType(mimeType) {
		h.sendError(c, http.StatusBadRequest, "Invalid file type. Supported: PDF, PNG, JPEG", nil)
		return
	}

	app, err := h.store.GetApplication(c.Request.Context(), req.ApplicationID)
	if err != nil {
		if errors.Is(err, dto.ErrApplicationNotFound) {
			h.sendError(c, http.StatusNotFound, "Application not found", nil)
			return
		}
		h.sendError(c, http.StatusBadGateway, "Failed to fetch application record", err)
		return
	}

	reader, err := file.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer reader.Close()

	fileData, err := io.ReadAll(reader)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read file data", err)
		return
	}

	password := c.PostForm("password")

	extract, err := h.verifyService.ExtractProof(c.Request.Context(), fileData, mimeType, password)
	if err != nil {
		if strings.Contains(err.Error(), "decrypt") {
			h.sendError(c, http.StatusBadRequest, "Failed to decrypt PDF. Check password.", err)
			return
		}
		h.sendError(c, http.StatusUnprocessableEntity, "Could not extract details from the proof document", err)
		return
	}

	result := h.verifyService.CrossCheck(extract, app)

	log.Printf("Verification completed for application %s (source: %s)", app.ApplicationNo, extract.Source)
	c.JSON(http.StatusOK, dto.VerifyResponse{
		ApplicationNo: app.ApplicationNo,
		Extracted:     *extract,
		Result:        result,
	})
}

// sendError sends a structured error response
func (h *VerifyHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "DOCUMENT_VERIFICATION_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}

// isValidMimeType checks if the MIME type is supported
func isValidMimeType(mimeType string) bool {
	validTypes := []string{
		"application/pdf",
		"image/png",
		"image/jpeg",
		"image/jpg",
	}

	mimeType = strings.ToLower(mimeType)
	for _, valid := range validTypes {
		if strings.Contains(mimeType, valid) {
			return true
		}
	}
	return false
}

// inferMimeType infers MIME type from file extension
func inferMimeType(filename string) string {
	lower := strings.ToLower(filename)
	if strings.HasSuffix(lower, ".pdf") {
		return "application/pdf"
	} else if strings.HasSuffix(lower, ".png") {
		return "image/png"
	} else if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "image/jpeg"
	}
	return ""
}
