package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/panmitra/form49a-service/client"
	"github.com/panmitra/form49a-service/dto"
	"github.com/panmitra/form49a-service/service"
)

// FormHandler serves rendered Form 49A documents.
type FormHandler struct {
	store       *client.StoreClient
	formService *service.FormService
}

func NewFormHandler(store *client.StoreClient, formService *service.FormService) *FormHandler {
	return &FormHandler{
		store:       store,
		formService: formService,
	}
}

// GenerateForm handles GET /applications/:id/form. A non-error response is
// "document produced, possibly with blank fields"; an error response means
// no document at all.
func (h *FormHandler) GenerateForm(c *gin.Context) {
	id := c.Param("id")
	log.Printf("Received form render request for application %s", id)

	app, err := h.store.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dto.ErrApplicationNotFound) {
			h.sendError(c, http.StatusNotFound, "Application not found", nil)
			return
		}
		h.sendError(c, http.StatusBadGateway, "Failed to fetch application record", err)
		return
	}

	if err := app.RenderReady(); err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Application record incomplete", err)
		return
	}

	// A failed document lookup only costs the photo and signature regions.
	docs, err := h.store.ListDocuments(c.Request.Context(), app.ID)
	if err != nil {
		log.Printf("Document lookup failed, rendering without images: %v", err)
		docs = nil
	}

	rendered, err := h.formService.Render(c.Request.Context(), app, docs)
	if err != nil {
		if errors.Is(err, dto.ErrTemplateUnavailable) {
			h.sendError(c, http.StatusBadGateway, "Form template unavailable", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to render form", err)
		return
	}

	log.Printf("Rendered form %s (%d bytes, %d warnings)",
		rendered.Filename, len(rendered.Bytes), len(rendered.Warnings))

	c.Header("Content-Disposition", `inline; filename="`+rendered.Filename+`"`)
	c.Header("X-Render-Warnings", strconv.Itoa(len(rendered.Warnings)))
	c.Data(http.StatusOK, "application/pdf", rendered.Bytes)
}

// sendError sends a structured error response
func (h *FormHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "FORM_RENDER_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
