package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/panmitra/form49a-service/client"
	"github.com/panmitra/form49a-service/dto"
)

// TrackHandler exposes application progress by acknowledgement number.
type TrackHandler struct {
	store *client.StoreClient
}

func NewTrackHandler(store *client.StoreClient) *TrackHandler {
	return &TrackHandler{store: store}
}

// TrackApplication handles GET /applications/track/:no
func (h *TrackHandler) TrackApplication(c *gin.Context) {
	applicationNo := c.Param("no")

	app, err := h.store.GetApplicationByNumber(c.Request.Context(), applicationNo)
	if err != nil {
		if errors.Is(err, dto.ErrApplicationNotFound) {
			h.sendError(c, http.StatusNotFound, "Application not found", nil)
			return
		}
		h.sendError(c, http.StatusBadGateway, "Failed to fetch application record", err)
		return
	}

	c.JSON(http.StatusOK, dto.TrackResponse{
		ApplicationNo: app.ApplicationNo,
		Status:        app.Status,
		ServiceType:   app.ServiceType,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	})
}

// sendError sends a structured error response
func (h *TrackHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "TRACK_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
