package handler

import (
	"bytes"
	"errors"
	"image/png"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/panmitra/form49a-service/client"
	"github.com/panmitra/form49a-service/dto"
)

const ackQRSize = 256

// AckHandler issues acknowledgement QR codes that resolve back to the
// tracking endpoint. The code carries only the acknowledgement number.
type AckHandler struct {
	store *client.StoreClient
}

func NewAckHandler(store *client.StoreClient) *AckHandler {
	return &AckHandler{store: store}
}

// Acknowledgement handles GET /applications/:id/acknowledgement
func (h *AckHandler) Acknowledgement(c *gin.Context) {
	id := c.Param("id")

	app, err := h.store.GetApplication(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, dto.ErrApplicationNotFound) {
			h.sendError(c, http.StatusNotFound, "Application not found", nil)
			return
		}
		h.sendError(c, http.StatusBadGateway, "Failed to fetch application record", err)
		return
	}
	if app.ApplicationNo == "" {
		h.sendError(c, http.StatusUnprocessableEntity, "Application has no acknowledgement number yet", nil)
		return
	}

	writer := qrcode.NewQRCodeWriter()
	matrix, err := writer.Encode(app.ApplicationNo, gozxing.BarcodeFormat_QR_CODE, ackQRSize, ackQRSize, nil)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to encode acknowledgement code", err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, matrix); err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to encode acknowledgement image", err)
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+app.ApplicationNo+`_ack.png"`)
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

// sendError sends a structured error response
func (h *AckHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ACKNOWLEDGEMENT_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
