package dto

import (
	"fmt"
	"mime/multipart"
	"strings"
)

// VerifyRequest carries one uploaded proof document for cross-checking
// against an application record.
type VerifyRequest struct {
	ApplicationID string
	File          *multipart.FileHeader
}

// Validate validates the verification request
func (r *VerifyRequest) Validate() error {
	if r.ApplicationID == "" {
		return fmt.Errorf("application_id is required")
	}
	if r.File == nil {
		return fmt.Errorf("file is required")
	}

	// Validate file extension
	filename := strings.ToLower(r.File.Filename)
	validExtensions := []string{".pdf", ".png", ".jpg", ".jpeg"}
	for _, ext := range validExtensions {
		if strings.HasSuffix(filename, ext) {
			return nil
		}
	}
	return fmt.Errorf("invalid file type. Supported: PDF, PNG, JPG")
}
