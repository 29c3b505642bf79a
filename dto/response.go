package dto

import "errors"

// Fatal render errors. Anything else the renderer absorbs into warnings.
var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrTemplateUnavailable = errors.New("form template unavailable")
	ErrRecordIncomplete    = errors.New("application record incomplete")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// FieldWarning records a field that rendered blank or truncated. Warnings are
// never fatal; they exist so degraded renders stay observable.
type FieldWarning struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// TrackResponse is the payload behind the public tracking page.
type TrackResponse struct {
	ApplicationNo string            `json:"application_no"`
	Status        ApplicationStatus `json:"status"`
	ServiceType   ServiceType       `json:"service_type"`
	CreatedAt     string            `json:"created_at"`
	UpdatedAt     string            `json:"updated_at"`
}

// ProofExtract holds whatever could be read off an uploaded proof document.
type ProofExtract struct {
	Name         string `json:"name"`
	DOB          string `json:"dob"`
	Gender       string `json:"gender"`
	AadhaarLast4 string `json:"aadhaar_last4"`
	PAN          string `json:"pan"`
	Source       string `json:"source"` // "qr" or "ocr"

	// Confidence is the mean Tesseract word confidence (0-100) for OCR
	// extractions; zero for QR extractions.
	Confidence float64 `json:"confidence"`
}

// VerifyResult is the operator-facing cross-check of a proof document
// against the stored application record.
type VerifyResult struct {
	NameMatch      bool     `json:"name_match"`
	NameSimilarity float64  `json:"name_similarity"`
	DOBMatch       bool     `json:"dob_match"`
	AadhaarMatch   bool     `json:"aadhaar_match"`
	PANMatch       bool     `json:"pan_match"`
	OCRConfidence  float64  `json:"ocr_confidence"`
	Notes          []string `json:"notes"`
}

type VerifyResponse struct {
	ApplicationNo string       `json:"application_no"`
	Extracted     ProofExtract `json:"extracted"`
	Result        VerifyResult `json:"result"`
}
