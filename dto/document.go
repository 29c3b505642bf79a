package dto

// ApplicationDocument mirrors one row of the application_documents table.
// DocumentType is a free tag assigned at upload time ("photo", "signature",
// "aadhaar", ...); matching is done by case-insensitive substring.
type ApplicationDocument struct {
	ID            string `json:"id"`
	ApplicationID string `json:"application_id"`
	DocumentType  string `json:"document_type"`
	FileName      string `json:"file_name"`
	FileURL       string `json:"file_url"`
	FileSize      int64  `json:"file_size"`
	CreatedAt     string `json:"created_at"`
}
