package dto

import "encoding/xml"

// AadhaarQRData represents the XML payload of the Aadhaar letter QR code
// (UIDAI PrintLetterBarcodeData format).
type AadhaarQRData struct {
	XMLName     xml.Name `xml:"PrintLetterBarcodeData"`
	UID         string   `xml:"uid,attr"`
	Name        string   `xml:"name,attr"`
	Gender      string   `xml:"gender,attr"`
	YearOfBirth string   `xml:"yob,attr"`
	DateOfBirth string   `xml:"dob,attr"`
}

// GetDOB returns the date of birth, falling back to the year of birth when
// the letter only carries yob.
func (q *AadhaarQRData) GetDOB() string {
	if q.DateOfBirth != "" {
		return q.DateOfBirth
	}
	return q.YearOfBirth
}

// GetLast4Digits returns the last 4 digits of the Aadhaar number.
func (q *AadhaarQRData) GetLast4Digits() string {
	if len(q.UID) >= 4 {
		return q.UID[len(q.UID)-4:]
	}
	return q.UID
}
