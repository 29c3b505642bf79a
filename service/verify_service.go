package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"

	"github.com/panmitra/form49a-service/client"
	"github.com/panmitra/form49a-service/dto"
	"github.com/panmitra/form49a-service/utils"
)

// VerifyService extracts identity data from uploaded proof documents and
// cross-checks it against the stored application record. Operators use it to
// review an application before advancing its status.
type VerifyService struct {
	tesseractClient *client.TesseractClient
	pdfProcessor    PDFProcessor
}

func NewVerifyService(tesseractClient *client.TesseractClient, pdfProcessor PDFProcessor) *VerifyService {
	return &VerifyService{
		tesseractClient: tesseractClient,
		pdfProcessor:    pdfProcessor,
	}
}

// ExtractProof reads whatever identity data the uploaded file carries.
// Aadhaar letters are tried QR-first; anything else falls back to OCR.
func (s *VerifyService) ExtractProof(ctx context.Context, fileData []byte, mimeType, password string) (*dto.ProofExtract, error) {
	var images []image.Image
	var pdfText string

	if strings.Contains(mimeType, "pdf") {
		log.Println("Processing PDF proof document")

		extracted, err := s.pdfProcessor.ExtractImages(fileData, password)
		if err != nil {
			log.Printf("PDF image extraction failed: %v", err)
		}
		images = extracted

		// Typed PDFs (e-Aadhaar, digital statements) carry a text layer.
		if text, err := s.pdfProcessor.ExtractText(fileData, password); err == nil {
			pdfText = text
		}

		if len(images) == 0 && pdfText == "" {
			return nil, fmt.Errorf("could not read anything from PDF proof")
		}
	} else {
		img, err := decodeUpload(fileData, mimeType)
		if err != nil {
			return nil, fmt.Errorf("failed to decode image: %w", err)
		}
		images = []image.Image{img}
	}

	// QR first: the Aadhaar letter QR is authoritative when present.
	for i, img := range images {
		if qr, err := s.extractFromQR(img); err == nil {
			log.Printf("QR extraction succeeded on page %d", i+1)
			return qr, nil
		}
	}

	// OCR fallback across all pages, keeping the mean word confidence so
	// operators can spot unreadable uploads.
	var combined strings.Builder
	combined.WriteString(pdfText)
	var confTotal float64
	var confPages int
	for i, img := range images {
		pageText, pageConf, err := s.ocrImage(img)
		if err != nil {
			log.Printf("OCR failed for page %d: %v", i+1, err)
			continue
		}
		combined.WriteString("\n")
		combined.WriteString(pageText)
		confTotal += pageConf
		confPages++
	}

	fullText := combined.String()
	result := utils.ParseAadhaarText(fullText)
	if confPages > 0 {
		result.Confidence = confTotal / float64(confPages)
	}

	// A PAN card proof has no Aadhaar layout; merge what the PAN parser sees.
	panParsed := utils.ParsePANText(fullText)
	result.PAN = panParsed.PAN
	if result.Name == "" {
		result.Name = panParsed.Name
	}
	if result.DOB == "" {
		result.DOB = panParsed.DOB
	}

	if result.Name == "" && result.AadhaarLast4 == "" && result.PAN == "" {
		return nil, fmt.Errorf("could not extract meaningful identity data from proof document")
	}
	return &result, nil
}

// extractFromQR attempts to decode the UIDAI QR code on an Aadhaar letter.
func (s *VerifyService) extractFromQR(img image.Image) (*dto.ProofExtract, error) {
	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	qrReader := qrcode.NewQRCodeReader()
	result, err := qrReader.Decode(bmp, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decode QR code: %w", err)
	}

	var qrData dto.AadhaarQRData
	if err := xml.Unmarshal([]byte(result.GetText()), &qrData); err != nil {
		return nil, fmt.Errorf("failed to parse QR XML data: %w", err)
	}

	return &dto.ProofExtract{
		Name:         qrData.Name,
		DOB:          qrData.GetDOB(),
		Gender:       qrData.Gender,
		AadhaarLast4: qrData.GetLast4Digits(),
		Source:       "qr",
	}, nil
}

func (s *VerifyService) ocrImage(img image.Image) (string, float64, error) {
	tempFile, err := os.CreateTemp("", "proof-ocr-*.png")
	if err != nil {
		return "", 0, fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if err := png.Encode(tempFile, img); err != nil {
		tempFile.Close()
		return "", 0, fmt.Errorf("failed to encode image to PNG: %w", err)
	}
	tempFile.Close()

	return s.tesseractClient.ExtractTextAndConfidence(tempFile.Name())
}

// CrossCheck compares extracted proof data with the application record.
func (s *VerifyService) CrossCheck(extract *dto.ProofExtract, app *dto.Application) dto.VerifyResult {
	result := dto.VerifyResult{
		NameMatch:      utils.CompareNames(extract.Name, app.FullName),
		NameSimilarity: utils.NameSimilarity(extract.Name, app.FullName),
		OCRConfidence:  extract.Confidence,
	}

	if !result.NameMatch {
		result.Notes = append(result.Notes,
			fmt.Sprintf("proof name %q does not match record name %q", extract.Name, app.FullName))
	}

	result.DOBMatch = sameDOB(extract.DOB, app.DOB)
	if !result.DOBMatch && extract.DOB != "" {
		result.Notes = append(result.Notes,
			fmt.Sprintf("proof DOB %q does not match record DOB %q", extract.DOB, app.DOB))
	}

	if extract.AadhaarLast4 != "" {
		recordNumber := utils.NormalizeAadhaar(app.AadhaarNumber)
		result.AadhaarMatch = len(recordNumber) >= 4 &&
			recordNumber[len(recordNumber)-4:] == extract.AadhaarLast4
		if !result.AadhaarMatch {
			result.Notes = append(result.Notes, "Aadhaar last-4 mismatch")
		}
	}

	if extract.PAN != "" && app.PANNumber != "" {
		result.PANMatch = strings.EqualFold(extract.PAN, app.PANNumber)
		if !result.PANMatch {
			result.Notes = append(result.Notes, "PAN mismatch")
		}
	}

	return result
}

// sameDOB compares a proof-document date (DD/MM/YYYY or bare year) with the
// record's ISO date.
func sameDOB(proofDOB, recordDOB string) bool {
	if proofDOB == "" || recordDOB == "" {
		return false
	}

	day, month, year, ok := utils.DecomposeISODate(recordDOB)
	if !ok {
		return false
	}

	normalized := strings.ReplaceAll(proofDOB, "-", "/")
	if normalized == day+"/"+month+"/"+year {
		return true
	}
	// Some Aadhaar letters only carry the year of birth.
	return proofDOB == year
}
