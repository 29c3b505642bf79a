package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"

	"github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"

	"github.com/panmitra/form49a-service/dto"
)

// FormService renders applicant records onto the Form 49A template. It holds
// no per-render state: every Render call builds its own document from the
// shared immutable template bytes.
type FormService struct {
	fetcher      ContentFetcher
	pdfProcessor PDFProcessor
	templateURL  string
}

func NewFormService(fetcher ContentFetcher, pdfProcessor PDFProcessor, templateURL string) *FormService {
	return &FormService{
		fetcher:      fetcher,
		pdfProcessor: pdfProcessor,
		templateURL:  templateURL,
	}
}

// RenderedForm is the outcome of a successful render. Warnings list the
// fields that came out blank or truncated; they never block the document.
type RenderedForm struct {
	Bytes    []byte
	Filename string
	Warnings []dto.FieldWarning
}

// Render fills the two-page form for one application. Template failures are
// fatal; missing or malformed record fields degrade to blank fields, and
// image failures degrade to blank regions.
func (s *FormService) Render(ctx context.Context, app *dto.Application, docs []dto.ApplicationDocument) (*RenderedForm, error) {
	tpl, err := s.loadTemplate(ctx)
	if err != nil {
		return nil, err
	}

	doc := gofpdf.New("P", "pt", "A4", "")
	importer := gofpdi.NewImporter()

	// Page 1 always comes from the template.
	rs1 := io.ReadSeeker(bytes.NewReader(tpl.bytes))
	tpl1 := importer.ImportPageFromStream(doc, &rs1, 1, "/MediaBox")
	doc.AddPage()
	importer.UseImportedTemplate(doc, tpl1, 0, 0, pageWidth, pageHeight)

	// Page 2 comes from the template when it has one, otherwise a blank
	// page of the same size is synthesized.
	doc.AddPage()
	if tpl.pageCount > 1 {
		rs2 := io.ReadSeeker(bytes.NewReader(tpl.bytes))
		tpl2 := importer.ImportPageFromStream(doc, &rs2, 2, "/MediaBox")
		importer.UseImportedTemplate(doc, tpl2, 0, 0, pageWidth, pageHeight)
	}

	page1 := &pdfCanvas{doc: doc, page: 1}
	page2 := &pdfCanvas{doc: doc, page: 2}

	warnings := fillPage1(page1, app)
	warnings = append(warnings, fillPage2(page2, app)...)

	s.compositeImages(ctx, page1, page2, docs)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to serialize form: %w", err)
	}

	if len(warnings) > 0 {
		log.Printf("Form %s rendered with %d field warnings", app.ApplicationNo, len(warnings))
	}

	return &RenderedForm{
		Bytes:    buf.Bytes(),
		Filename: app.ApplicationNo + "_form49a.pdf",
		Warnings: warnings,
	}, nil
}
