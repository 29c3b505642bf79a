package service

import (
	"bytes"

	"github.com/phpdave11/gofpdf"
)

// FontStyle selects one of the three faces the form uses.
type FontStyle int

const (
	// FontCells is the fixed-pitch face of the character-grid fields;
	// monospace keeps the cell-centering math exact.
	FontCells FontStyle = iota
	// FontMark is the bold face of checkbox marks.
	FontMark
	// FontFree is the face of free-text fields.
	FontFree
)

// Canvas is the narrow drawing surface the form filler renders onto. One
// Canvas is one page; coordinates are PDF points from the bottom-left, like
// the coordinate table. Keeping the filler off the full PDF library type
// lets tests record draw calls instead of producing documents.
type Canvas interface {
	Text(x, y float64, text string, font FontStyle, size float64)
	Image(name string, data []byte, format string, box imageBox)
}

// pdfCanvas draws one page of a gofpdf document. gofpdf measures y from the
// top of the page, so every call flips the axis.
type pdfCanvas struct {
	doc  *gofpdf.Fpdf
	page int
}

func (p *pdfCanvas) Text(x, y float64, text string, font FontStyle, size float64) {
	p.doc.SetPage(p.page)

	switch font {
	case FontCells:
		p.doc.SetFont("Courier", "B", size)
	case FontMark:
		p.doc.SetFont("Helvetica", "B", size)
	default:
		p.doc.SetFont("Helvetica", "", size)
	}

	p.doc.Text(x, pageHeight-y, text)
}

func (p *pdfCanvas) Image(name string, data []byte, format string, box imageBox) {
	p.doc.SetPage(p.page)

	opts := gofpdf.ImageOptions{ImageType: format, ReadDpi: false}
	if p.doc.GetImageInfo(name) == nil {
		p.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	}
	p.doc.ImageOptions(name, box.x, pageHeight-box.y-box.h, box.w, box.h, false, opts, 0, "")
}
