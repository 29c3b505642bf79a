package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/panmitra/form49a-service/dto"
)

type templateInfo struct {
	bytes     []byte
	pageCount int
}

// loadTemplate fetches and validates the blank form asset. Any failure here
// is fatal for the render: without the template there is no page to draw on.
func (s *FormService) loadTemplate(ctx context.Context) (*templateInfo, error) {
	data, _, err := s.fetcher.Fetch(ctx, s.templateURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrTemplateUnavailable, err)
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pdfCtx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("%w: unparseable template: %v", dto.ErrTemplateUnavailable, err)
	}
	if err := pdfCtx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("%w: unreadable page tree: %v", dto.ErrTemplateUnavailable, err)
	}
	if pdfCtx.PageCount < 1 {
		return nil, fmt.Errorf("%w: template has no pages", dto.ErrTemplateUnavailable)
	}

	// The coordinate table is tied to one template revision. A missing
	// marker means someone swapped the asset; the render still proceeds
	// because the marker check cannot distinguish revision drift from a
	// scanned template with no text layer.
	if text, err := s.pdfProcessor.ExtractText(data, ""); err != nil {
		log.Printf("Template revision check skipped: %v", err)
	} else if !strings.Contains(text, revisionMarker) {
		log.Printf("Template does not look like revision %s; coordinates may be off", TemplateRevision)
	}

	return &templateInfo{bytes: data, pageCount: pdfCtx.PageCount}, nil
}
