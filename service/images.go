package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log"
	"strings"

	"github.com/panmitra/form49a-service/dto"
)

// ContentFetcher retrieves remote bytes (template asset, uploaded images)
// and reports the content type.
type ContentFetcher interface {
	Fetch(ctx context.Context, url string) (data []byte, contentType string, err error)
}

// findDocument picks the first uploaded document whose type tag contains tag,
// case-insensitively.
func findDocument(docs []dto.ApplicationDocument, tag string) *dto.ApplicationDocument {
	for i := range docs {
		if strings.Contains(strings.ToLower(docs[i].DocumentType), tag) {
			return &docs[i]
		}
	}
	return nil
}

// decodeUpload decodes uploaded image bytes. Content declared as PNG is
// decoded as PNG; everything else is attempted as JPEG first.
func decodeUpload(data []byte, contentType string) (image.Image, error) {
	if strings.Contains(strings.ToLower(contentType), "png") {
		return png.Decode(bytes.NewReader(data))
	}
	if img, err := jpeg.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// fetchImage fetches and decodes one uploaded image, then re-encodes it to
// baseline PNG so a malformed upload can never corrupt the document being
// assembled.
func (s *FormService) fetchImage(ctx context.Context, url string) ([]byte, error) {
	data, contentType, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	img, err := decodeUpload(data, contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("failed to re-encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// compositeImages pastes the photograph into both page-1 boxes and the
// signature into its page-2 box. Each image failure is recoverable: it is
// logged, that region stays blank, and the render continues.
func (s *FormService) compositeImages(ctx context.Context, page1, page2 Canvas, docs []dto.ApplicationDocument) {
	if photo := findDocument(docs, "photo"); photo != nil {
		if data, err := s.fetchImage(ctx, photo.FileURL); err != nil {
			log.Printf("Photo skipped, leaving regions blank: %v", err)
		} else {
			page1.Image("photo", data, "PNG", page1Coords.PhotoLeft)
			page1.Image("photo", data, "PNG", page1Coords.PhotoRight)
		}
	}

	if sig := findDocument(docs, "signature"); sig != nil {
		if data, err := s.fetchImage(ctx, sig.FileURL); err != nil {
			log.Printf("Signature skipped, leaving region blank: %v", err)
		} else {
			page2.Image("signature", data, "PNG", page2Coords.Signature)
		}
	}
}
