package document

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

// encodePNG renders a solid image of the given size for upload fixtures.
func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode fixture image: %v", err)
	}
	return buf.Bytes()
}

// decodeJPEGBounds decodes the base64 payload and returns the image size.
func decodeJPEGBounds(t *testing.T, data string) (int, int) {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		t.Fatalf("payload is not valid base64: %v", err)
	}
	img, format, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("payload is not a decodable image: %v", err)
	}
	if format != "jpeg" {
		t.Errorf("expected jpeg payload, got %s", format)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func assertDocumentCode(t *testing.T, err error, code domainerror.DocumentErrorCode) {
	t.Helper()

	var docErr *domainerror.DocumentError
	if !errors.As(err, &docErr) {
		t.Fatalf("expected *DocumentError, got %T: %v", err, err)
	}
	if docErr.Code != code {
		t.Errorf("expected code %s, got %s", code, docErr.Code)
	}
}

func TestPreprocess(t *testing.T) {
	t.Run("scales down a wide image preserving aspect ratio", func(t *testing.T) {
		doc, err := Preprocess(encodePNG(t, 2048, 1024), "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if doc.MediaType != MediaTypeJPEG {
			t.Errorf("expected media type %s, got %s", MediaTypeJPEG, doc.MediaType)
		}

		width, height := decodeJPEGBounds(t, doc.Data)
		if width != MaxImageDimension || height != MaxImageDimension/2 {
			t.Errorf("expected %dx%d, got %dx%d", MaxImageDimension, MaxImageDimension/2, width, height)
		}
	})

	t.Run("scales down a tall image preserving aspect ratio", func(t *testing.T) {
		doc, err := Preprocess(encodePNG(t, 512, 2048), "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		width, height := decodeJPEGBounds(t, doc.Data)
		if height != MaxImageDimension || width != MaxImageDimension/4 {
			t.Errorf("expected %dx%d, got %dx%d", MaxImageDimension/4, MaxImageDimension, width, height)
		}
	})

	t.Run("keeps small images at their original size", func(t *testing.T) {
		doc, err := Preprocess(encodePNG(t, 800, 600), "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		width, height := decodeJPEGBounds(t, doc.Data)
		if width != 800 || height != 600 {
			t.Errorf("expected 800x600, got %dx%d", width, height)
		}
	})

	t.Run("builds a data URL for the payload", func(t *testing.T) {
		doc, err := Preprocess(encodePNG(t, 10, 10), "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		prefix := "data:image/jpeg;base64,"
		if !strings.HasPrefix(doc.DataURL, prefix) {
			t.Fatalf("expected data URL prefix %q, got %q", prefix, doc.DataURL)
		}
		if doc.DataURL != prefix+doc.Data {
			t.Error("expected data URL to embed the base64 payload unchanged")
		}
	})

	t.Run("passes PDFs through byte-identical", func(t *testing.T) {
		pdf := []byte("%PDF-1.4 fake body")

		doc, err := Preprocess(pdf, MediaTypePDF)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if doc.MediaType != MediaTypePDF {
			t.Errorf("expected media type %s, got %s", MediaTypePDF, doc.MediaType)
		}

		raw, err := base64.StdEncoding.DecodeString(doc.Data)
		if err != nil {
			t.Fatalf("payload is not valid base64: %v", err)
		}
		if !bytes.Equal(raw, pdf) {
			t.Error("expected PDF bytes unchanged")
		}
	})

	t.Run("rejects unsupported media types", func(t *testing.T) {
		_, err := Preprocess([]byte("plain text"), "text/plain")
		assertDocumentCode(t, err, domainerror.ErrCodeUnsupportedDocumentFormat)
	})

	t.Run("rejects undecodable image data", func(t *testing.T) {
		_, err := Preprocess([]byte("not an image"), "image/png")
		assertDocumentCode(t, err, domainerror.ErrCodeDocumentDecodeFailed)
	})
}
