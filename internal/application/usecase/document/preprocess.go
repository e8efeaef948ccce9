// Package document contains document preprocessing and extraction use cases.
package document

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	"strings"

	// Registered decoders for the supported upload formats.
	_ "image/gif"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	domainerror "github.com/finanza-tracker/backend/internal/domain/error"
)

const (
	// MaxImageDimension caps the larger side of an uploaded image before it
	// is sent to the extraction service. 1024px is enough for OCR and keeps
	// the payload small.
	MaxImageDimension = 1024

	// JPEGQuality is the fixed re-encode quality for uploaded images.
	JPEGQuality = 70

	// MediaTypePDF is the only non-image media type accepted for extraction.
	MediaTypePDF = "application/pdf"

	// MediaTypeJPEG is the media type every processed image is normalized to.
	MediaTypeJPEG = "image/jpeg"
)

// PreprocessedDocument is a document payload ready for the extraction service.
type PreprocessedDocument struct {
	// Data is the base64 payload without the data-URL prefix.
	Data string
	// MediaType is image/jpeg for images and application/pdf for PDFs.
	MediaType string
	// DataURL is the self-describing form: data:<media type>;base64,<data>.
	DataURL string
}

// Preprocess prepares a raw uploaded file for the extraction service.
//
// Images are decoded, scaled down so the larger dimension does not exceed
// MaxImageDimension (preserving aspect ratio; smaller images are left at
// their original size), and re-encoded as JPEG. PDFs pass through
// byte-identical. Any other media type is rejected before any network call.
func Preprocess(data []byte, mediaType string) (*PreprocessedDocument, error) {
	switch {
	case mediaType == MediaTypePDF:
		return encode(data, MediaTypePDF), nil

	case strings.HasPrefix(mediaType, "image/"):
		processed, err := processImage(data)
		if err != nil {
			return nil, err
		}
		return encode(processed, MediaTypeJPEG), nil

	default:
		return nil, domainerror.NewDocumentError(
			domainerror.ErrCodeUnsupportedDocumentFormat,
			fmt.Sprintf("media type %q is not supported", mediaType),
			domainerror.ErrUnsupportedDocumentFormat,
		)
	}
}

// processImage decodes, rescales and re-encodes the image as JPEG.
func processImage(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domainerror.NewDocumentError(
			domainerror.ErrCodeDocumentDecodeFailed,
			"could not decode image",
			err,
		)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if targetW, targetH, needsScale := scaledDimensions(width, height); needsScale {
		dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, domainerror.NewDocumentError(
			domainerror.ErrCodeDocumentDecodeFailed,
			"could not encode image",
			err,
		)
	}

	return buf.Bytes(), nil
}

// scaledDimensions returns the target size for an image so that its larger
// dimension equals MaxImageDimension, preserving aspect ratio. Images already
// within bounds are reported as not needing a scale.
func scaledDimensions(width, height int) (int, int, bool) {
	larger := width
	if height > width {
		larger = height
	}
	if larger <= MaxImageDimension {
		return width, height, false
	}

	ratio := float64(MaxImageDimension) / float64(larger)
	targetW := int(float64(width)*ratio + 0.5)
	targetH := int(float64(height)*ratio + 0.5)
	if targetW < 1 {
		targetW = 1
	}
	if targetH < 1 {
		targetH = 1
	}
	return targetW, targetH, true
}

// encode wraps the payload into its base64 and data-URL forms.
func encode(data []byte, mediaType string) *PreprocessedDocument {
	encoded := base64.StdEncoding.EncodeToString(data)
	return &PreprocessedDocument{
		Data:      encoded,
		MediaType: mediaType,
		DataURL:   "data:" + mediaType + ";base64," + encoded,
	}
}
