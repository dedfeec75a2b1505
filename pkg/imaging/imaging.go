// Package imaging handles logo image processing: content-type sniffing,
// decoding, webp transcoding and thumbnail resizing.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/gabriel-vasile/mimetype"
	"github.com/nfnt/resize"
)

// Supported image content types
const (
	ContentTypeJPEG = "image/jpeg"
	ContentTypePNG  = "image/png"
	ContentTypeWebP = "image/webp"
)

// DetectContentType sniffs the content type from the byte content
// (magic-number detection), for uploads with no declared type.
func DetectContentType(data []byte) string {
	return mimetype.Detect(data).String()
}

// Supported reports whether the content type is accepted by the pipeline.
func Supported(contentType string) bool {
	switch contentType {
	case ContentTypeJPEG, ContentTypePNG, ContentTypeWebP:
		return true
	}
	return false
}

// Decode decodes image bytes of a supported content type.
func Decode(data []byte, contentType string) (image.Image, error) {
	if contentType == ContentTypeWebP {
		return webp.Decode(bytes.NewReader(data))
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", contentType, err)
	}
	return img, nil
}

// EncodeWebP encodes an image as webp at the given quality (0-100).
func EncodeWebP(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Thumbnail bounds the longest side of the image to the given size,
// preserving aspect ratio. Images already within the bound pass through.
func Thumbnail(img image.Image, bound int) image.Image {
	b := img.Bounds()
	if b.Dx() <= bound && b.Dy() <= bound {
		return img
	}
	return resize.Thumbnail(uint(bound), uint(bound), img, resize.Lanczos3)
}
