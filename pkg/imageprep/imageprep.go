// Package imageprep shrinks screenshots before they are sent for text extraction.
package imageprep

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/disintegration/imaging"
)

const (
	DefaultMaxDimension = 2000
	DefaultJPEGQuality  = 88

	MimeTypeJPEG = "image/jpeg"
)

// Options controls Prepare.
type Options struct {
	MaxDimension int
	JPEGQuality  int
}

// Image is an encoded image with its mime type.
type Image struct {
	Data     []byte
	MimeType string
}

// Prepare decodes data, applies EXIF orientation, scales it so neither side
// exceeds MaxDimension and re-encodes it as JPEG.
func Prepare(data []byte, opts Options) (Image, error) {
	if opts.MaxDimension <= 0 {
		opts.MaxDimension = DefaultMaxDimension
	}
	if opts.JPEGQuality <= 0 || opts.JPEGQuality > 100 {
		opts.JPEGQuality = DefaultJPEGQuality
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension {
		if bounds.Dx() >= bounds.Dy() {
			img = imaging.Resize(img, opts.MaxDimension, 0, imaging.Lanczos)
		} else {
			img = imaging.Resize(img, 0, opts.MaxDimension, imaging.Lanczos)
		}
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(opts.JPEGQuality)); err != nil {
		return Image{}, fmt.Errorf("failed to encode image: %w", err)
	}
	return Image{Data: buf.Bytes(), MimeType: MimeTypeJPEG}, nil
}

// DetectMimeType sniffs the content type of data, preferring declared when
// it is an image type.
func DetectMimeType(data []byte, declared string) string {
	if len(declared) > len("image/") && declared[:len("image/")] == "image/" {
		return declared
	}
	return http.DetectContentType(data)
}
