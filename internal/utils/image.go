package utils

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

var ErrUnsupportedImageFormat = errors.New("unsupported image format")

// IsAllowedImageExt accepts the formats the upload endpoint stores.
func IsAllowedImageExt(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg", ".png":
		return true
	}
	return false
}

func decodeImage(r io.Reader, filename string) (image.Image, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Decode(r)
	case ".png":
		return png.Decode(r)
	}
	return nil, ErrUnsupportedImageFormat
}

// MakeThumbnail decodes the image and scales it down to fit within
// maxWidth x maxHeight, preserving aspect ratio. Images already inside the
// bounds are re-encoded unchanged. The result is always JPEG.
func MakeThumbnail(r io.Reader, filename string, maxWidth, maxHeight uint) ([]byte, error) {
	img, err := decodeImage(r, filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	width := uint(bounds.Dx())
	height := uint(bounds.Dy())

	if width > maxWidth || height > maxHeight {
		widthRatio := float64(maxWidth) / float64(width)
		heightRatio := float64(maxHeight) / float64(height)

		var newWidth, newHeight uint
		if widthRatio < heightRatio {
			newWidth = maxWidth
			newHeight = uint(float64(height) * widthRatio)
		} else {
			newWidth = uint(float64(width) * heightRatio)
			newHeight = maxHeight
		}

		img = resize.Resize(newWidth, newHeight, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
