package services

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	appErrors "kemisemail/internal/errors"
	"kemisemail/internal/models"
)

const (
	MinImageWidth = 200
	MaxImageWidth = 800
	MinQuality    = 20
	MaxQuality    = 90

	// Email clients choke on heavy images; anything over this after
	// re-encoding gets pushed down the quality ladder.
	maxEncodedImageSize = 300 * 1024
)

// ImageOptimizer resizes and re-encodes campaign images. Deterministic for
// identical inputs; no side effects.
type ImageOptimizer struct{}

func NewImageOptimizer() *ImageOptimizer {
	return &ImageOptimizer{}
}

// Optimize decodes the image, resizes it to the clamped target width
// preserving aspect ratio (never upscaling past the source width) and
// re-encodes it as JPEG at the clamped quality. If the result still exceeds
// the email size budget the quality drops to 30, then 20, before giving up.
func (o *ImageOptimizer) Optimize(data []byte, targetWidth, quality int) (*models.ImageAsset, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, appErrors.NewUnsupportedFormat(err)
	}

	targetWidth = clamp(targetWidth, MinImageWidth, MaxImageWidth)
	quality = clamp(quality, MinQuality, MaxQuality)

	srcWidth := img.Bounds().Dx()
	if targetWidth > srcWidth {
		targetWidth = srcWidth
	}
	if targetWidth < srcWidth {
		img = imaging.Resize(img, targetWidth, 0, imaging.Lanczos)
	}

	out, err := encodeJPEG(img, quality)
	if err != nil {
		return nil, appErrors.NewUnsupportedFormat(err)
	}
	for _, q := range []int{30, 20} {
		if len(out) <= maxEncodedImageSize {
			break
		}
		if q >= quality {
			continue
		}
		out, err = encodeJPEG(img, q)
		if err != nil {
			return nil, appErrors.NewUnsupportedFormat(err)
		}
		quality = q
	}
	if len(out) > maxEncodedImageSize {
		return nil, appErrors.NewImageTooLarge(len(out), maxEncodedImageSize)
	}

	return &models.ImageAsset{
		ID:      uuid.New().String(),
		Data:    out,
		Width:   img.Bounds().Dx(),
		Height:  img.Bounds().Dy(),
		Size:    len(out),
		Quality: quality,
	}, nil
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
