// Package imaging prepares egg images for submission to the reasoning service.
//
// The prediction client must never be called with empty or undecodable image
// data, so every image goes through Prepare first: it proves the payload
// decodes, and shrinks oversized photos so service payloads stay small.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	// Registered decoders for the formats users actually submit.
	_ "image/gif"
	_ "image/png"

	"github.com/nfnt/resize"

	"github.com/ovumlab/ovumsort/internal/common"
	"github.com/ovumlab/ovumsort/internal/model"
)

// maxDimension bounds the longest side of a submitted image in pixels.
const maxDimension = 1024

// jpegQuality is used when an oversized image is re-encoded.
const jpegQuality = 85

// Prepare validates raw image bytes and returns an input ready for dispatch.
// Images within bounds pass through untouched; larger ones are downscaled
// with Lanczos resampling and re-encoded as JPEG.
func Prepare(id string, data []byte) (model.ImageInput, error) {
	if len(data) == 0 {
		return model.ImageInput{}, fmt.Errorf("image %s: %w", id, common.ErrEmptyImage)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return model.ImageInput{}, fmt.Errorf("image %s: failed to decode: %w", id, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxDimension && bounds.Dy() <= maxDimension {
		return model.ImageInput{
			ID:       id,
			Data:     data,
			MIMEType: mimeTypeFor(format),
		}, nil
	}

	resized := resize.Thumbnail(maxDimension, maxDimension, img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return model.ImageInput{}, fmt.Errorf("image %s: failed to encode: %w", id, err)
	}

	return model.ImageInput{
		ID:       id,
		Data:     buf.Bytes(),
		MIMEType: "image/jpeg",
	}, nil
}

func mimeTypeFor(format string) string {
	switch format {
	case "png":
		return "image/png"
	case "gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}
