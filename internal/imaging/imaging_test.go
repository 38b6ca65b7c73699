package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ovumlab/ovumsort/internal/common"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestPrepare_EmptyData(t *testing.T) {
	_, err := Prepare("empty.jpg", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyImage)
	assert.Contains(t, err.Error(), "empty.jpg")
}

func TestPrepare_UndecodableData(t *testing.T) {
	_, err := Prepare("garbage.jpg", []byte("not an image at all"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestPrepare_SmallImagePassesThrough(t *testing.T) {
	data := encodePNG(t, 320, 240)

	input, err := Prepare("egg.png", data)
	require.NoError(t, err)

	assert.Equal(t, "egg.png", input.ID)
	assert.Equal(t, "image/png", input.MIMEType)
	assert.Equal(t, data, input.Data)
}

func TestPrepare_OversizedImageResized(t *testing.T) {
	data := encodePNG(t, 2048, 512)

	input, err := Prepare("big.png", data)
	require.NoError(t, err)

	assert.Equal(t, "image/jpeg", input.MIMEType)
	assert.NotEqual(t, data, input.Data)

	resized, err := jpeg.Decode(bytes.NewReader(input.Data))
	require.NoError(t, err)

	bounds := resized.Bounds()
	assert.LessOrEqual(t, bounds.Dx(), 1024)
	assert.LessOrEqual(t, bounds.Dy(), 1024)
	// Aspect ratio preserved: 2048x512 scales to 1024x256.
	assert.Equal(t, 1024, bounds.Dx())
	assert.Equal(t, 256, bounds.Dy())
}

func TestPrepare_BoundaryDimensionUntouched(t *testing.T) {
	data := encodePNG(t, 1024, 768)

	input, err := Prepare("exact.png", data)
	require.NoError(t, err)
	assert.Equal(t, data, input.Data)
	assert.Equal(t, "image/png", input.MIMEType)
}
