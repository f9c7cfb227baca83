package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngBase64(t *testing.T) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeBase64ImageRaw(t *testing.T) {
	data, ct, err := DecodeBase64Image(pngBase64(t))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.NotEmpty(t, data)
}

func TestDecodeBase64ImageDataURI(t *testing.T) {
	data, ct, err := DecodeBase64Image("data:image/png;base64," + pngBase64(t))
	require.NoError(t, err)
	assert.Equal(t, "image/png", ct)
	assert.NotEmpty(t, data)
}

func TestDecodeBase64ImageRejectsNonImage(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("plain text, not an image"))
	_, _, err := DecodeBase64Image(payload)
	assert.Error(t, err)
}

func TestDecodeBase64ImageRejectsBadEncoding(t *testing.T) {
	_, _, err := DecodeBase64Image("!!not base64!!")
	assert.Error(t, err)
}
