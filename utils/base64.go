package utils

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

// DecodeBase64Image accepts either a raw base64 payload or a data URI
// ("data:image/png;base64,....") and returns the bytes plus a detected
// content type.
func DecodeBase64Image(b64 string) ([]byte, string, error) {
	if i := strings.Index(b64, ","); i >= 0 && strings.HasPrefix(b64, "data:") {
		b64 = b64[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", errors.New("empty image payload")
	}
	ct := http.DetectContentType(data)
	if !strings.HasPrefix(ct, "image/") {
		return nil, "", errors.New("payload is not an image")
	}
	return data, ct, nil
}
