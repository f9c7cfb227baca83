package utils

import (
	"bytes"
	"image"
	"image/jpeg"
	_ "image/png" // register png decoder

	"golang.org/x/image/draw"
)

// CompressImage downscales an image so its longest side is at most maxDim and
// re-encodes it as JPEG at the given quality. Images already within bounds and
// already JPEG-encoded pass through untouched.
func CompressImage(data []byte, maxDim int, quality int) ([]byte, string, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}

	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxDim && h <= maxDim && format == "jpeg" {
		return data, "image/jpeg", nil
	}

	if w > maxDim || h > maxDim {
		if w >= h {
			h = h * maxDim / w
			w = maxDim
		} else {
			w = w * maxDim / h
			h = maxDim
		}
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: quality}); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), "image/jpeg", nil
}
