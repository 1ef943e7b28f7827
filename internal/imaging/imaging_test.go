package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

func encodeTestImage(t *testing.T, w, h int, format string) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{0, 128, 0, 255})
		}
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case "png":
		err = png.Encode(&buf, img)
	default:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		t.Fatalf("encoding test image: %v", err)
	}
	return buf.Bytes()
}

func decodeResult(t *testing.T, result *ProcessResult) image.Image {
	t.Helper()
	img, _, err := image.Decode(bytes.NewReader(result.Data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}
	return img
}

func TestProcessReencodesAsJPEG(t *testing.T) {
	for _, format := range []string{"jpeg", "png"} {
		t.Run(format, func(t *testing.T) {
			result, err := Process(bytes.NewReader(encodeTestImage(t, 100, 100, format)))
			if err != nil {
				t.Fatalf("Process: %v", err)
			}
			if result.MIME != "image/jpeg" {
				t.Errorf("expected image/jpeg output, got %s", result.MIME)
			}
			if len(result.Data) == 0 {
				t.Error("expected non-empty data")
			}
		})
	}
}

func TestProcessDownscalesLargeImage(t *testing.T) {
	result, err := Process(bytes.NewReader(encodeTestImage(t, 2048, 1024, "jpeg")))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	bounds := decodeResult(t, result).Bounds()
	if bounds.Dx() != MaxDimension {
		t.Errorf("expected width %d, got %d", MaxDimension, bounds.Dx())
	}
	if bounds.Dy() != MaxDimension/2 {
		t.Errorf("expected aspect ratio preserved, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessKeepsSmallImageSize(t *testing.T) {
	result, err := Process(bytes.NewReader(encodeTestImage(t, 50, 80, "jpeg")))
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	bounds := decodeResult(t, result).Bounds()
	if bounds.Dx() != 50 || bounds.Dy() != 80 {
		t.Errorf("small image should not be resized: got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestProcessRejectsUnsupportedFormats(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"plain text", []byte("not an image")},
		{"gif magic bytes", []byte("GIF89a...")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Process(bytes.NewReader(tt.data)); err == nil {
				t.Error("expected error for unsupported input")
			}
		})
	}
}
