package opengl

import (
	"image"
	"image/jpeg"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/shader/internal/texture"
)

// ReadFramebuffer reads the bottom-left width x height pixels of the
// current read buffer, top row first.
func ReadFramebuffer(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	texture.FlipVertical(img)
	return img
}

// SaveJPEG encodes img to path.
func SaveJPEG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
