//go:build linux && cgo

package backend

import (
	"image/draw"

	fb "github.com/gonutz/framebuffer"
)

func openFramebuffer(path string) (draw.Image, func(), error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return dev, func() { dev.Close() }, nil
}
