//go:build !linux || !cgo

package backend

import (
	"errors"
	"image/draw"
)

var errFramebufferUnsupported = errors.New("framebuffer output requires linux and a cgo build (CGO_ENABLED=1)")

func openFramebuffer(path string) (draw.Image, func(), error) {
	return nil, nil, errFramebufferUnsupported
}
