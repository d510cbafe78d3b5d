//go:build !linux || !cgo

package backend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFBRendererUnsupportedBuild(t *testing.T) {
	r := NewFBRenderer("")
	err := r.Start(context.Background())
	assert.ErrorIs(t, err, errFramebufferUnsupported)
	assert.NoError(t, r.Stop())
}
