//go:build linux

package system

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func inputEvent(l inputEventLayout, typ, code uint16, value int32) []byte {
	rec := make([]byte, l.size)
	binary.LittleEndian.PutUint16(rec[l.tvSize:], typ)
	binary.LittleEndian.PutUint16(rec[l.tvSize+2:], code)
	binary.LittleEndian.PutUint32(rec[l.tvSize+4:], uint32(value))
	return rec
}

func TestKeyPressed(t *testing.T) {
	l := newInputEventLayout()

	var buf []byte
	buf = append(buf, inputEvent(l, 0x00, 0, 0)...)        // EV_SYN
	buf = append(buf, inputEvent(l, evKey, KeyF4, 0)...)   // release
	buf = append(buf, inputEvent(l, evKey, KeyF4+1, 1)...) // other key
	assert.False(t, l.keyPressed(buf, KeyF4))

	buf = append(buf, inputEvent(l, evKey, KeyF4, 1)...)
	assert.True(t, l.keyPressed(buf, KeyF4))
}

func TestKeyPressedIgnoresPartialRecord(t *testing.T) {
	l := newInputEventLayout()
	rec := inputEvent(l, evKey, KeyF4, 1)
	assert.False(t, l.keyPressed(rec[:len(rec)-1], KeyF4))
	assert.False(t, l.keyPressed(nil, KeyF4))
}
