//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	KeyF4 = 62
)

// StartExitOnKey watches Linux evdev devices under /dev/input/event* and invokes onExit
// once when the key with the given code is pressed. This is the framebuffer
// backend's equivalent of closing the window.
//
// It is best-effort: if no input devices are available, it logs and returns.
func StartExitOnKey(ctx context.Context, logger Logger, code uint16, onExit func()) {
	if onExit == nil {
		return
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		if logger != nil {
			logger.Infof("input", "no evdev devices found for exit key")
		}
		return
	}

	var once sync.Once
	triggerExit := func() {
		once.Do(func() {
			if logger != nil {
				logger.Infof("input", "exit key %d pressed", code)
			}
			onExit()
		})
	}

	layout := newInputEventLayout()
	for _, path := range paths {
		go watchDevice(ctx, path, layout, code, triggerExit)
	}
}

func watchDevice(ctx context.Context, path string, layout inputEventLayout, code uint16, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() {
		_ = f.Close()
	}()

	buf := make([]byte, 4096)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device might have gone away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if layout.keyPressed(buf[:n], code) {
			trigger()
			return
		}
	}
}

// inputEventLayout describes struct input_event: timeval + u16 type + u16 code + s32 value.
type inputEventLayout struct {
	tvSize int
	size   int
}

func newInputEventLayout() inputEventLayout {
	tvSize := binary.Size(unix.Timeval{})
	if tvSize <= 0 {
		tvSize = 16
	}
	return inputEventLayout{tvSize: tvSize, size: tvSize + 2 + 2 + 4}
}

// keyPressed reports whether buf holds a key-down event for code.
func (l inputEventLayout) keyPressed(buf []byte, code uint16) bool {
	for off := 0; off+l.size <= len(buf); off += l.size {
		rec := buf[off : off+l.size]
		typ := binary.LittleEndian.Uint16(rec[l.tvSize : l.tvSize+2])
		got := binary.LittleEndian.Uint16(rec[l.tvSize+2 : l.tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[l.tvSize+4 : l.tvSize+8]))
		if typ == evKey && got == code && value == 1 {
			return true
		}
	}
	return false
}
