//go:build !linux

package system

import "context"

const KeyF4 = 62

// StartExitOnKey is a no-op without evdev.
func StartExitOnKey(ctx context.Context, logger Logger, code uint16, onExit func()) {
	if logger != nil {
		logger.Infof("input", "exit key not supported on this platform")
	}
}
