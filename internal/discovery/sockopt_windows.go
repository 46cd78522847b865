//go:build windows

package discovery

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// reuseAndBroadcast enables SO_REUSEADDR and SO_BROADCAST on the
// socket before it is bound. Address reuse lets the listener share the
// discovery port with SmartSDR or a second listener instance;
// broadcast reception is what the announcements arrive on.
func reuseAndBroadcast(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		sockErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_REUSEADDR, 1)
		if sockErr != nil {
			return
		}
		sockErr = windows.SetsockoptInt(windows.Handle(fd), windows.SOL_SOCKET, windows.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
