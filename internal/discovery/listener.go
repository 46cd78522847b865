package discovery

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ckode/flexscan/internal/logging"
	"github.com/ckode/flexscan/internal/protocol"
)

const (
	// DefaultPort is the well-known FlexRadio discovery port
	DefaultPort = 4992

	// DefaultBindAddress listens on all interfaces
	DefaultBindAddress = "0.0.0.0"

	// DefaultReceiveTimeout is how long a single ReceiveOne call waits
	DefaultReceiveTimeout = 3 * time.Second

	// maxDatagramSize bounds a single receive; announcements fit in
	// one unfragmented datagram well under an Ethernet MTU
	maxDatagramSize = 1500
)

// Listener owns a bound, broadcast-enabled UDP socket and hands out
// one decoded announcement per receive call. Construction either
// yields a bound listener or an error; there is no rebinding and no
// reconnection logic afterwards.
type Listener struct {
	conn    *net.UDPConn
	timeout time.Duration
	buf     []byte
	log     *zap.Logger
}

// NewListener creates a listener with default settings: all
// interfaces, port 4992, 3-second receive timeout.
func NewListener() (*Listener, error) {
	return NewListenerOn(DefaultBindAddress, DefaultPort, DefaultReceiveTimeout)
}

// NewListenerOn creates a listener bound to (bindAddr, port) with the
// given receive timeout. The socket gets SO_REUSEADDR and SO_BROADCAST
// before the bind so it can coexist with SmartSDR and still hear
// subnet broadcasts. A bind failure (port privilege, invalid address)
// is fatal and reported to the caller; nothing is retried.
func NewListenerOn(bindAddr string, port int, timeout time.Duration) (*Listener, error) {
	if timeout <= 0 {
		timeout = DefaultReceiveTimeout
	}

	lc := net.ListenConfig{Control: reuseAndBroadcast}
	pc, err := lc.ListenPacket(context.Background(), "udp4",
		net.JoinHostPort(bindAddr, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("failed to bind UDP %s:%d: %w", bindAddr, port, err)
	}

	conn, ok := pc.(*net.UDPConn)
	if !ok {
		pc.Close()
		return nil, fmt.Errorf("unexpected packet connection type %T", pc)
	}

	log := logging.GetLogger()
	log.Debug("discovery listener bound",
		zap.String("addr", conn.LocalAddr().String()),
		zap.Duration("timeout", timeout),
	)

	return &Listener{
		conn:    conn,
		timeout: timeout,
		buf:     make([]byte, maxDatagramSize),
		log:     log,
	}, nil
}

// ReceiveOne waits for a single discovery datagram. It returns the
// decoded announcement, or (nil, nil) when the receive timeout elapsed
// with nothing heard. A malformed datagram is returned as an error
// scoped to that datagram; the listener stays usable for the next call.
func (l *Listener) ReceiveOne() (*protocol.Announcement, error) {
	return l.ReceiveOneWithContext(context.Background())
}

// ReceiveOneWithContext is ReceiveOne with a caller-supplied context.
// A context deadline earlier than the receive timeout shortens the
// wait; context cancellation before the call starts aborts it.
func (l *Listener) ReceiveOneWithContext(ctx context.Context) (*protocol.Announcement, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline := time.Now().Add(l.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := l.conn.SetReadDeadline(deadline); err != nil {
		return nil, fmt.Errorf("failed to set read deadline: %w", err)
	}

	n, src, err := l.conn.ReadFromUDP(l.buf)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			// Nothing heard this cycle. Expected, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("receive failed: %w", err)
	}

	logging.LogDatagram(src.String(), l.buf[:n])

	ann, err := protocol.Decode(l.buf[:n])
	if err != nil {
		return nil, fmt.Errorf("bad announcement from %s: %w", src, err)
	}

	ann.Source = src
	ann.ReceivedAt = time.Now()
	logging.LogUnknownFields(src.String(), ann.Unknown)

	l.log.Debug("announcement decoded",
		zap.String("source", src.String()),
		zap.String("model", ann.Model),
		zap.String("serial", ann.Serial),
		zap.Strings("warnings", ann.Warnings),
	)

	return ann, nil
}

// Timeout returns the per-receive timeout the listener was built with.
func (l *Listener) Timeout() time.Duration {
	return l.timeout
}

// LocalAddr returns the bound socket address.
func (l *Listener) LocalAddr() net.Addr {
	return l.conn.LocalAddr()
}

// Close releases the socket. The listener is unusable afterwards.
func (l *Listener) Close() error {
	return l.conn.Close()
}
