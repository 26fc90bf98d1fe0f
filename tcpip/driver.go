// Package tcpip provides a visa.Driver for raw-socket instrument resources of
// the form TCPIP::host::port::SOCKET, the plain SCPI-over-TCP transport many
// LAN instruments expose.
//
// The driver is strictly blocking: reads and writes apply the session timeout
// as a net.Conn deadline and surface expirations as the timeout status.
// Resource discovery is not meaningful for raw sockets and reports an
// unsupported operation.
package tcpip

import (
	"bufio"
	"errors"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/arloliu/go-visa/visa"
)

const (
	// wireTimeoutInfinite disables the I/O deadline.
	wireTimeoutInfinite uint32 = 0xFFFFFFFF

	// immediateGrace is the deadline used for an immediate (zero) timeout.
	// A true zero deadline would expire before the first syscall.
	immediateGrace = time.Millisecond
)

// Driver implements visa.Driver over TCP sockets.
type Driver struct {
	nextHandle atomic.Uint32

	rms      *xsync.MapOf[visa.Object, struct{}]
	sessions *xsync.MapOf[visa.Object, *conn]
}

// conn is one open socket session.
type conn struct {
	mu      sync.Mutex
	netConn net.Conn
	reader  *bufio.Reader
	timeout uint32 // VI_ATTR_TMO_VALUE in milliseconds
}

// NewDriver creates a TCP socket driver.
func NewDriver() *Driver {
	return &Driver{
		rms:      xsync.NewMapOf[visa.Object, struct{}](),
		sessions: xsync.NewMapOf[visa.Object, *conn](),
	}
}

func (d *Driver) allocHandle() visa.Object {
	return visa.Object(d.nextHandle.Add(1))
}

// OpenDefaultRM acquires a resource manager context.
func (d *Driver) OpenDefaultRM() (visa.Object, visa.Status) {
	handle := d.allocHandle()
	d.rms.Store(handle, struct{}{})

	return handle, visa.StatusSuccess
}

// Open dials the host and port encoded in the resource name. The open timeout
// bounds the dial; the same value becomes the session's initial I/O timeout.
func (d *Driver) Open(rm visa.Object, name string, mode uint32, timeout uint32) (visa.Object, visa.Status) {
	if _, ok := d.rms.Load(rm); !ok {
		return 0, visa.StatusErrorInvalidObject
	}

	host, port, ok := parseResourceName(name)
	if !ok {
		return 0, visa.StatusErrorInvalidResourceName
	}

	dialTimeout := time.Duration(timeout) * time.Millisecond
	if timeout == 0 || timeout == wireTimeoutInfinite {
		dialTimeout = 0 // net.Dialer treats zero as no timeout
	}

	netConn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), dialTimeout)
	if err != nil {
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return 0, visa.StatusErrorTimeout
		}

		return 0, visa.StatusErrorMachineNotAvailable
	}

	handle := d.allocHandle()
	d.sessions.Store(handle, &conn{
		netConn: netConn,
		reader:  bufio.NewReader(netConn),
		timeout: timeout,
	})

	return handle, visa.StatusSuccess
}

// parseResourceName splits TCPIP[board]::host::port::SOCKET into host and port.
func parseResourceName(name string) (host, port string, ok bool) {
	parts := strings.Split(name, "::")
	if len(parts) != 4 {
		return "", "", false
	}

	if !strings.HasPrefix(strings.ToUpper(parts[0]), "TCPIP") {
		return "", "", false
	}
	if !strings.EqualFold(parts[3], "SOCKET") {
		return "", "", false
	}

	if _, err := strconv.ParseUint(parts[2], 10, 16); err != nil {
		return "", "", false
	}

	return parts[1], parts[2], true
}

// Close releases a handle of either kind.
func (d *Driver) Close(obj visa.Object) visa.Status {
	if _, ok := d.rms.LoadAndDelete(obj); ok {
		return visa.StatusSuccess
	}

	if c, ok := d.sessions.LoadAndDelete(obj); ok {
		if err := c.netConn.Close(); err != nil {
			return visa.StatusErrorClosingFailed
		}

		return visa.StatusSuccess
	}

	return visa.StatusErrorInvalidObject
}

// SetAttribute stores the session timeout.
func (d *Driver) SetAttribute(obj visa.Object, attr visa.Attribute, value uint32) visa.Status {
	c, ok := d.sessions.Load(obj)
	if !ok {
		return visa.StatusErrorInvalidObject
	}

	if attr != visa.AttrTimeoutValue {
		return visa.StatusErrorAttributeNotSupported
	}

	c.mu.Lock()
	c.timeout = value
	c.mu.Unlock()

	return visa.StatusSuccess
}

// deadline converts the stored timeout to an absolute deadline.
// The zero time disables the deadline.
func (c *conn) deadline() time.Time {
	switch c.timeout {
	case wireTimeoutInfinite:
		return time.Time{}
	case 0:
		return time.Now().Add(immediateGrace)
	default:
		return time.Now().Add(time.Duration(c.timeout) * time.Millisecond)
	}
}

// Write sends data to the socket under the session timeout.
func (d *Driver) Write(obj visa.Object, data []byte) (uint32, visa.Status) {
	c, ok := d.sessions.Load(obj)
	if !ok {
		return 0, visa.StatusErrorInvalidObject
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.netConn.SetWriteDeadline(c.deadline()); err != nil {
		return 0, visa.StatusErrorIO
	}

	n, err := c.netConn.Write(data)
	if err != nil {
		return uint32(n), writeStatus(err)
	}

	return uint32(n), visa.StatusSuccess
}

func writeStatus(err error) visa.Status {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return visa.StatusErrorTimeout
	}
	if errors.Is(err, net.ErrClosed) {
		return visa.StatusErrorConnectionLost
	}

	return visa.StatusErrorIO
}

// Read receives bytes until a newline terminator arrives or buf fills,
// whichever comes first. The session timeout bounds the whole call.
//
// A full buffer with no terminator reports maximum-count so the session's
// reassembly loop continues; the newline reports the termination character.
func (d *Driver) Read(obj visa.Object, buf []byte) (uint32, visa.Status) {
	c, ok := d.sessions.Load(obj)
	if !ok {
		return 0, visa.StatusErrorInvalidObject
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.netConn.SetReadDeadline(c.deadline()); err != nil {
		return 0, visa.StatusErrorIO
	}

	n := 0
	for n < len(buf) {
		b, err := c.reader.ReadByte()
		if err != nil {
			return uint32(n), readStatus(err)
		}

		buf[n] = b
		n++

		if b == '\n' {
			return uint32(n), visa.StatusSuccessTermChar
		}
	}

	return uint32(n), visa.StatusSuccessMaxCount
}

func readStatus(err error) visa.Status {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return visa.StatusErrorTimeout
	}
	if errors.Is(err, net.ErrClosed) {
		return visa.StatusErrorConnectionLost
	}

	return visa.StatusErrorConnectionLost
}

// Flush drops buffered receive bytes for the read-discard modes. The remaining
// modes are no-ops: writes are unbuffered and a socket has nothing to flush.
func (d *Driver) Flush(obj visa.Object, mode uint16) visa.Status {
	c, ok := d.sessions.Load(obj)
	if !ok {
		return visa.StatusErrorInvalidObject
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if mode&uint16(visa.FlushReadBufferDiscard|visa.FlushIOInputBufferDiscard) != 0 {
		if _, err := c.reader.Discard(c.reader.Buffered()); err != nil {
			return visa.StatusErrorIO
		}
	}

	return visa.StatusSuccess
}

// FindFirst is not supported: raw sockets have no discoverable namespace.
func (d *Driver) FindFirst(rm visa.Object, expr string, desc []byte) (visa.Object, uint32, visa.Status) {
	if _, ok := d.rms.Load(rm); !ok {
		return 0, 0, visa.StatusErrorInvalidObject
	}

	return 0, 0, visa.StatusErrorOperationNotSupported
}

// FindNext is not supported for the same reason as FindFirst.
func (d *Driver) FindNext(list visa.Object, desc []byte) visa.Status {
	return visa.StatusErrorInvalidObject
}

var _ visa.Driver = (*Driver)(nil)
