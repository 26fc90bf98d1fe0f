package tcpip

import (
	"bufio"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/go-visa/visa"
)

// echoInstrument answers *IDN? lines on accepted connections and echoes
// nothing else. It serves one connection at a time until the listener closes.
func echoInstrument(t *testing.T) string {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}

			go func(c net.Conn) {
				defer c.Close()

				r := bufio.NewReader(c)
				for {
					line, err := r.ReadString('\n')
					if err != nil {
						return
					}

					if strings.TrimSpace(line) == "*IDN?" {
						fmt.Fprint(c, "Acme,X200,0042,1.0\n")
					}
				}
			}(c)
		}
	}()

	return ln.Addr().String()
}

func resourceName(t *testing.T, addr string) string {
	t.Helper()

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	return fmt.Sprintf("TCPIP0::%s::%s::SOCKET", host, port)
}

func TestParseResourceName(t *testing.T) {
	tests := []struct {
		name     string
		resource string
		host     string
		port     string
		ok       bool
	}{
		{name: "with board", resource: "TCPIP0::10.0.0.1::5025::SOCKET", host: "10.0.0.1", port: "5025", ok: true},
		{name: "without board", resource: "TCPIP::scope.local::5025::SOCKET", host: "scope.local", port: "5025", ok: true},
		{name: "lowercase", resource: "tcpip0::10.0.0.1::5025::socket", host: "10.0.0.1", port: "5025", ok: true},
		{name: "wrong interface", resource: "GPIB0::10.0.0.1::5025::SOCKET", ok: false},
		{name: "instr suffix", resource: "TCPIP0::10.0.0.1::inst0::INSTR", ok: false},
		{name: "missing port", resource: "TCPIP0::10.0.0.1::SOCKET", ok: false},
		{name: "port out of range", resource: "TCPIP0::10.0.0.1::70000::SOCKET", ok: false},
		{name: "port not numeric", resource: "TCPIP0::10.0.0.1::hislip0::SOCKET", ok: false},
		{name: "empty", resource: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, port, ok := parseResourceName(tt.resource)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.host, host)
				assert.Equal(t, tt.port, port)
			}
		})
	}
}

func TestDriver_OpenInvalidResourceName(t *testing.T) {
	drv := NewDriver()
	rm, status := drv.OpenDefaultRM()
	require.Equal(t, visa.StatusSuccess, status)

	_, status = drv.Open(rm, "GPIB0::5::INSTR", 0, 1000)
	assert.Equal(t, visa.StatusErrorInvalidResourceName, status)
}

func TestDriver_OpenUnreachable(t *testing.T) {
	drv := NewDriver()
	rm, status := drv.OpenDefaultRM()
	require.Equal(t, visa.StatusSuccess, status)

	// A closed listener's port refuses immediately.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	_, status = drv.Open(rm, resourceName(t, addr), 0, 1000)
	assert.Equal(t, visa.StatusErrorMachineNotAvailable, status)
}

func TestDriver_QueryRoundTrip(t *testing.T) {
	addr := echoInstrument(t)

	drv := NewDriver()
	rm, status := drv.OpenDefaultRM()
	require.Equal(t, visa.StatusSuccess, status)

	sess, status := drv.Open(rm, resourceName(t, addr), 0, 1000)
	require.Equal(t, visa.StatusSuccess, status)
	defer drv.Close(sess)

	n, status := drv.Write(sess, []byte("*IDN?\n"))
	require.Equal(t, visa.StatusSuccess, status)
	assert.Equal(t, uint32(6), n)

	buf := make([]byte, 64)
	n, status = drv.Read(sess, buf)
	require.Equal(t, visa.StatusSuccessTermChar, status)
	assert.Equal(t, "Acme,X200,0042,1.0\n", string(buf[:n]))
}

func TestDriver_ReadFillsBufferBeforeTerminator(t *testing.T) {
	addr := echoInstrument(t)

	drv := NewDriver()
	rm, _ := drv.OpenDefaultRM()
	sess, status := drv.Open(rm, resourceName(t, addr), 0, 1000)
	require.Equal(t, visa.StatusSuccess, status)
	defer drv.Close(sess)

	_, status = drv.Write(sess, []byte("*IDN?\n"))
	require.Equal(t, visa.StatusSuccess, status)

	buf := make([]byte, 8)
	n, status := drv.Read(sess, buf)
	assert.Equal(t, visa.StatusSuccessMaxCount, status)
	assert.Equal(t, "Acme,X20", string(buf[:n]))

	// The remainder arrives on the following reads.
	rest := make([]byte, 64)
	n, status = drv.Read(sess, rest)
	assert.Equal(t, visa.StatusSuccessTermChar, status)
	assert.Equal(t, "0,0042,1.0\n", string(rest[:n]))
}

func TestDriver_ReadTimeout(t *testing.T) {
	addr := echoInstrument(t)

	drv := NewDriver()
	rm, _ := drv.OpenDefaultRM()
	sess, status := drv.Open(rm, resourceName(t, addr), 0, 1000)
	require.Equal(t, visa.StatusSuccess, status)
	defer drv.Close(sess)

	require.Equal(t, visa.StatusSuccess, drv.SetAttribute(sess, visa.AttrTimeoutValue, 50))

	start := time.Now()
	_, status = drv.Read(sess, make([]byte, 8))
	assert.Equal(t, visa.StatusErrorTimeout, status)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestDriver_SessionIntegration(t *testing.T) {
	addr := echoInstrument(t)

	rm, err := visa.New(NewDriver())
	require.NoError(t, err)
	defer rm.Close()

	sess, err := rm.OpenSession(resourceName(t, addr), visa.NoLock, visa.After(time.Second))
	require.NoError(t, err)
	defer sess.Close()

	response, err := sess.Query("*IDN?\n")
	require.NoError(t, err)
	assert.Equal(t, "Acme,X200,0042,1.0\n", response)

	// An instrument that never answers surfaces the session timeout.
	require.NoError(t, sess.SetTimeout(visa.After(50*time.Millisecond)))
	_, err = sess.Read()
	assert.ErrorIs(t, err, visa.ErrTimeout)
}

func TestDriver_FindUnsupported(t *testing.T) {
	drv := NewDriver()
	rm, status := drv.OpenDefaultRM()
	require.Equal(t, visa.StatusSuccess, status)

	desc := make([]byte, visa.FindBufferLen)
	_, _, status = drv.FindFirst(rm, "?*", desc)
	assert.Equal(t, visa.StatusErrorOperationNotSupported, status)

	rmWrap, err := visa.New(drv)
	require.NoError(t, err)
	defer rmWrap.Close()

	_, err = rmWrap.FindResources("?*")
	assert.ErrorIs(t, err, visa.ErrOperationNotSupported)
}

func TestDriver_CloseInvalidatesSession(t *testing.T) {
	addr := echoInstrument(t)

	drv := NewDriver()
	rm, _ := drv.OpenDefaultRM()
	sess, status := drv.Open(rm, resourceName(t, addr), 0, 1000)
	require.Equal(t, visa.StatusSuccess, status)

	require.Equal(t, visa.StatusSuccess, drv.Close(sess))
	assert.Equal(t, visa.StatusErrorInvalidObject, drv.Close(sess))

	_, status = drv.Write(sess, []byte("*CLS\n"))
	assert.Equal(t, visa.StatusErrorInvalidObject, status)
}
